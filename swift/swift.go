// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package swift specializes token streams for Swift code generation: type
// references with automatic module imports, Swift string quoting, and
// builders for classes, structs, enums, protocols, and extensions.
package swift

import (
	"github.com/tidwall/btree"

	"github.com/bufbuild/gentok"
)

// Tokens is a token stream specialized for Swift.
type Tokens = gentok.Tokens[Swift, *Extra]

// Element is a token-tree element specialized for Swift.
type Element = gentok.Element[Swift, *Extra]

const (
	kindPrimitive kind = iota + 1
	kindType
	kindMap
	kindArray
)

type kind byte

// Swift is a Swift type reference embedded in a token stream: a primitive, a
// named type optionally imported from a module, a map, or an array.
//
// The zero value is not a valid type; use the primitive constants or the
// [Imported], [Local], [Map], and [Array] constructors.
type Swift struct {
	kind kind

	primitive string

	module string // empty for local names
	name   string

	key   *Swift // map key
	value *Swift // map value
	inner *Swift // array element
}

// Primitive types.
var (
	Short   = Swift{kind: kindPrimitive, primitive: "Int16"}
	Integer = Swift{kind: kindPrimitive, primitive: "Int32"}
	Long    = Swift{kind: kindPrimitive, primitive: "Int64"}
	Float   = Swift{kind: kindPrimitive, primitive: "Float"}
	Double  = Swift{kind: kindPrimitive, primitive: "Double"}
	Char    = Swift{kind: kindPrimitive, primitive: "Character"}
	Boolean = Swift{kind: kindPrimitive, primitive: "Bool"}
	Byte    = Swift{kind: kindPrimitive, primitive: "Int8"}
	Void    = Swift{kind: kindPrimitive, primitive: "Void"}
)

// Imported returns a type reference imported from the given module.
func Imported(module, name string) Swift {
	return Swift{kind: kindType, module: module, name: name}
}

// Local returns a type reference with no module, never imported.
func Local(name string) Swift {
	return Swift{kind: kindType, name: name}
}

// Map returns a Swift map type, [Key: Value].
func Map(key, value Swift) Swift {
	return Swift{kind: kindMap, key: &key, value: &value}
}

// Array returns a Swift array type, [Inner].
func Array(inner Swift) Swift {
	return Swift{kind: kindArray, inner: &inner}
}

// Extra is the per-render state for Swift files. Swift import collation is
// stateless, so it currently carries nothing; it exists so the contract is
// uniform across languages.
type Extra struct{}

// Format implements [gentok.Custom].
func (s Swift) Format(out *gentok.Formatter, extra *Extra, level int) error {
	switch s.kind {
	case kindPrimitive:
		return out.WriteString(s.primitive)
	case kindType:
		return out.WriteString(s.name)
	case kindMap:
		if err := out.WriteString("["); err != nil {
			return err
		}
		if err := s.key.Format(out, extra, level+1); err != nil {
			return err
		}
		if err := out.WriteString(": "); err != nil {
			return err
		}
		if err := s.value.Format(out, extra, level+1); err != nil {
			return err
		}
		return out.WriteString("]")
	case kindArray:
		if err := out.WriteString("["); err != nil {
			return err
		}
		if err := s.inner.Format(out, extra, level+1); err != nil {
			return err
		}
		return out.WriteString("]")
	}
	return nil
}

// QuoteString implements [gentok.Custom], escaping input per Swift string
// literal syntax.
func (Swift) QuoteString(out *gentok.Formatter, input string) error {
	if err := out.WriteRune('"'); err != nil {
		return err
	}
	for _, c := range input {
		var escaped string
		switch c {
		case '\t':
			escaped = `\t`
		case '\n':
			escaped = `\n`
		case '\r':
			escaped = `\r`
		case '\'':
			escaped = `\'`
		case '"':
			escaped = `\"`
		case '\\':
			escaped = `\\`
		default:
			if err := out.WriteRune(c); err != nil {
				return err
			}
			continue
		}
		if err := out.WriteString(escaped); err != nil {
			return err
		}
	}
	return out.WriteRune('"')
}

// WriteFile implements [gentok.Custom]: the collated import block followed
// by the body, separated by a blank line.
func (Swift) WriteFile(body gentok.Body[Swift, *Extra], out *gentok.Formatter, extra *Extra, level int) error {
	if imports := fileImports(body); imports != nil {
		if err := imports.Format(out, extra, level); err != nil {
			return err
		}
		out.BlankLine()
	}
	out.PushLine()
	return body.Format(out, extra, level)
}

// moduleImports records the modules a type pulls in, recursing through map
// and array element types.
func moduleImports(s Swift, set *btree.BTreeG[string]) {
	switch s.kind {
	case kindType:
		if s.module != "" {
			set.Set(s.module)
		}
	case kindMap:
		moduleImports(*s.key, set)
		moduleImports(*s.value, set)
	case kindArray:
		moduleImports(*s.inner, set)
	}
}

// fileImports walks body for referenced modules and produces the import
// block, one sorted line per distinct module. Returns nil if nothing needs
// importing.
func fileImports(body gentok.Body[Swift, *Extra]) *Tokens {
	set := btree.NewBTreeG(func(a, b string) bool { return a < b })
	for item := range body.WalkCustom() {
		moduleImports(item, set)
	}
	if set.Len() == 0 {
		return nil
	}

	out := &Tokens{}
	set.Scan(func(module string) bool {
		out.PushInto(func(t *Tokens) {
			t.Append("import ")
			t.Append(module)
		})
		return true
	})
	return out
}
