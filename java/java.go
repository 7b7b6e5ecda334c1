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

// Package java specializes token streams for Java code generation: type
// references with automatic import collation, Java string quoting, and
// builders for the common top-level constructs (classes, interfaces, enums,
// methods, fields).
package java

import (
	"github.com/tidwall/btree"

	"github.com/bufbuild/gentok"
)

const (
	javaLang = "java.lang"
	sep      = "."
)

// Tokens is a token stream specialized for Java.
type Tokens = gentok.Tokens[Java, *Extra]

// Element is a token-tree element specialized for Java.
type Element = gentok.Element[Java, *Extra]

const (
	kindPrimitive kind = iota + 1
	kindClass
	kindLocal
	kindOptional
)

type kind byte

// Java is a Java type reference embedded in a token stream: a primitive, a
// class imported from a package, a local (unqualified) name, or an optional
// wrapper around another type.
//
// The zero value is not a valid type; use the primitive constants or the
// [Imported], [Local], and [Optional] constructors.
type Java struct {
	kind kind

	primitive string // unboxed keyword, e.g. "int"
	boxed     string // boxed class name, e.g. "Integer"

	pkg       string
	name      string
	path      []string
	arguments []Java

	value *Java // optional: the wrapped value type
	field *Java // optional: the full field type, wrapper included
}

// Primitive types. Rendered unboxed at the top level and boxed inside
// generic argument lists.
var (
	Short   = Java{kind: kindPrimitive, primitive: "short", boxed: "Short"}
	Integer = Java{kind: kindPrimitive, primitive: "int", boxed: "Integer"}
	Long    = Java{kind: kindPrimitive, primitive: "long", boxed: "Long"}
	Float   = Java{kind: kindPrimitive, primitive: "float", boxed: "Float"}
	Double  = Java{kind: kindPrimitive, primitive: "double", boxed: "Double"}
	Char    = Java{kind: kindPrimitive, primitive: "char", boxed: "Character"}
	Boolean = Java{kind: kindPrimitive, primitive: "boolean", boxed: "Boolean"}
	Byte    = Java{kind: kindPrimitive, primitive: "byte", boxed: "Byte"}
	Void    = Java{kind: kindPrimitive, primitive: "void", boxed: "Void"}
)

// Imported returns a class reference imported from the given package.
func Imported(pkg, name string) Java {
	return Java{kind: kindClass, pkg: pkg, name: name}
}

// Local returns a name with no qualification, rendered exactly as given and
// never imported.
func Local(name string) Java {
	return Java{kind: kindLocal, name: name}
}

// Optional returns an optional type: value is the wrapped type and field the
// complete field type including the wrapper, e.g.
// Optional(string, Optional<String>).
func Optional(value, field Java) Java {
	return Java{kind: kindOptional, value: &value, field: &field}
}

// Extra is the per-render state for Java files: the declared package of the
// file being rendered, and the names imported so far.
type Extra struct {
	// Package is the package the rendered file belongs to. Types in this
	// package are referenced unqualified and never imported.
	Package string

	// Names imported into the local namespace, name -> source package.
	imported map[string]string
}

// NewExtra returns an Extra for a file in the given package.
func NewExtra(pkg string) *Extra {
	return &Extra{Package: pkg}
}

func (e *Extra) importedFrom(name string) (string, bool) {
	pkg, ok := e.imported[name]
	return pkg, ok
}

func (e *Extra) setImported(name, pkg string) {
	if e.imported == nil {
		e.imported = make(map[string]string)
	}
	e.imported[name] = pkg
}

// Path extends a class reference with a nested path segment, discarding any
// generic arguments. Non-class types are returned unchanged.
func (j Java) Path(part string) Java {
	if j.kind != kindClass {
		return j
	}
	out := j
	out.path = append(append([]string(nil), j.path...), part)
	out.arguments = nil
	return out
}

// WithArguments returns a copy of a class reference with the given generic
// arguments. Non-class types are returned unchanged.
func (j Java) WithArguments(arguments ...Java) Java {
	if j.kind != kindClass {
		return j
	}
	out := j
	out.arguments = arguments
	return out
}

// AsRaw returns the raw type, without generic arguments.
func (j Java) AsRaw() Java {
	if j.kind != kindClass {
		return j
	}
	out := j
	out.arguments = nil
	return out
}

// AsBoxed returns a guaranteed boxed version of the type.
func (j Java) AsBoxed() Java {
	if j.kind != kindPrimitive {
		return j
	}
	return Java{kind: kindClass, pkg: javaLang, name: j.boxed}
}

// Equals reports whether two types are the same type. Primitives compare by
// keyword, classes by package, name, and generic arguments.
func (j Java) Equals(other Java) bool {
	switch {
	case j.kind == kindPrimitive && other.kind == kindPrimitive:
		return j.primitive == other.primitive
	case j.kind == kindClass && other.kind == kindClass:
		if j.pkg != other.pkg || j.name != other.name || len(j.arguments) != len(other.arguments) {
			return false
		}
		for i := range j.arguments {
			if !j.arguments[i].Equals(other.arguments[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Name returns the unqualified name of the type.
func (j Java) Name() string {
	switch j.kind {
	case kindPrimitive:
		return j.primitive
	case kindOptional:
		return j.value.Name()
	default:
		return j.name
	}
}

// Package returns the package of the type, if it has one.
func (j Java) Package() (string, bool) {
	switch j.kind {
	case kindPrimitive:
		return javaLang, true
	case kindClass:
		return j.pkg, true
	case kindOptional:
		return j.value.Package()
	default:
		return "", false
	}
}

// Arguments returns the generic arguments of a class reference.
func (j Java) Arguments() []Java {
	switch j.kind {
	case kindClass:
		return j.arguments
	case kindOptional:
		return j.value.Arguments()
	default:
		return nil
	}
}

// IsOptional reports whether the type is an optional wrapper.
func (j Java) IsOptional() bool {
	return j.kind == kindOptional
}

// IsPrimitive reports whether the type is a primitive. void is not a
// primitive for this purpose.
func (j Java) IsPrimitive() bool {
	return j.kind == kindPrimitive && !j.Equals(Void)
}

// AsField returns the field type: for optionals, the complete type including
// the wrapper; for everything else the type itself.
func (j Java) AsField() Java {
	if j.kind == kindOptional {
		return *j.field
	}
	return j
}

// AsValue returns the value type, stripping any optional wrapper.
func (j Java) AsValue() Java {
	if j.kind == kindOptional {
		return *j.value
	}
	return j
}

// IsGeneric reports whether the type carries generic arguments.
func (j Java) IsGeneric() bool {
	return len(j.Arguments()) > 0
}

// Format implements [gentok.Custom]. Primitives render boxed when nested
// inside a generic argument list (level > 0); classes render qualified
// unless they live in java.lang, in the file's own package, or have been
// imported under this name.
func (j Java) Format(out *gentok.Formatter, extra *Extra, level int) error {
	switch j.kind {
	case kindPrimitive:
		if level > 0 {
			return out.WriteString(j.boxed)
		}
		return out.WriteString(j.primitive)
	case kindClass:
		importedPkg, imported := extra.importedFrom(j.name)
		qualified := j.pkg != javaLang &&
			!(imported && importedPkg == j.pkg) &&
			extra.Package != j.pkg
		if qualified {
			if err := out.WriteString(j.pkg); err != nil {
				return err
			}
			if err := out.WriteString(sep); err != nil {
				return err
			}
		}
		if err := out.WriteString(j.name); err != nil {
			return err
		}
		for _, part := range j.path {
			if err := out.WriteString(sep); err != nil {
				return err
			}
			if err := out.WriteString(part); err != nil {
				return err
			}
		}
		if len(j.arguments) > 0 {
			if err := out.WriteString("<"); err != nil {
				return err
			}
			for i, argument := range j.arguments {
				if i > 0 {
					if err := out.WriteString(", "); err != nil {
						return err
					}
				}
				if err := argument.Format(out, extra, level+1); err != nil {
					return err
				}
			}
			if err := out.WriteString(">"); err != nil {
				return err
			}
		}
		return nil
	case kindLocal:
		return out.WriteString(j.name)
	case kindOptional:
		return j.field.Format(out, extra, level)
	}
	return nil
}

// QuoteString implements [gentok.Custom], escaping input per Java string
// literal syntax.
func (Java) QuoteString(out *gentok.Formatter, input string) error {
	if err := out.WriteRune('"'); err != nil {
		return err
	}
	for _, c := range input {
		var escaped string
		switch c {
		case '\t':
			escaped = `\t`
		case '\u0007':
			escaped = `\b`
		case '\n':
			escaped = `\n`
		case '\r':
			escaped = `\r`
		case '\u0014':
			escaped = `\f`
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

// WriteFile implements [gentok.Custom]: package declaration, collated import
// block, and body, separated by blank lines.
func (Java) WriteFile(body gentok.Body[Java, *Extra], out *gentok.Formatter, extra *Extra, level int) error {
	prologue := &Tokens{}
	if extra.Package != "" {
		prologue.PushInto(func(t *Tokens) {
			t.Append("package ")
			t.Append(extra.Package)
			t.Append(";")
		})
	}
	if imports := fileImports(body, extra); imports != nil {
		prologue.PushTokens(imports)
	}
	if !prologue.IsEmpty() {
		if err := prologue.JoinLineSpacing().Format(out, extra, level); err != nil {
			return err
		}
		out.BlankLine()
	}
	out.PushLine()
	return body.Format(out, extra, level)
}

type importKey struct {
	pkg  string
	name string
}

// typeImports records the (package, name) pairs a type pulls in, including
// those of its generic arguments.
func typeImports(j Java, set *btree.BTreeG[importKey]) {
	if j.kind != kindClass {
		return
	}
	for _, argument := range j.arguments {
		typeImports(argument, set)
	}
	set.Set(importKey{pkg: j.pkg, name: j.name})
}

// fileImports walks body for referenced types and produces the import block,
// one line per distinct (package, name) pair, sorted. Types in java.lang, in
// the file's own package, or whose name was already imported from elsewhere
// are skipped. Returns nil if nothing needs importing.
func fileImports(body gentok.Body[Java, *Extra], extra *Extra) *Tokens {
	set := btree.NewBTreeG(func(a, b importKey) bool {
		if a.pkg != b.pkg {
			return a.pkg < b.pkg
		}
		return a.name < b.name
	})
	for item := range body.WalkCustom() {
		typeImports(item, set)
	}
	if set.Len() == 0 {
		return nil
	}

	out := &Tokens{}
	set.Scan(func(key importKey) bool {
		if _, ok := extra.importedFrom(key.name); ok {
			return true
		}
		if key.pkg == javaLang || key.pkg == extra.Package {
			return true
		}
		out.PushInto(func(t *Tokens) {
			t.Append("import ")
			t.Append(key.pkg)
			t.Append(sep)
			t.Append(key.name)
			t.Append(";")
		})
		extra.setImported(key.name, key.pkg)
		return true
	})
	if out.IsEmpty() {
		return nil
	}
	return out
}
