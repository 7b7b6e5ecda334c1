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

package swift

import (
	"github.com/bufbuild/gentok"
)

// Constructor models a Swift initializer. Arguments render one per line,
// indented, when present.
type Constructor struct {
	// Constructor modifiers.
	Modifiers []Modifier
	// Arguments of the constructor.
	Arguments []Argument
	// Body of the constructor.
	Body *Tokens
	// Whether the constructor throws.
	Throws bool
}

// NewConstructor returns a public initializer with an empty body.
func NewConstructor() Constructor {
	return Constructor{
		Modifiers: []Modifier{Public},
		Body:      &Tokens{},
	}
}

// Tokens returns the constructor as a token stream.
func (c Constructor) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(c.Modifiers).Elements())

	group := &Tokens{}
	group.Append("init")
	if len(c.Arguments) > 0 {
		args := &Tokens{}
		for _, a := range c.Arguments {
			args.AppendTokens(a.Tokens())
		}
		separator := &Tokens{}
		separator.Append(",")
		separator.AppendElement(gentok.PushLine[Swift, *Extra]())

		group.Append("(")
		group.NestedTokens(args.JoinTokens(separator))
		group.Append(")")
	} else {
		group.Append("()")
	}
	sig.AppendTokens(group)

	if c.Throws {
		sig.Append("throws")
	}

	t := &Tokens{}
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(c.Body)
	t.Push("}")
	return t
}
