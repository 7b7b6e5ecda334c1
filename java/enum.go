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

package java

import (
	"github.com/bufbuild/gentok"
)

// Enum models a Java enum declaration: variants first, one per line, then
// fields, constructors, and methods separated by blank lines.
type Enum struct {
	// Variants of the enum, one element per variant.
	Variants *Tokens
	// Enum modifiers.
	Modifiers []Modifier
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// Extra body, added after the declared members.
	Body *Tokens

	annotations *Tokens
	name        string
}

// NewEnum returns a public enum with the given name.
func NewEnum(name string) Enum {
	return Enum{
		Variants:    &Tokens{},
		Modifiers:   []Modifier{Public},
		Body:        &Tokens{},
		annotations: &Tokens{},
		name:        name,
	}
}

// Annotation adds an annotation on its own line before the enum.
func (e *Enum) Annotation(annotation *Tokens) {
	e.annotations.PushTokens(annotation)
}

// Name returns the name of the enum.
func (e Enum) Name() string {
	return e.name
}

// Tokens returns the enum as a token stream.
func (e Enum) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(e.Modifiers).Elements())
	sig.Append("enum")
	sig.Append(e.name)

	t := &Tokens{}
	t.PushUnlessEmpty(e.annotations)
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(e.body())
	t.Push("}")
	return t
}

func (e Enum) body() *Tokens {
	body := &Tokens{}

	if !e.Variants.IsEmpty() {
		separator := &Tokens{}
		separator.Append(",")
		separator.AppendElement(gentok.PushLine[Java, *Extra]())

		variants := e.Variants.JoinTokens(separator)
		variants.Append(";")
		body.PushTokens(variants)
	}

	for _, field := range e.Fields {
		body.PushInto(func(t *Tokens) {
			t.AppendTokens(field.Tokens())
			t.Append(";")
		})
	}
	for _, constructor := range e.Constructors {
		body.PushTokens(constructor.Tokens(e.name))
	}
	for _, method := range e.Methods {
		body.PushTokens(method.Tokens())
	}
	body.Extend(e.Body.Elements())

	return body.JoinLineSpacing()
}
