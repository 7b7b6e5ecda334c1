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

// Enum models a Swift enum declaration.
type Enum struct {
	// Enum modifiers.
	Modifiers []Modifier
	// Enum cases, rendered one per line and prefixed with the case keyword.
	Variants []*Tokens
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// Protocols this enum conforms to.
	Implements []Swift
	// Generic parameters.
	Parameters *Tokens

	attributes *Tokens
	name       string
}

// NewEnum returns a public enum with the given name.
func NewEnum(name string) Enum {
	return Enum{
		Modifiers:  []Modifier{Public},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the enum.
func (e *Enum) Attribute(attribute *Tokens) {
	e.attributes.PushTokens(attribute)
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
	sig.AppendTokens(nameWithParameters(e.name, e.Parameters))
	appendImplements(sig, e.Implements)

	body := &Tokens{}
	cases := &Tokens{}
	for _, variant := range e.Variants {
		cases.PushInto(func(t *Tokens) {
			t.Append("case ")
			t.AppendTokens(variant)
		})
	}
	body.PushUnlessEmpty(cases)
	body.PushUnlessEmpty(memberBody(e.Fields, e.Constructors, e.Methods))

	return declaration(sig, e.attributes, body.JoinLineSpacing())
}
