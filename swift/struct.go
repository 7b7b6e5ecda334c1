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

// Struct models a Swift struct declaration.
type Struct struct {
	// Struct modifiers.
	Modifiers []Modifier
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// Protocols this struct conforms to.
	Implements []Swift
	// Generic parameters.
	Parameters *Tokens

	attributes *Tokens
	name       string
}

// NewStruct returns a public struct with the given name.
func NewStruct(name string) Struct {
	return Struct{
		Modifiers:  []Modifier{Public},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the struct.
func (s *Struct) Attribute(attribute *Tokens) {
	s.attributes.PushTokens(attribute)
}

// Name returns the name of the struct.
func (s Struct) Name() string {
	return s.name
}

// Tokens returns the struct as a token stream.
func (s Struct) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(s.Modifiers).Elements())
	sig.Append("struct")
	sig.AppendTokens(nameWithParameters(s.name, s.Parameters))
	appendImplements(sig, s.Implements)

	return declaration(sig, s.attributes, memberBody(s.Fields, s.Constructors, s.Methods))
}
