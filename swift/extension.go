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

// Extension models a Swift extension declaration.
type Extension struct {
	// Extension modifiers.
	Modifiers []Modifier
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// Protocols this extension conforms the type to.
	Implements []Swift
	// Generic parameters.
	Parameters *Tokens

	attributes *Tokens
	name       string
}

// NewExtension returns a public extension of the given type name.
func NewExtension(name string) Extension {
	return Extension{
		Modifiers:  []Modifier{Public},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the extension.
func (e *Extension) Attribute(attribute *Tokens) {
	e.attributes.PushTokens(attribute)
}

// Name returns the name of the extended type.
func (e Extension) Name() string {
	return e.name
}

// Tokens returns the extension as a token stream.
func (e Extension) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(e.Modifiers).Elements())
	sig.Append("extension")
	sig.AppendTokens(nameWithParameters(e.name, e.Parameters))
	appendImplements(sig, e.Implements)

	return declaration(sig, e.attributes, memberBody(e.Fields, e.Constructors, e.Methods))
}
