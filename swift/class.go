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

// Class models a Swift class declaration.
type Class struct {
	// Class modifiers.
	Modifiers []Modifier
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// Protocols and superclasses this class conforms to.
	Implements []Swift
	// Generic parameters.
	Parameters *Tokens

	attributes *Tokens
	name       string
}

// NewClass returns a public class with the given name.
func NewClass(name string) Class {
	return Class{
		Modifiers:  []Modifier{Public},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the class.
func (c *Class) Attribute(attribute *Tokens) {
	c.attributes.PushTokens(attribute)
}

// Name returns the name of the class.
func (c Class) Name() string {
	return c.name
}

// Tokens returns the class as a token stream.
func (c Class) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(c.Modifiers).Elements())
	sig.Append("class")
	sig.AppendTokens(nameWithParameters(c.name, c.Parameters))
	appendImplements(sig, c.Implements)

	return declaration(sig, c.attributes, memberBody(c.Fields, c.Constructors, c.Methods))
}

// nameWithParameters renders name, followed by comma-separated generic
// parameters in angle brackets when parameters is non-empty.
func nameWithParameters(name string, parameters *Tokens) *Tokens {
	t := &Tokens{}
	t.Append(name)
	if !parameters.IsEmpty() {
		t.Append("<")
		t.AppendTokens(parameters.JoinLiteral(", "))
		t.Append(">")
	}
	return t
}

// appendImplements appends the conformance clause to a signature, as sibling
// elements spaced by the caller's final join.
func appendImplements(sig *Tokens, implements []Swift) {
	if len(implements) == 0 {
		return
	}
	sig.Append(":")
	impl := &Tokens{}
	for _, i := range implements {
		impl.AppendItem(i)
	}
	sig.AppendTokens(impl.JoinLiteral(", "))
}

// memberBody renders fields, constructors, and methods, in that order, each
// on its own line and separated by blank lines.
func memberBody(fields []Field, constructors []Constructor, methods []Method) *Tokens {
	body := &Tokens{}
	for _, field := range fields {
		body.PushTokens(field.Tokens())
	}
	for _, constructor := range constructors {
		body.PushTokens(constructor.Tokens())
	}
	for _, method := range methods {
		body.PushTokens(method.Tokens())
	}
	return body.JoinLineSpacing()
}

// declaration assembles attributes, a spaced signature with an opening
// brace, an indented body, and the closing brace.
func declaration(sig, attributes, body *Tokens) *Tokens {
	t := &Tokens{}
	t.PushUnlessEmpty(attributes)
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(body)
	t.Push("}")
	return t
}
