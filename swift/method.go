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

// Method models a Swift function. A method with an empty body renders as a
// declaration terminated by a semicolon, as protocol requirements do.
type Method struct {
	// Method modifiers.
	Modifiers []Modifier
	// Arguments of the method.
	Arguments []Argument
	// Body of the method.
	Body *Tokens
	// Return type. The zero value and Void both render no return clause.
	Returns Swift
	// Generic parameters.
	Parameters *Tokens
	// Comments associated with this method.
	Comments []string
	// Whether the method throws.
	Throws bool

	attributes *Tokens
	name       string
}

// NewMethod returns a public method with the given name.
func NewMethod(name string) Method {
	return Method{
		Modifiers:  []Modifier{Public},
		Body:       &Tokens{},
		Parameters: &Tokens{},
		attributes: &Tokens{},
		name:       name,
	}
}

// Attribute adds an attribute on its own line before the method.
func (m *Method) Attribute(attribute *Tokens) {
	m.attributes.PushTokens(attribute)
}

// Name returns the name of the method.
func (m Method) Name() string {
	return m.name
}

// Tokens returns the method as a token stream.
func (m Method) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(m.Modifiers).Elements())

	n := &Tokens{}
	n.Append("func ")
	n.Append(m.name)
	if !m.Parameters.IsEmpty() {
		n.Append("<")
		n.AppendTokens(m.Parameters.JoinLiteral(", "))
		n.Append(">")
	}
	n.Append("(")
	args := &Tokens{}
	for _, a := range m.Arguments {
		args.AppendTokens(a.Tokens())
	}
	n.AppendTokens(args.JoinLiteral(", "))
	n.Append(")")
	sig.AppendTokens(n)

	if m.Returns.kind != 0 && m.Returns != Void {
		sig.Append("->")
		sig.AppendItem(m.Returns)
	}

	if m.Throws {
		sig.Append("throws")
	}

	t := &Tokens{}
	t.PushUnlessEmpty(BlockComment(m.Comments).Tokens())
	t.PushUnlessEmpty(m.attributes)

	signature := sig.JoinSpacing()
	if m.Body.IsEmpty() {
		t.PushInto(func(t *Tokens) {
			t.AppendTokens(signature)
			t.Append(";")
		})
		return t
	}
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(signature)
		t.Append(" {")
	})
	t.NestedTokens(m.Body)
	t.Push("}")
	return t
}
