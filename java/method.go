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

// Method models a Java method. A method with an empty body renders as a
// declaration terminated by a semicolon.
type Method struct {
	// Method modifiers.
	Modifiers []Modifier
	// Arguments of the method.
	Arguments []Argument
	// Body of the method.
	Body *Tokens
	// Return type. Defaults to void.
	Returns Java
	// Generic parameters.
	Parameters *Tokens
	// Comments associated with this method.
	Comments []string
	// Checked exceptions thrown by the method.
	Throws []Java

	annotations *Tokens
	name        string
}

// NewMethod returns a public void method with the given name.
func NewMethod(name string) Method {
	return Method{
		Modifiers:   []Modifier{Public},
		Body:        &Tokens{},
		Returns:     Void,
		Parameters:  &Tokens{},
		annotations: &Tokens{},
		name:        name,
	}
}

// Annotation adds an annotation on its own line before the method.
func (m *Method) Annotation(annotation *Tokens) {
	m.annotations.PushTokens(annotation)
}

// Name returns the name of the method.
func (m Method) Name() string {
	return m.name
}

// Tokens returns the method as a token stream.
func (m Method) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(m.Modifiers).Elements())

	if !m.Parameters.IsEmpty() {
		par := &Tokens{}
		par.Append("<")
		par.AppendTokens(m.Parameters.JoinLiteral(", "))
		par.Append(">")
		sig.AppendTokens(par)
	}

	sig.AppendItem(m.Returns)

	sig.AppendTokens(nameAndArguments(m.name, m.Arguments))

	if len(m.Throws) > 0 {
		sig.Append("throws")
		exceptions := &Tokens{}
		for _, ex := range m.Throws {
			exceptions.AppendItem(ex)
		}
		sig.AppendTokens(exceptions.JoinLiteral(", "))
	}

	t := &Tokens{}
	t.PushUnlessEmpty(BlockComment(m.Comments).Tokens())
	t.PushUnlessEmpty(m.annotations)

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

// nameAndArguments renders name followed by the parenthesized,
// comma-separated argument list.
func nameAndArguments(name string, arguments []Argument) *Tokens {
	n := &Tokens{}
	n.Append(name)
	n.Append("(")
	args := &Tokens{}
	for _, a := range arguments {
		args.AppendTokens(a.Tokens())
	}
	n.AppendTokens(args.JoinLiteral(", "))
	n.Append(")")
	return n
}
