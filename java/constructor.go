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

// Constructor models a Java constructor. The class name is supplied by the
// enclosing [Class] when rendering.
type Constructor struct {
	// Constructor modifiers.
	Modifiers []Modifier
	// Arguments of the constructor.
	Arguments []Argument
	// Body of the constructor.
	Body *Tokens
	// Comments associated with this constructor.
	Comments []string
	// Checked exceptions thrown by the constructor.
	Throws []Java

	annotations *Tokens
}

// NewConstructor returns a public constructor with an empty body.
func NewConstructor() Constructor {
	return Constructor{
		Modifiers:   []Modifier{Public},
		Body:        &Tokens{},
		annotations: &Tokens{},
	}
}

// Annotation adds an annotation on its own line before the constructor.
func (c *Constructor) Annotation(annotation *Tokens) {
	c.annotations.PushTokens(annotation)
}

// Tokens returns the constructor as a token stream, named after the
// enclosing class.
func (c Constructor) Tokens(name string) *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(c.Modifiers).Elements())
	sig.AppendTokens(nameAndArguments(name, c.Arguments))

	if len(c.Throws) > 0 {
		sig.Append("throws")
		exceptions := &Tokens{}
		for _, ex := range c.Throws {
			exceptions.AppendItem(ex)
		}
		sig.AppendTokens(exceptions.JoinLiteral(", "))
	}

	t := &Tokens{}
	t.PushUnlessEmpty(BlockComment(c.Comments).Tokens())
	t.PushUnlessEmpty(c.annotations)
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(c.Body)
	t.Push("}")
	return t
}
