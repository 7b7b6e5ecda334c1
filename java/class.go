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

// Class models a Java class declaration: fields, constructors, and methods
// separated by blank lines, plus arbitrary extra body content.
type Class struct {
	// Class modifiers.
	Modifiers []Modifier
	// Declared fields.
	Fields []Field
	// Declared constructors.
	Constructors []Constructor
	// Declared methods.
	Methods []Method
	// The class this class extends, if any.
	Extends *Java
	// The interfaces this class implements.
	Implements []Java
	// Generic parameters.
	Parameters *Tokens
	// Extra body, added after the declared members.
	Body *Tokens

	annotations *Tokens
	name        string
}

// NewClass returns a public class with the given name.
func NewClass(name string) Class {
	return Class{
		Modifiers:   []Modifier{Public},
		Parameters:  &Tokens{},
		Body:        &Tokens{},
		annotations: &Tokens{},
		name:        name,
	}
}

// Annotation adds an annotation on its own line before the class.
func (c *Class) Annotation(annotation *Tokens) {
	c.annotations.PushTokens(annotation)
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

	if c.Extends != nil {
		sig.Append("extends")
		sig.AppendItem(*c.Extends)
	}

	if len(c.Implements) > 0 {
		sig.Append("implements")
		impl := &Tokens{}
		for _, i := range c.Implements {
			impl.AppendItem(i)
		}
		sig.AppendTokens(impl.JoinLiteral(", "))
	}

	t := &Tokens{}
	t.PushUnlessEmpty(c.annotations)
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(c.body())
	t.Push("}")
	return t
}

func (c Class) body() *Tokens {
	body := &Tokens{}
	for _, field := range c.Fields {
		body.PushInto(func(t *Tokens) {
			t.AppendTokens(field.Tokens())
			t.Append(";")
		})
	}
	for _, constructor := range c.Constructors {
		body.PushTokens(constructor.Tokens(c.name))
	}
	for _, method := range c.Methods {
		body.PushTokens(method.Tokens())
	}
	body.Extend(c.Body.Elements())
	return body.JoinLineSpacing()
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
