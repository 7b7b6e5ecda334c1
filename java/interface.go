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

// Interface models a Java interface declaration.
type Interface struct {
	// Interface modifiers.
	Modifiers []Modifier
	// Declared methods.
	Methods []Method
	// Extra body, added after the declared methods.
	Body *Tokens
	// The interfaces this interface extends.
	Extends []Java
	// Generic parameters.
	Parameters *Tokens

	annotations *Tokens
	name        string
}

// NewInterface returns a public interface with the given name.
func NewInterface(name string) Interface {
	return Interface{
		Modifiers:   []Modifier{Public},
		Body:        &Tokens{},
		Parameters:  &Tokens{},
		annotations: &Tokens{},
		name:        name,
	}
}

// Annotation adds an annotation on its own line before the interface.
func (i *Interface) Annotation(annotation *Tokens) {
	i.annotations.PushTokens(annotation)
}

// Name returns the name of the interface.
func (i Interface) Name() string {
	return i.name
}

// Tokens returns the interface as a token stream.
func (i Interface) Tokens() *Tokens {
	sig := &Tokens{}
	sig.Extend(modifierTokens(i.Modifiers).Elements())
	sig.Append("interface")
	sig.AppendTokens(nameWithParameters(i.name, i.Parameters))

	if len(i.Extends) > 0 {
		sig.Append("extends")
		ext := &Tokens{}
		for _, e := range i.Extends {
			ext.AppendItem(e)
		}
		sig.AppendTokens(ext.JoinLiteral(", "))
	}

	t := &Tokens{}
	t.PushUnlessEmpty(i.annotations)
	t.PushInto(func(t *Tokens) {
		t.AppendTokens(sig.JoinSpacing())
		t.Append(" {")
	})
	t.NestedTokens(i.body())
	t.Push("}")
	return t
}

func (i Interface) body() *Tokens {
	body := &Tokens{}
	for _, method := range i.Methods {
		body.PushTokens(method.Tokens())
	}
	body.Extend(i.Body.Elements())
	return body.JoinLineSpacing()
}
