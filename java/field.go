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

// Field models a Java field declaration. The trailing semicolon is added by
// the enclosing [Class] or [Enum].
type Field struct {
	// Field modifiers.
	Modifiers []Modifier
	// Comments associated with this field.
	Comments []string

	ty          Java
	name        string
	initializer *Tokens
}

// NewField returns a private final field of the given type and name.
func NewField(ty Java, name string) Field {
	return Field{
		Modifiers: []Modifier{Private, Final},
		ty:        ty,
		name:      name,
	}
}

// SetInitializer sets the initializer expression of the field.
func (f *Field) SetInitializer(initializer *Tokens) {
	f.initializer = initializer
}

// Var returns the name of the field.
func (f Field) Var() string {
	return f.name
}

// Type returns the type of the field.
func (f Field) Type() Java {
	return f.ty
}

// Tokens returns the field as a token stream.
func (f Field) Tokens() *Tokens {
	t := &Tokens{}
	t.PushUnlessEmpty(BlockComment(f.Comments).Tokens())

	sig := &Tokens{}
	sig.Extend(modifierTokens(f.Modifiers).Elements())
	sig.AppendItem(f.ty)
	sig.Append(f.name)
	if f.initializer != nil && !f.initializer.IsEmpty() {
		sig.Append("=")
		sig.AppendTokens(f.initializer)
	}
	t.AppendTokens(sig.JoinSpacing())

	return t
}
