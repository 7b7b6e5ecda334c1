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

// Field models a Swift property: `let` or `var`, optional initializer, and
// optional getter/setter accessor blocks.
type Field struct {
	// Field modifiers.
	Modifiers []Modifier
	// Comments associated with this field.
	Comments []string

	ty          Swift
	name        string
	initializer *Tokens
	mutable     bool
	getter      *Tokens
	setter      *Tokens
}

// NewField returns a private immutable field of the given type and name.
func NewField(ty Swift, name string) Field {
	return Field{
		Modifiers: []Modifier{Private},
		ty:        ty,
		name:      name,
	}
}

// SetInitializer sets the initializer expression of the field.
func (f *Field) SetInitializer(initializer *Tokens) {
	f.initializer = initializer
}

// SetMutable makes the field render as `var` instead of `let`.
func (f *Field) SetMutable(mutable bool) {
	f.mutable = mutable
}

// SetGetter attaches a getter accessor. An empty, non-nil body renders a bare
// `get`, as protocol property requirements do.
func (f *Field) SetGetter(body *Tokens) {
	f.getter = body
}

// SetSetter attaches a setter accessor, with the same empty-body behavior as
// [Field.SetGetter].
func (f *Field) SetSetter(body *Tokens) {
	f.setter = body
}

// Var returns the name of the field.
func (f Field) Var() string {
	return f.name
}

// Type returns the type of the field.
func (f Field) Type() Swift {
	return f.ty
}

// Tokens returns the field as a token stream.
func (f Field) Tokens() *Tokens {
	t := &Tokens{}
	t.PushUnlessEmpty(BlockComment(f.Comments).Tokens())

	sig := &Tokens{}
	sig.Extend(modifierTokens(f.Modifiers).Elements())
	if f.mutable {
		sig.Append("var")
	} else {
		sig.Append("let")
	}
	sig.Append(f.name)
	sig.Append(":")
	sig.AppendItem(f.ty)
	if f.initializer != nil && !f.initializer.IsEmpty() {
		sig.Append("=")
		sig.AppendTokens(f.initializer)
	}
	t.AppendTokens(sig.JoinSpacing())

	if f.getter != nil || f.setter != nil {
		t.Space()
		t.Append("{")
		t.NestedTokens(f.accessors())
		t.Push("}")
	}

	return t
}

func (f Field) accessors() *Tokens {
	body := &Tokens{}
	if f.getter != nil {
		body.Push("get")
		if !f.getter.IsEmpty() {
			body.Space()
			body.Append("{")
			body.PushTokens(f.getter)
			body.Push("}")
		}
	}
	if f.setter != nil {
		body.Push("set")
		if !f.setter.IsEmpty() {
			body.Space()
			body.Append("{")
			body.PushTokens(f.setter)
			body.Push("}")
		}
	}
	return body
}
