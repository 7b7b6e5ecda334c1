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

// Argument models an argument to a method or constructor.
type Argument struct {
	// Argument modifiers.
	Modifiers []Modifier

	ty   Java
	name string
}

// NewArgument returns a final argument of the given type and name.
func NewArgument(ty Java, name string) Argument {
	return Argument{
		Modifiers: []Modifier{Final},
		ty:        ty,
		name:      name,
	}
}

// Var returns the name of the argument.
func (a Argument) Var() string {
	return a.name
}

// Type returns the type of the argument.
func (a Argument) Type() Java {
	return a.ty
}

// Tokens returns the argument as a token stream.
func (a Argument) Tokens() *Tokens {
	s := &Tokens{}
	s.Extend(modifierTokens(a.Modifiers).Elements())
	s.AppendItem(a.ty)
	s.Append(a.name)
	return s.JoinSpacing()
}
