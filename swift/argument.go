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

// Argument models an argument to a function or initializer, with an optional
// default value.
type Argument struct {
	ty          Swift
	name        string
	initializer *Tokens
}

// NewArgument returns an argument of the given type and name.
func NewArgument(ty Swift, name string) Argument {
	return Argument{
		ty:          ty,
		name:        name,
		initializer: &Tokens{},
	}
}

// SetInitializer sets the default value of the argument.
func (a *Argument) SetInitializer(initializer *Tokens) {
	a.initializer = initializer
}

// Var returns the name of the argument.
func (a Argument) Var() string {
	return a.name
}

// Type returns the type of the argument.
func (a Argument) Type() Swift {
	return a.ty
}

// Tokens returns the argument as a token stream.
func (a Argument) Tokens() *Tokens {
	s := &Tokens{}
	s.Append(a.name)
	s.Append(":")
	s.AppendItem(a.ty)
	if !a.initializer.IsEmpty() {
		s.Append("=")
		s.Extend(a.initializer.Elements())
	}
	return s.JoinSpacing()
}
