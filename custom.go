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

package gentok

import (
	"iter"
)

// Body is the view of a token tree that [Custom].WriteFile receives: enough
// to render the body and to discover the custom items it references. It is
// implemented by [*Tokens].
//
// Custom cannot name Tokens directly, because Tokens constrains its item
// type by Custom; the unconstrained Body breaks that cycle.
type Body[C, E any] interface {
	// Format renders the body to out at the given nesting level.
	Format(out *Formatter, extra E, level int) error

	// WalkCustom returns an iterator over every custom item reachable in
	// the body, registered items included.
	WalkCustom() iter.Seq[C]
}

// Custom is the contract a target language implements to participate in
// rendering.
//
// C is the language's item type, the values embedded in a token stream with
// [Tokens.AppendItem] or [Tokens.Register] (for Java, a type reference; for
// Swift, a type or module reference). E is the language's per-render state,
// threaded through every format call; it is created fresh for each render
// and discarded afterwards, so renders never share mutable state.
//
// QuoteString and WriteFile are type-level operations: the renderer invokes
// them on the zero value of C, so they must not depend on receiver state.
type Custom[C, E any] interface {
	// Format writes this item to out. level is the number of Nested scopes
	// currently active; languages may render differently inside nested
	// positions (Java prints boxed primitives at level > 0).
	Format(out *Formatter, extra E, level int) error

	// QuoteString writes input to out as a string literal quoted and escaped
	// per this language's syntax.
	QuoteString(out *Formatter, input string) error

	// WriteFile assembles a complete source file around body, typically a
	// package declaration and a collated import block followed by the body
	// separated with blank lines. Imports are discovered with
	// [Body.WalkCustom].
	WriteFile(body Body[C, E], out *Formatter, extra E, level int) error
}
