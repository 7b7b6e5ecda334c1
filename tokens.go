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
	"slices"
)

// Tokens is an ordered sequence of elements representing a fragment of
// generated source.
//
// The zero value is an empty sequence ready for use. Trees are built once
// through the methods below and are not mutated by rendering; mutation during
// a render is confined to the language's extra state and the formatter.
type Tokens[C Custom[C, E], E any] struct {
	elements []Element[C, E]
}

// New returns a new empty token sequence.
func New[C Custom[C, E], E any]() *Tokens[C, E] {
	return &Tokens[C, E]{}
}

// AppendElement appends el. The empty element is discarded, so stored
// elements are always meaningful and Len reflects only real content.
func (t *Tokens[C, E]) AppendElement(el Element[C, E]) {
	if el.kind == kindNone {
		return
	}
	t.elements = append(t.elements, el)
}

// Append appends a literal text fragment.
func (t *Tokens[C, E]) Append(text string) {
	t.AppendElement(Literal[C, E](text))
}

// AppendQuoted appends a text fragment to be rendered through the target
// language's string quoting.
func (t *Tokens[C, E]) AppendQuoted(text string) {
	t.AppendElement(Quoted[C, E](text))
}

// AppendItem appends a custom language item.
func (t *Tokens[C, E]) AppendItem(item C) {
	t.AppendElement(Item[C, E](item))
}

// AppendTokens appends other as an inline sub-tree, with no forced break
// before or after it.
func (t *Tokens[C, E]) AppendTokens(other *Tokens[C, E]) {
	t.AppendElement(Element[C, E]{kind: kindAppend, tokens: other})
}

// AppendUnlessEmpty is [Tokens.AppendTokens], except that an empty other
// contributes nothing at all. Useful for attaching optional content without
// a conditional at the call site.
func (t *Tokens[C, E]) AppendUnlessEmpty(other *Tokens[C, E]) {
	if other.IsEmpty() {
		return
	}
	t.AppendTokens(other)
}

// PushTokens appends other as a sub-tree guaranteed to start on a fresh line,
// even when nothing before it requested a break.
func (t *Tokens[C, E]) PushTokens(other *Tokens[C, E]) {
	t.AppendElement(Element[C, E]{kind: kindPush, tokens: other})
}

// Push appends a single literal guaranteed to start on a fresh line.
func (t *Tokens[C, E]) Push(text string) {
	sub := New[C, E]()
	sub.Append(text)
	t.PushTokens(sub)
}

// PushUnlessEmpty is [Tokens.PushTokens], except that an empty other
// contributes nothing at all.
func (t *Tokens[C, E]) PushUnlessEmpty(other *Tokens[C, E]) {
	if other.IsEmpty() {
		return
	}
	t.PushTokens(other)
}

// PushInto builds a new sub-tree with build and pushes it.
func (t *Tokens[C, E]) PushInto(build func(*Tokens[C, E])) {
	sub := New[C, E]()
	build(sub)
	t.PushTokens(sub)
}

// TryPushInto is [Tokens.PushInto] for fallible builders. If build returns an
// error it is propagated and the partially built sub-tree is discarded; t is
// never mutated on failure.
func (t *Tokens[C, E]) TryPushInto(build func(*Tokens[C, E]) error) error {
	sub := New[C, E]()
	if err := build(sub); err != nil {
		return err
	}
	t.PushTokens(sub)
	return nil
}

// NestedTokens appends other as a sub-tree rendered with indentation
// increased by one level for its duration and restored afterwards.
func (t *Tokens[C, E]) NestedTokens(other *Tokens[C, E]) {
	t.AppendElement(Element[C, E]{kind: kindNested, tokens: other})
}

// NestedInto builds a new sub-tree with build and nests it.
func (t *Tokens[C, E]) NestedInto(build func(*Tokens[C, E])) {
	sub := New[C, E]()
	build(sub)
	t.NestedTokens(sub)
}

// TryNestedInto is [Tokens.NestedInto] for fallible builders, with the same
// all-or-nothing contract as [Tokens.TryPushInto].
func (t *Tokens[C, E]) TryNestedInto(build func(*Tokens[C, E]) error) error {
	sub := New[C, E]()
	if err := build(sub); err != nil {
		return err
	}
	t.NestedTokens(sub)
	return nil
}

// Space appends the collapsing inter-token space directive.
func (t *Tokens[C, E]) Space() {
	t.AppendElement(Space[C, E]())
}

// PushLine appends the fresh-line directive.
func (t *Tokens[C, E]) PushLine() {
	t.AppendElement(PushLine[C, E]())
}

// BlankLine appends the blank-line directive.
func (t *Tokens[C, E]) BlankLine() {
	t.AppendElement(BlankLine[C, E]())
}

// Register attaches item so that it is visible to [Tokens.WalkCustom] (and
// thus to import collation) without rendering any inline text for it.
func (t *Tokens[C, E]) Register(item C) {
	t.AppendElement(Registered[C, E](item))
}

// Insert inserts el at position pos, shifting later elements.
func (t *Tokens[C, E]) Insert(pos int, el Element[C, E]) {
	if el.kind == kindNone {
		return
	}
	t.elements = slices.Insert(t.elements, pos, el)
}

// Extend bulk-appends elements in order. Empty elements are discarded.
func (t *Tokens[C, E]) Extend(elements iter.Seq[Element[C, E]]) {
	for el := range elements {
		t.AppendElement(el)
	}
}

// Elements returns an iterator over the elements of t, in order.
func (t *Tokens[C, E]) Elements() iter.Seq[Element[C, E]] {
	return func(yield func(Element[C, E]) bool) {
		for _, el := range t.elements {
			if !yield(el) {
				return
			}
		}
	}
}

// IsEmpty reports whether t contains no elements. It is defined purely by
// element count; a non-empty tree may still render to an empty string.
func (t *Tokens[C, E]) IsEmpty() bool {
	return len(t.elements) == 0
}

// Len returns the number of elements in t.
func (t *Tokens[C, E]) Len() int {
	return len(t.elements)
}

// Clone returns a copy of t. The copy shares sub-trees and item payloads with
// the original, which is safe because rendering never mutates them.
func (t *Tokens[C, E]) Clone() *Tokens[C, E] {
	return &Tokens[C, E]{elements: slices.Clone(t.elements)}
}

// Join returns a new sequence with a copy of sep inserted strictly between
// consecutive elements of t. Joining zero or one elements inserts no
// separator.
func (t *Tokens[C, E]) Join(sep Element[C, E]) *Tokens[C, E] {
	out := New[C, E]()
	for _, el := range t.elements {
		if el.kind == kindNone {
			continue
		}
		if len(out.elements) > 0 {
			out.elements = append(out.elements, sep)
		}
		out.elements = append(out.elements, el)
	}
	return out
}

// JoinTokens joins on a copy of a whole sub-tree separator, rendered inline.
func (t *Tokens[C, E]) JoinTokens(sep *Tokens[C, E]) *Tokens[C, E] {
	return t.Join(Element[C, E]{kind: kindAppend, tokens: sep})
}

// JoinLiteral joins on a literal separator such as ", ".
func (t *Tokens[C, E]) JoinLiteral(sep string) *Tokens[C, E] {
	return t.Join(Literal[C, E](sep))
}

// JoinSpacing joins on the inter-token space directive.
func (t *Tokens[C, E]) JoinSpacing() *Tokens[C, E] {
	return t.Join(Space[C, E]())
}

// JoinLineSpacing joins on the blank-line directive.
func (t *Tokens[C, E]) JoinLineSpacing() *Tokens[C, E] {
	return t.Join(BlankLine[C, E]())
}
