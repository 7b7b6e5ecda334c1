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
	"reflect"
)

const (
	kindNone kind = iota

	kindLiteral    // Raw text, emitted verbatim.
	kindQuoted     // Text passed through the language's QuoteString.
	kindCustom     // A language-specific item.
	kindRegistered // A custom item visible to WalkCustom but never rendered.
	kindAppend     // A sub-tree rendered inline.
	kindPush       // A sub-tree guaranteed to start on a fresh line.
	kindNested     // A sub-tree rendered one indentation level deeper.
	kindSpace      // A single collapsing inter-token space.
	kindPushLine   // Forces the next content onto a fresh line.
	kindBlankLine  // Forces a full blank line before the next content.
)

// kind discriminates the closed set of [Element] variants.
type kind byte

// Element is one node of a token tree.
//
// The zero value is the empty element, which renders nothing and is dropped
// by [Tokens.AppendElement]. Elements are small values; copying one shares any
// sub-tree or custom item payload rather than deep-copying it.
type Element[C Custom[C, E], E any] struct {
	kind   kind
	text   string
	item   C
	tokens *Tokens[C, E]
}

// Literal returns an element that renders text verbatim.
func Literal[C Custom[C, E], E any](text string) Element[C, E] {
	return Element[C, E]{kind: kindLiteral, text: text}
}

// Quoted returns an element that renders text as a string literal, escaped
// through the target language's QuoteString.
func Quoted[C Custom[C, E], E any](text string) Element[C, E] {
	return Element[C, E]{kind: kindQuoted, text: text}
}

// Item returns an element wrapping a custom language item.
func Item[C Custom[C, E], E any](item C) Element[C, E] {
	return Element[C, E]{kind: kindCustom, item: item}
}

// Registered returns an element wrapping a custom item that participates in
// [Tokens.WalkCustom] but contributes no rendered text.
func Registered[C Custom[C, E], E any](item C) Element[C, E] {
	return Element[C, E]{kind: kindRegistered, item: item}
}

// Space returns the inter-token space directive. Adjacent space directives
// collapse to a single pending space.
func Space[C Custom[C, E], E any]() Element[C, E] {
	return Element[C, E]{kind: kindSpace}
}

// PushLine returns the directive forcing the next content onto a fresh line
// at the current indentation. Redundant on an already-fresh line.
func PushLine[C Custom[C, E], E any]() Element[C, E] {
	return Element[C, E]{kind: kindPushLine}
}

// BlankLine returns the directive forcing one full blank line before the
// next content.
func BlankLine[C Custom[C, E], E any]() Element[C, E] {
	return Element[C, E]{kind: kindBlankLine}
}

// None returns the empty element.
func None[C Custom[C, E], E any]() Element[C, E] {
	return Element[C, E]{}
}

// IsNone reports whether this is the empty element.
func (e Element[C, E]) IsNone() bool {
	return e.kind == kindNone
}

// Equals reports structural equality: two elements are equal if their
// rendered shape, literal content, and embedded items are equal. Sub-trees
// compare by content, not by pointer identity.
func (e Element[C, E]) Equals(other Element[C, E]) bool {
	if e.kind != other.kind || e.text != other.text {
		return false
	}
	switch e.kind {
	case kindCustom, kindRegistered:
		return reflect.DeepEqual(e.item, other.item)
	case kindAppend, kindPush, kindNested:
		a, b := e.tokens.elements, other.tokens.elements
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equals(b[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// format renders one element. This is the dispatch half of the whitespace
// state machine; the pending-flag half lives on [Formatter].
func (e Element[C, E]) format(out *Formatter, extra E, level int) error {
	switch e.kind {
	case kindLiteral:
		return out.WriteString(e.text)
	case kindQuoted:
		var lang C
		return lang.QuoteString(out, e.text)
	case kindCustom:
		return e.item.Format(out, extra, level)
	case kindAppend:
		return e.tokens.Format(out, extra, level)
	case kindPush:
		out.PushLine()
		return e.tokens.Format(out, extra, level)
	case kindNested:
		// Indentation is scoped to this call and always unwinds, no matter
		// what the sub-tree does.
		out.Indent()
		err := e.tokens.Format(out, extra, level+1)
		out.Unindent()
		return err
	case kindSpace:
		out.Space()
	case kindPushLine:
		out.PushLine()
	case kindBlankLine:
		out.BlankLine()
	case kindRegistered, kindNone:
		// No output.
	}
	return nil
}
