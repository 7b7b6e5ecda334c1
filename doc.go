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

// Package gentok is a language-agnostic code-generation toolkit. It models
// fragments of target-language source text as a tree of typed tokens and
// renders that tree into well-formed, correctly indented source code.
//
// The two central types are [Tokens], an ordered sequence of elements, and
// [Element], a single node of the tree: a literal fragment, a custom
// target-language item, a whitespace directive, or a nested sub-tree. Trees
// are built through the methods on [Tokens] (Append, Push, Nested and
// friends) and rendered with [Tokens.String] or [Tokens.File].
//
// Target languages plug in through the [Custom] contract, which controls how
// language-specific items print at a given nesting level, how string literals
// are quoted, and how a complete file is assembled around a body (package
// declarations, import collation). The java and swift sub-packages are the
// two built-in targets.
//
// Rendering is a single depth-first pass over the tree. Whitespace directives
// never emit text immediately; they set pending state on the [Formatter] that
// is consumed by the next piece of content, so adjacent directives collapse
// instead of compounding and queued whitespace at the end of a stream is
// discarded.
//
// Trees are cheap to clone and safe to render from multiple goroutines, as
// long as each render uses its own extra state. See [RenderFiles] for a
// bounded-parallelism helper that renders many files at once.
package gentok
