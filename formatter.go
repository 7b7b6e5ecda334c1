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
	"io"
	"strings"
	"unicode"

	"github.com/bufbuild/gentok/internal/ext/stringsx"
)

// Options specifies configuration for a [Formatter].
type Options struct {
	// The string written once per indentation level at the start of each
	// non-empty line. Defaults to two spaces.
	Indent string
}

// WithDefaults replaces any unset (read: zero value) fields of an Options
// which specify a default value with that default value.
//
// An Indent that contains non-whitespace is treated as unset.
func (o Options) WithDefaults() Options {
	if !stringsx.EveryFunc(o.Indent, unicode.IsSpace) || o.Indent == "" {
		o.Indent = "  "
	}
	return o
}

// Formatter writes rendered tokens to an underlying sink, translating
// whitespace directives into concrete spaces, newlines, and indentation.
//
// Directives never write immediately. They set pending flags that the next
// piece of content consumes, which is what makes adjacent directives collapse
// (two spaces are still one space, a push onto an already-fresh line is a
// no-op) and queued whitespace at the very end of a render vanish instead of
// producing trailing blanks.
type Formatter struct {
	w    io.Writer
	opts Options

	indent int
	column int

	// Pending whitespace, consumed and cleared by the next write.
	space bool
	line  bool
	blank bool

	lineClean bool // the current line has no content yet
	wrote     bool // anything has been written at all
}

// NewFormatter returns a formatter writing to w.
func NewFormatter(w io.Writer, opts Options) *Formatter {
	return &Formatter{w: w, opts: opts.WithDefaults(), lineClean: true}
}

// WriteString writes s verbatim, first materializing any pending whitespace.
// Writing an empty string is a no-op and does not consume pending state.
func (f *Formatter) WriteString(s string) error {
	if s == "" {
		return nil
	}
	if err := f.flush(); err != nil {
		return err
	}
	if err := f.write(s); err != nil {
		return err
	}
	f.column += stringsx.Width(s)
	f.lineClean = false
	f.wrote = true
	return nil
}

// WriteRune writes a single rune, as [Formatter.WriteString] would.
func (f *Formatter) WriteRune(r rune) error {
	return f.WriteString(string(r))
}

// Indent increases the indentation level by one. The renderer pairs every
// Indent with an Unindent around a nested sub-tree; custom items that call it
// directly must do the same.
func (f *Formatter) Indent() {
	f.indent++
}

// Unindent decreases the indentation level by one.
func (f *Formatter) Unindent() {
	if f.indent > 0 {
		f.indent--
	}
}

// Space requests a single space before the next content. Collapses with
// adjacent requests and is dropped when a line break intervenes.
func (f *Formatter) Space() {
	f.space = true
}

// PushLine requests that the next content start on a fresh line at the
// current indentation. Idempotent: a flag, not a counter.
func (f *Formatter) PushLine() {
	f.line = true
}

// BlankLine requests one full blank line before the next content.
func (f *Formatter) BlankLine() {
	f.blank = true
}

// NewlineUnlessEmpty terminates the current line if it has content, and
// discards any still-pending whitespace. Used to finish a file with exactly
// one trailing newline.
func (f *Formatter) NewlineUnlessEmpty() error {
	f.space, f.line, f.blank = false, false, false
	if f.lineClean {
		return nil
	}
	if err := f.write("\n"); err != nil {
		return err
	}
	f.lineClean = true
	f.column = 0
	return nil
}

// Column returns the display-width column the next character would land on.
// Pending whitespace is not included.
func (f *Formatter) Column() int {
	return f.column
}

// flush materializes pending whitespace ahead of a content write.
func (f *Formatter) flush() error {
	broke := false
	switch {
	case f.blank:
		// A blank line is meaningless before the first content.
		if f.wrote {
			if err := f.write("\n\n"); err != nil {
				return err
			}
			broke = true
		}
	case f.line:
		if !f.lineClean {
			if err := f.write("\n"); err != nil {
				return err
			}
			broke = true
		}
	}
	if broke {
		f.lineClean = true
		f.column = 0
	}

	if f.lineClean {
		if f.indent > 0 {
			prefix := strings.Repeat(f.opts.Indent, f.indent)
			if err := f.write(prefix); err != nil {
				return err
			}
			f.column = stringsx.Width(prefix)
		}
	} else if f.space {
		if err := f.write(" "); err != nil {
			return err
		}
		f.column++
	}

	f.space, f.line, f.blank = false, false, false
	return nil
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}
