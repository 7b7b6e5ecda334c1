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

package gentok_test

import (
	"errors"
	"slices"

	"github.com/bufbuild/gentok"
)

// lang is a minimal language for exercising the renderer: items render as
// their name, quoting is C-style, and files get one "use" line per distinct
// import path.
type lang struct {
	name       string
	importPath string
}

// env is the per-render state of lang. It carries nothing; lang's file
// assembly is stateless.
type env struct{}

type toks = gentok.Tokens[lang, *env]

// The token tree is the canonical body view WriteFile receives.
var _ gentok.Body[lang, *env] = (*toks)(nil)

// errBadItem is returned when formatting an item with no name, which is how
// tests provoke a render failure.
var errBadItem = errors.New("item has no name")

func (l lang) Format(out *gentok.Formatter, _ *env, _ int) error {
	if l.name == "" {
		return errBadItem
	}
	return out.WriteString(l.name)
}

func (lang) QuoteString(out *gentok.Formatter, input string) error {
	if err := out.WriteRune('"'); err != nil {
		return err
	}
	for _, c := range input {
		var escaped string
		switch c {
		case '\n':
			escaped = `\n`
		case '"':
			escaped = `\"`
		case '\\':
			escaped = `\\`
		default:
			if err := out.WriteRune(c); err != nil {
				return err
			}
			continue
		}
		if err := out.WriteString(escaped); err != nil {
			return err
		}
	}
	return out.WriteRune('"')
}

func (lang) WriteFile(body gentok.Body[lang, *env], out *gentok.Formatter, extra *env, level int) error {
	seen := make(map[string]bool)
	var paths []string
	for item := range body.WalkCustom() {
		if item.importPath == "" || seen[item.importPath] {
			continue
		}
		seen[item.importPath] = true
		paths = append(paths, item.importPath)
	}
	slices.Sort(paths)

	imports := &toks{}
	for _, path := range paths {
		imports.Push("use " + path)
	}
	if !imports.IsEmpty() {
		if err := imports.Format(out, extra, level); err != nil {
			return err
		}
		out.BlankLine()
	}
	out.PushLine()
	return body.Format(out, extra, level)
}
