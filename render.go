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
	"context"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Format renders t to out at the given nesting level, threading extra through
// every custom item. Rendering is a single pass with no backtracking; the
// only failure mode is a write failure from the underlying sink.
func (t *Tokens[C, E]) Format(out *Formatter, extra E, level int) error {
	for _, el := range t.elements {
		if err := el.format(out, extra, level); err != nil {
			return err
		}
	}
	return nil
}

// String renders t as a bare fragment, without file assembly.
func (t *Tokens[C, E]) String(extra E) (string, error) {
	return t.StringWithOptions(extra, Options{})
}

// StringWithOptions is [Tokens.String] with explicit formatter options.
func (t *Tokens[C, E]) StringWithOptions(extra E, opts Options) (string, error) {
	var buf strings.Builder
	out := NewFormatter(&buf, opts)
	if err := t.Format(out, extra, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// File renders t as a complete source file: the language's WriteFile
// assembles the prologue (package declaration, import block) around the
// body, and the output is terminated with exactly one newline.
func (t *Tokens[C, E]) File(extra E) (string, error) {
	return t.FileWithOptions(extra, Options{})
}

// FileWithOptions is [Tokens.File] with explicit formatter options.
func (t *Tokens[C, E]) FileWithOptions(extra E, opts Options) (string, error) {
	var buf strings.Builder
	out := NewFormatter(&buf, opts)
	var lang C
	if err := lang.WriteFile(t, out, extra, 0); err != nil {
		return "", err
	}
	if err := out.NewlineUnlessEmpty(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderFiles renders each tree in files as a complete source file,
// in parallel, and returns the rendered files in the same order.
//
// newExtra is called once per file to create that render's extra state, so
// concurrent renders never share mutable state. maxParallelism bounds the
// number of in-flight renders; if it is unset or non-positive,
// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) is used.
//
// On failure RenderFiles returns the first error encountered and cancels
// renders that have not yet started.
func RenderFiles[C Custom[C, E], E any](ctx context.Context, files []*Tokens[C, E], newExtra func() E, maxParallelism int) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := maxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		if cpus := runtime.NumCPU(); par > cpus {
			par = cpus
		}
	}

	var (
		wg      sync.WaitGroup
		sem     = semaphore.NewWeighted(int64(par))
		out     = make([]string, len(files))
		errs    = make([]error, len(files))
		aborted error
	)
	for i, tree := range files {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled, either by the caller or by a failed render.
			aborted = err
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			text, err := tree.File(newExtra())
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			out[i] = text
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if aborted != nil {
		return nil, aborted
	}
	return out, nil
}
