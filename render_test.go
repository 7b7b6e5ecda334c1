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
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/gentok"
)

func TestStringHasNoTrailingNewline(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.Push("a")
	ts.Push("b")
	assert.Equal(t, "a\nb", render(t, ts))
}

func TestFile(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{name: "Reader", importPath: "io"})
	ts.Space()
	ts.AppendItem(lang{name: "Buffer", importPath: "bytes"})

	text, err := ts.File(&env{})
	require.NoError(t, err)
	assert.Equal(t, "use bytes\nuse io\n\nReader Buffer\n", text)
}

func TestFileDedupesImports(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{name: "Reader", importPath: "io"})
	ts.Space()
	ts.AppendItem(lang{name: "Writer", importPath: "io"})

	text, err := ts.File(&env{})
	require.NoError(t, err)
	assert.Equal(t, "use io\n\nReader Writer\n", text)
}

func TestFileEmpty(t *testing.T) {
	t.Parallel()

	text, err := (&toks{}).File(&env{})
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestWriteFileBodyView(t *testing.T) {
	t.Parallel()

	// WriteFile is callable on the zero item value with any Body, not just
	// through the File entry point.
	ts := &toks{}
	ts.AppendItem(lang{name: "Reader", importPath: "io"})

	var buf strings.Builder
	out := gentok.NewFormatter(&buf, gentok.Options{})
	var zero lang
	require.NoError(t, zero.WriteFile(ts, out, &env{}, 0))
	assert.Equal(t, "use io\n\nReader", buf.String())
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{})
	_, err := ts.String(&env{})
	require.ErrorIs(t, err, errBadItem)
}

func TestRenderFiles(t *testing.T) {
	t.Parallel()

	var files []*toks
	for i := range 20 {
		ts := &toks{}
		ts.AppendItem(lang{name: fmt.Sprintf("f%02d", i), importPath: "io"})
		files = append(files, ts)
	}

	got, err := gentok.RenderFiles(context.Background(), files, func() *env { return &env{} }, 4)
	require.NoError(t, err)
	require.Len(t, got, len(files))
	for i, text := range got {
		assert.Equal(t, fmt.Sprintf("use io\n\nf%02d\n", i), text)
	}
}

func TestRenderFilesDefaultParallelism(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.Append("a")
	got, err := gentok.RenderFiles(context.Background(), []*toks{ts}, func() *env { return &env{} }, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a\n", got[0])
}

func TestRenderFilesEmpty(t *testing.T) {
	t.Parallel()

	got, err := gentok.RenderFiles(context.Background(), []*toks(nil), func() *env { return &env{} }, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRenderFilesError(t *testing.T) {
	t.Parallel()

	good := &toks{}
	good.Append("good")
	bad := &toks{}
	bad.AppendItem(lang{})

	_, err := gentok.RenderFiles(context.Background(), []*toks{good, bad, good}, func() *env { return &env{} }, 2)
	require.ErrorIs(t, err, errBadItem)
}

func TestRenderFilesCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ts := &toks{}
	ts.Append("a")
	_, err := gentok.RenderFiles(ctx, []*toks{ts}, func() *env { return &env{} }, 1)
	require.ErrorIs(t, err, context.Canceled)
}
