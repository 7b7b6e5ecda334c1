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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestWalkCustomFindsEveryItem(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{name: "top"})
	ts.Register(lang{name: "registered"})
	ts.PushInto(func(sub *toks) {
		sub.AppendItem(lang{name: "pushed"})
		sub.NestedInto(func(sub *toks) {
			sub.AppendItem(lang{name: "nested"})
		})
	})
	inline := &toks{}
	inline.AppendItem(lang{name: "inline"})
	ts.AppendTokens(inline)

	var got []string
	for item := range ts.WalkCustom() {
		got = append(got, item.name)
	}
	slices.Sort(got)

	// Order is unspecified; every reachable item must be yielded once.
	want := []string{"inline", "nested", "pushed", "registered", "top"}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestWalkCustomEarlyBreak(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{name: "a"})
	ts.AppendItem(lang{name: "b"})

	var got []string
	for item := range ts.WalkCustom() {
		got = append(got, item.name)
		break
	}
	assert.Len(t, got, 1)
}

func TestWalkCustomReusable(t *testing.T) {
	t.Parallel()

	ts := &toks{}
	ts.AppendItem(lang{name: "a"})
	seq := ts.WalkCustom()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 1, count())
	assert.Equal(t, 1, count())
}
