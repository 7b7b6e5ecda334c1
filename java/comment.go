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

package java

import (
	"github.com/bufbuild/gentok"
)

// BlockComment renders a Javadoc-style block comment, one element per line,
// starting with `/**` and ending in `*/`. An empty comment renders nothing.
type BlockComment []string

// Tokens returns the comment as a token stream.
func (c BlockComment) Tokens() *Tokens {
	t := &Tokens{}
	if len(c) == 0 {
		return t
	}

	t.Push("/**")
	for _, line := range c {
		t.PushInto(func(t *Tokens) {
			t.Append(" * ")
			t.Append(line)
		})
	}
	t.Push(" */")
	t.AppendElement(gentok.PushLine[Java, *Extra]())

	return t
}
