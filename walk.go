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

// WalkCustom returns an iterator over every custom item reachable in t,
// including registered items and items inside Append/Push/Nested sub-trees
// at any depth. This is how languages discover which imports a body needs
// before rendering it.
//
// Traversal is queue-based, so items are yielded roughly breadth-first; only
// "every reachable item is eventually yielded" is guaranteed, not the order.
// The sequence is finite and can be ranged over more than once.
func (t *Tokens[C, E]) WalkCustom() iter.Seq[C] {
	return func(yield func(C) bool) {
		queue := slices.Clone(t.elements)
		for len(queue) > 0 {
			el := queue[0]
			queue = queue[1:]
			switch el.kind {
			case kindAppend, kindPush, kindNested:
				queue = append(queue, el.tokens.elements...)
			case kindCustom, kindRegistered:
				if !yield(el.item) {
					return
				}
			}
		}
	}
}
