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
	"slices"
)

// Modifier is a Java declaration modifier. Sequences of modifiers always
// render sorted in the conventional order and deduplicated.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Abstract
	Static
	Final
	Native
)

// Name returns the modifier keyword.
func (m Modifier) Name() string {
	switch m {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	case Abstract:
		return "abstract"
	case Static:
		return "static"
	case Final:
		return "final"
	case Native:
		return "native"
	}
	return ""
}

// modifierTokens returns mods sorted and deduplicated, as sibling literal
// elements with no separators; callers join with spacing.
func modifierTokens(mods []Modifier) *Tokens {
	sorted := slices.Clone(mods)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	t := &Tokens{}
	for _, m := range sorted {
		t.Append(m.Name())
	}
	return t
}
