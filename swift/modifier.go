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

package swift

import (
	"slices"
)

// Modifier is a Swift declaration modifier. Sequences of modifiers always
// render sorted in the conventional order and deduplicated.
type Modifier int

const (
	Open Modifier = iota
	Public
	Internal
	FilePrivate
	Private
	Static
	Final
	ClassModifier
	Mutating
	Throws
	Convenience
	Override
	Required
)

// Name returns the modifier keyword.
func (m Modifier) Name() string {
	switch m {
	case Open:
		return "open"
	case Public:
		return "public"
	case Internal:
		return "internal"
	case FilePrivate:
		return "fileprivate"
	case Private:
		return "private"
	case Static:
		return "static"
	case Final:
		return "final"
	case ClassModifier:
		return "class"
	case Mutating:
		return "mutating"
	case Throws:
		return "throws"
	case Convenience:
		return "convenience"
	case Override:
		return "override"
	case Required:
		return "required"
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
