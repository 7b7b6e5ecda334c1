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

package swift_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/gentok/internal/golden"
	"github.com/bufbuild/gentok/swift"
)

// scenario mirrors the YAML layout of the files under testdata/golden: a
// single class or struct to generate, described declaratively.
type scenario struct {
	Kind       string   `yaml:"kind"`
	Name       string   `yaml:"name"`
	Implements []string `yaml:"implements"`
	Fields     []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"fields"`
	Methods []struct {
		Name    string `yaml:"name"`
		Returns string `yaml:"returns"`
		Throws  bool   `yaml:"throws"`
	} `yaml:"methods"`
}

// typeRef resolves the type names used in scenarios: dotted names as types
// imported from a module, bare names as local types.
func typeRef(name string) swift.Swift {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return swift.Imported(name[:i], name[i+1:])
	}
	return swift.Local(name)
}

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata/golden",
		Refresh:   "GENTOK_REFRESH",
		Extension: "yaml",
		Outputs:   []golden.Output{{Extension: "swift"}},
		Render: func(t *testing.T, _, text string) []string {
			var s scenario
			require.NoError(t, yaml.Unmarshal([]byte(text), &s))

			var implements []swift.Swift
			for _, name := range s.Implements {
				implements = append(implements, typeRef(name))
			}
			var fields []swift.Field
			for _, f := range s.Fields {
				fields = append(fields, swift.NewField(typeRef(f.Type), f.Name))
			}
			var methods []swift.Method
			for _, m := range s.Methods {
				method := swift.NewMethod(m.Name)
				method.Throws = m.Throws
				if m.Returns != "" {
					method.Returns = typeRef(m.Returns)
				}
				methods = append(methods, method)
			}

			var ts *swift.Tokens
			switch s.Kind {
			case "struct":
				decl := swift.NewStruct(s.Name)
				decl.Implements = implements
				decl.Fields = fields
				decl.Methods = methods
				ts = decl.Tokens()
			default:
				decl := swift.NewClass(s.Name)
				decl.Implements = implements
				decl.Fields = fields
				decl.Methods = methods
				ts = decl.Tokens()
			}

			rendered, err := ts.File(&swift.Extra{})
			require.NoError(t, err)
			return []string{rendered}
		},
	}
	corpus.Run(t)
}
