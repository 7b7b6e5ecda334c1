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

package java_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/gentok/internal/golden"
	"github.com/bufbuild/gentok/java"
)

// scenario mirrors the YAML layout of the files under testdata/golden: a
// single class to generate, described declaratively.
type scenario struct {
	Package string `yaml:"package"`
	Class   struct {
		Name   string `yaml:"name"`
		Fields []struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"fields"`
		Methods []struct {
			Name    string `yaml:"name"`
			Returns string `yaml:"returns"`
		} `yaml:"methods"`
	} `yaml:"class"`
}

// typeRef resolves the type names used in scenarios: primitive keywords,
// dotted names as imported classes, and bare names as java.lang classes.
func typeRef(name string) java.Java {
	switch name {
	case "", "void":
		return java.Void
	case "int":
		return java.Integer
	case "long":
		return java.Long
	case "boolean":
		return java.Boolean
	case "double":
		return java.Double
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		return java.Imported(name[:i], name[i+1:])
	}
	return java.Imported("java.lang", name)
}

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata/golden",
		Refresh:   "GENTOK_REFRESH",
		Extension: "yaml",
		Outputs:   []golden.Output{{Extension: "java"}},
		Render: func(t *testing.T, _, text string) []string {
			var s scenario
			require.NoError(t, yaml.Unmarshal([]byte(text), &s))

			c := java.NewClass(s.Class.Name)
			for _, f := range s.Class.Fields {
				c.Fields = append(c.Fields, java.NewField(typeRef(f.Type), f.Name))
			}
			for _, m := range s.Class.Methods {
				method := java.NewMethod(m.Name)
				method.Returns = typeRef(m.Returns)
				c.Methods = append(c.Methods, method)
			}

			rendered, err := c.Tokens().File(java.NewExtra(s.Package))
			require.NoError(t, err)
			return []string{rendered}
		},
	}
	corpus.Run(t)
}
