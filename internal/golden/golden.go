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

// package golden provides a mechanism for golden-file render tests, i.e.
// table-driven tests where the table lives in the file system: each scenario
// file is rendered and the result is checked against sibling golden files.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a directory of render scenarios and their golden
// outputs.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file
	// that calls [Corpus.Run].
	Root string

	// An environment variable naming a glob of scenarios whose golden files
	// should be regenerated instead of compared.
	Refresh string

	// The file extension (without a dot) of files that define a scenario,
	// e.g. "yaml".
	Extension string
	// The outputs produced per scenario, found using Output.Extension. A
	// missing golden file is treated as expecting the empty string.
	Outputs []Output

	// Render runs one scenario and returns a slice of strings corresponding
	// to the elements of Outputs.
	Render func(t *testing.T, path, text string) []string
}

func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("golden: searching for scenarios in %q", root)

	// Enumerate the scenarios by walking the filesystem.
	var scenarios []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.TrimPrefix(path.Ext(p), ".") == c.Extension {
			scenarios = append(scenarios, p)
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata FS:", err)
	}

	// Check if a refresh has been requested.
	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}

	if refresh != "" {
		t.Logf("golden: refreshing golden files because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, scenario := range scenarios {
		name, _ := filepath.Rel(testDir, scenario)
		t.Run(name, func(t *testing.T) {
			bytes, err := os.ReadFile(scenario)
			if err != nil {
				t.Fatalf("golden: error while loading scenario %q: %v", scenario, err)
			}

			results := c.Render(t, name, string(bytes))

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(scenario, ".", output.Extension)

				if !refresh {
					bytes, err := os.ReadFile(path)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("golden: error while loading golden file %q: %v", path, err)
						t.Fail()
						continue
					}

					cmp := output.Compare
					if cmp == nil {
						cmp = defaultCompare
					}
					if err := cmp(results[i], string(bytes)); err != "" {
						t.Logf("output mismatch for %q:\n%s", path, err)
						t.Fail()
						continue
					}
				} else {
					if results[i] == "" {
						err := os.Remove(path)
						if err != nil && !errors.Is(err, os.ErrNotExist) {
							t.Logf("golden: error while deleting golden file %q: %v", path, err)
							t.Fail()
						}
					} else {
						err := os.WriteFile(path, []byte(results[i]), 0770)
						if err != nil {
							t.Logf("golden: error while writing golden file %q: %v", path, err)
							t.Fail()
						}
					}
				}
			}
		})
	}
}

// Output represents one golden output of a scenario.
type Output struct {
	// The extension of the output. This is a suffix to the name of the
	// scenario's main file; so if Corpus.Extension is "yaml", and this is
	// "java", for a scenario "foo.yaml" the runner looks for "foo.yaml.java".
	Extension string

	// The comparison function for this output. May be nil, in which case the
	// values are compared byte-for-byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns empty string if the strings match, otherwise returns an error
// message.
type Compare func(got, want string) string

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read. We're looking for lines that
	// start with a - or a +.
	lines := strings.Split(diff, "\n")
	for i := range lines {
		s := lines[i]
		if strings.HasPrefix(s, "+") {
			lines[i] = "\033[1;92m" + s + "\033[0m"
		} else if strings.HasPrefix(s, "-") {
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}

	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("golden: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
