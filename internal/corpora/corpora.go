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

// Package corpora runs table-driven tests whose table is a directory of
// fixture files.
//
// Each fixture produces a fixed list of outputs, and every output is
// compared against a sibling file named after the fixture plus the output's
// extension. Setting the corpus's refresh variable to a glob rewrites the
// expected files of every matching fixture instead.
package corpora

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of fixtures.
type Corpus struct {
	// Directory holding the fixtures, relative to the test file that calls
	// [Corpus.Run].
	Root string
	// Environment variable holding a glob of fixtures to refresh.
	Refresh string
	// Extension of fixture files, without the leading dot.
	Extension string
	// Expected outputs of each fixture. A missing expectation file means the
	// output is expected to be empty.
	Outputs []Output
}

// Output is one expected output of a fixture.
type Output struct {
	// Appended to the fixture's file name, after a dot.
	Extension string
	// If nil, [Diff] is used.
	Compare Compare
}

// Compare compares an output. Returns the empty string if got matches want,
// otherwise a description of the mismatch.
type Compare func(got, want string) string

// Test runs one fixture and returns its outputs, in the order of
// [Corpus.Outputs].
type Test func(t *testing.T, path, text string) []string

// Run runs test on every fixture of the corpus as a subtest.
func (c Corpus) Run(t *testing.T, test Test) {
	t.Helper()

	dir := callerDir()
	root := filepath.Join(dir, c.Root)
	var fixtures []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			fixtures = append(fixtures, path)
		}
		return err
	})
	if err != nil {
		t.Fatalf("corpora: cannot list %q: %v", root, err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("corpora: no .%s fixtures in %q", c.Extension, root)
	}
	slices.Sort(fixtures)

	refresh := ""
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
	}
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s=%q is not a valid glob", c.Refresh, refresh)
		}
		// Refreshing never counts as passing.
		t.Logf("corpora: refreshing fixtures matching %q", refresh)
		t.Fail()
	}

	for _, path := range fixtures {
		name, _ := filepath.Rel(dir, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: %v", err)
			}
			got := test(t, name, string(input))
			if len(got) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(got), len(c.Outputs))
			}

			rewrite, _ := doublestar.Match(refresh, name)
			for i, out := range c.Outputs {
				c.check(t, path+"."+out.Extension, got[i], out, rewrite)
			}
		})
	}
}

func (c Corpus) check(t *testing.T, path, got string, out Output, rewrite bool) {
	t.Helper()

	if rewrite {
		if got == "" {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				t.Errorf("corpora: %v", err)
			}
			return
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Errorf("corpora: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Errorf("corpora: %v", err)
		return
	}
	compare := out.Compare
	if compare == nil {
		compare = Diff
	}
	if msg := compare(got, string(want)); msg != "" {
		t.Errorf("mismatch for %s:\n%s", filepath.Base(path), msg)
	}
}

// Diff compares got and want byte for byte, describing a mismatch as a
// unified diff.
func Diff(got, want string) string {
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
	return diff
}

// callerDir returns the directory of the file that called [Corpus.Run].
func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: cannot determine the calling test's directory")
	}
	return filepath.Dir(file)
}
