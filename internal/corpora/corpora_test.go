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

package corpora_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/apireview/internal/corpora"
)

func TestRun(t *testing.T) {
	t.Parallel()

	var seen []string
	corpora.Corpus{
		Root:      "testdata",
		Extension: "in",
		Outputs: []corpora.Output{
			{Extension: "upper"},
			// No .lower files exist, so the output must be empty.
			{Extension: "lower", Compare: func(got, want string) string {
				if want != "" {
					return "unexpected .lower file"
				}
				return ""
			}},
		},
	}.Run(t, func(t *testing.T, path, text string) []string {
		seen = append(seen, path)
		return []string{strings.ToUpper(text), ""}
	})
	assert.Equal(t, []string{"testdata/greeting.in", "testdata/words.in"}, seen)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, corpora.Diff("a\nb\n", "a\nb\n"))

	diff := corpora.Diff("a\nc\n", "a\nb\n")
	assert.Contains(t, diff, "--- want")
	assert.Contains(t, diff, "+++ got")
	assert.Contains(t, diff, "-b\n")
	assert.Contains(t, diff, "+c\n")
}
