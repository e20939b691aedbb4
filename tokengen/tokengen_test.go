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

package tokengen_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/review"
	"github.com/bufbuild/apireview/tokengen"
)

// Items shared by several tests.
var (
	greet = &apimodel.Function{
		Declaration: apimodel.Declaration{
			Name:      "greet",
			Reference: "demo!greet:function(1)",
			Excerpt:   apimodel.TextExcerpt(`export declare function greet<T extends string = "hi">(name: T, loud?: boolean): void;`),
		},
		Signature: apimodel.Signature{
			TypeParameters: []apimodel.TypeParameter{{
				Name:       "T",
				Constraint: apimodel.TextExcerpt("string"),
				Default:    apimodel.TextExcerpt(`"hi"`),
			}},
			Parameters: []apimodel.Parameter{
				{Name: "name", Type: apimodel.TextExcerpt("T")},
				{Name: "loud", Type: apimodel.TextExcerpt("boolean"), Optional: true},
			},
			ReturnType: apimodel.TextExcerpt("void"),
		},
	}

	red = &apimodel.EnumMember{
		Declaration: apimodel.Declaration{Name: "Red", Reference: "demo!Color.Red:member"},
		Initializer: apimodel.TextExcerpt("1"),
	}

	pair = &apimodel.TypeAlias{
		Declaration:    apimodel.Declaration{Name: "Pair", Reference: "demo!Pair:type"},
		TypeParameters: []apimodel.TypeParameter{{Name: "A"}, {Name: "B"}},
		Type: apimodel.NewExcerpt(
			apimodel.Text("{ first: "),
			apimodel.Ref("A", "demo!Pair:type~A"),
			apimodel.Text("; second: B }"),
		),
	}

	base = &apimodel.Class{
		Declaration:    apimodel.Declaration{Name: "Base", Reference: "demo!Base:class"},
		Abstract:       true,
		TypeParameters: []apimodel.TypeParameter{{Name: "T"}},
		Extends:        apimodel.NewExcerpt(apimodel.Ref("Root", "demo!Root:class")),
		Implements: []apimodel.Excerpt{apimodel.NewExcerpt(
			apimodel.Ref("Comparable", "demo!Comparable:interface"),
			apimodel.Text("<T>"),
		)},
	}

	store = &apimodel.Interface{
		Declaration: apimodel.Declaration{
			Name:      "Store",
			Reference: "demo!Store:interface",
			Excerpt: apimodel.NewExcerpt(
				apimodel.Text("export default interface Store extends "),
				apimodel.Ref("Base", "demo!Base:interface"),
				apimodel.Text(" "),
			),
		},
		Extends: []apimodel.Excerpt{apimodel.NewExcerpt(apimodel.Ref("Base", "demo!Base:interface"))},
	}

	items = []apimodel.Item{greet, red, pair, base, store}
)

func TestScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     apimodel.Item
		tokens   []string
		children [][]string
		close    []string
	}{
		{
			name: "function",
			item: greet,
			tokens: []string{
				"export", "function", "greet", "<", "T", "extends", "string", "=", `"hi"`, ">",
				"(", "name", ":", "T", ",", "loud", "?", ":", "boolean", ")", ":", "void", ";",
			},
		},
		{
			name:   "enum-member",
			item:   red,
			tokens: []string{"Red", "=", "1"},
		},
		{
			name:     "type-alias",
			item:     pair,
			tokens:   []string{"export", "type", "Pair", "<", "A", ",", "B", ">", "=", "{"},
			children: [][]string{{"first", ":", "A", ";"}, {"second", ":", "B", ";"}},
			close:    []string{"}"},
		},
		{
			name: "class",
			item: base,
			tokens: []string{
				"export", "abstract", "class", "Base", "<", "T", ">",
				"extends", "Root", "implements", "Comparable", "<", "T", ">",
			},
		},
		{
			name:   "default-export",
			item:   store,
			tokens: []string{"export", "default", "interface", "Store", "extends", "Base"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, err := tokengen.Generate(tt.item, tokengen.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.tokens, values(line.Tokens))
			assert.Equal(t, tt.close, values(line.Close))

			var children [][]string
			for _, child := range line.Children {
				assert.True(t, child.IsLeaf())
				children = append(children, values(child.Tokens))
			}
			assert.Equal(t, tt.children, children)
		})
	}
}

func TestRendered(t *testing.T) {
	t.Parallel()

	got := map[string]string{}
	for _, item := range items {
		line, err := tokengen.Generate(item, tokengen.Options{})
		require.NoError(t, err)
		got[item.DisplayName()] = line.String()
	}

	want := map[string]string{
		"greet": `export function greet<T extends string = "hi">(name: T, loud?: boolean): void;` + "\n",
		"Red":   "Red = 1\n",
		"Pair":  "export type Pair<A, B> = {\n  first: A;\n  second: B;\n}\n",
		"Base":  "export abstract class Base<T> extends Root implements Comparable<T>\n",
		"Store": "export default interface Store extends Base\n",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered lines mismatch (-want +got):\n%s", diff)
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	line, err := tokengen.Generate(pair, tokengen.Options{})
	require.NoError(t, err)

	name := line.Tokens[2]
	assert.Equal(t, review.TypeName, name.Kind)
	assert.Equal(t, "demo!Pair:type", name.NavigateToID)
	assert.Equal(t, "Pair", name.NavigationDisplayName)
	assert.Equal(t, []string{"type"}, name.RenderClasses)

	first := line.Children[0].Tokens
	assert.Equal(t, review.MemberName, first[0].Kind)
	assert.Equal(t, review.TypeName, first[2].Kind)
	assert.Equal(t, "demo!Pair:type~A", first[2].NavigateToID)

	line, err = tokengen.Generate(greet, tokengen.Options{})
	require.NoError(t, err)
	assert.Equal(t, review.MemberName, line.Tokens[2].Kind)
	assert.Empty(t, line.Tokens[2].RenderClasses, "members carry no style tag")
	assert.Equal(t, review.Text, line.Tokens[11].Kind)    // name
	assert.Equal(t, review.Keyword, line.Tokens[18].Kind) // boolean
}

func TestReferencePreservation(t *testing.T) {
	t.Parallel()

	for _, item := range items {
		line, err := tokengen.Generate(item, tokengen.Options{})
		require.NoError(t, err)

		got := map[string]int{}
		for tok := range line.All() {
			if tok.IsNavigable() && tok.NavigateToID != item.CanonicalReference().String() {
				got[tok.Value+" "+tok.NavigateToID]++
			}
		}

		want := map[string]int{}
		for _, ex := range excerptsOf(item) {
			for _, span := range ex.Tokens {
				if span.IsReference() {
					want[span.Text+" "+span.CanonicalReference.String()]++
				}
			}
		}
		assert.Equal(t, want, got, item.DisplayName())
	}
}

func TestDeprecated(t *testing.T) {
	t.Parallel()

	for _, item := range items {
		line, err := tokengen.Generate(item, tokengen.Options{Deprecated: true})
		require.NoError(t, err)
		for tok := range line.All() {
			assert.True(t, tok.IsDeprecated, "%s: %q", item.DisplayName(), tok.Value)
		}

		line, err = tokengen.Generate(item, tokengen.Options{})
		require.NoError(t, err)
		for tok := range line.All() {
			assert.False(t, tok.IsDeprecated, "%s: %q", item.DisplayName(), tok.Value)
		}
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	for _, item := range items {
		first, err := tokengen.Generate(item, tokengen.Options{})
		require.NoError(t, err)
		second, err := tokengen.Generate(item, tokengen.Options{})
		require.NoError(t, err)
		assert.Equal(t, first, second, item.DisplayName())
	}
}

func TestUnsupportedKind(t *testing.T) {
	t.Parallel()

	for _, item := range []apimodel.Item{
		&apimodel.Model{},
		&apimodel.Package{Declaration: apimodel.Declaration{Name: "@demo/core"}},
		&apimodel.EntryPoint{},
	} {
		line, err := tokengen.Generate(item, tokengen.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, tokengen.ErrUnsupportedKind), "%v", err)
		assert.Contains(t, err.Error(), item.Kind().String())
		assert.Empty(t, line.Flatten())
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	for kind := range apimodel.Kinds() {
		assert.Equal(t, !kind.IsContainer(), tokengen.Supports(kind), "%v", kind)
	}
	assert.False(t, tokengen.Supports(apimodel.KindNone))
}

func values(tokens []review.Token) []string {
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

// excerptsOf returns the excerpts a generator is expected to emit.
func excerptsOf(item apimodel.Item) []apimodel.Excerpt {
	switch item := item.(type) {
	case *apimodel.Function:
		return signatureExcerpts(&item.Signature)
	case *apimodel.EnumMember:
		return []apimodel.Excerpt{item.Initializer}
	case *apimodel.TypeAlias:
		return append(typeParamExcerpts(item.TypeParameters), item.Type)
	case *apimodel.Class:
		return append(append(typeParamExcerpts(item.TypeParameters), item.Extends), item.Implements...)
	case *apimodel.Interface:
		return append(typeParamExcerpts(item.TypeParameters), item.Extends...)
	default:
		return nil
	}
}

func signatureExcerpts(sig *apimodel.Signature) []apimodel.Excerpt {
	out := typeParamExcerpts(sig.TypeParameters)
	for _, p := range sig.Parameters {
		out = append(out, p.Type)
	}
	return append(out, sig.ReturnType)
}

func typeParamExcerpts(params []apimodel.TypeParameter) []apimodel.Excerpt {
	var out []apimodel.Excerpt
	for _, tp := range params {
		out = append(out, tp.Constraint, tp.Default)
	}
	return out
}
