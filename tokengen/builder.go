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

package tokengen

import (
	"strings"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/review"
	"github.com/bufbuild/apireview/typetext"
)

const (
	tight  spacing = iota // No space on either side.
	after                 // A space after.
	around                // A space on both sides.
)

// spacing is the whitespace placed around a token emitted by a generator.
type spacing int8

// builder is the collector a generator writes into.
type builder struct {
	review.Collector
	opts Options
}

func (b *builder) push(kind review.Kind, value string, sp spacing) {
	b.Push(review.NewToken(kind, value, review.Options{
		HasPrefixSpace: sp == around,
		HasSuffixSpace: sp != tight,
		IsDeprecated:   b.opts.Deprecated,
	}))
}

// keywords pushes modifier or kind keywords, each followed by a space.
func (b *builder) keywords(words ...string) {
	for _, w := range words {
		b.push(review.Keyword, w, after)
	}
}

func (b *builder) punct(value string, sp spacing) {
	b.push(review.Punctuation, value, sp)
}

func (b *builder) member(name string) {
	b.push(review.MemberName, name, tight)
}

// export pushes `export`, and `default` if item is a default export.
func (b *builder) export(item apimodel.Item) {
	b.keywords("export")
	if isDefaultExport(item) {
		b.keywords("default")
	}
}

// declName pushes the navigable name of a top-level declaration.
func (b *builder) declName(item apimodel.Item, class string) {
	tok := review.NewToken(review.TypeName, item.DisplayName(), review.Options{IsDeprecated: b.opts.Deprecated})
	tok.NavigateToID = item.CanonicalReference().String()
	tok.NavigationDisplayName = item.DisplayName()
	tok.RenderClasses = []string{class}
	b.Push(tok)
}

// excerpt pushes the tokens of an excerpt as a flat run.
func (b *builder) excerpt(ex apimodel.Excerpt) {
	b.Push(typetext.Tokens(ex, b.opts.Deprecated)...)
}

// typeExpr pushes a type expression, breaking an object-type literal into
// child lines.
func (b *builder) typeExpr(ex apimodel.Excerpt) {
	b.Append(typetext.Parse(ex, typetext.Options{
		Deprecated: b.opts.Deprecated,
		MaxDepth:   b.opts.MaxDepth,
	}))
}

// list pushes the excerpts as a comma separated list.
func (b *builder) list(types []apimodel.Excerpt) {
	for i, ex := range types {
		if i > 0 {
			b.punct(",", after)
		}
		b.excerpt(ex)
	}
}

func (b *builder) typeParameters(params []apimodel.TypeParameter) {
	if len(params) == 0 {
		return
	}

	b.punct("<", tight)
	for i, tp := range params {
		if i > 0 {
			b.punct(",", after)
		}
		b.push(review.TypeName, tp.Name, tight)
		if !tp.Constraint.IsEmpty() {
			b.push(review.Keyword, "extends", around)
			b.excerpt(tp.Constraint)
		}
		if !tp.Default.IsEmpty() {
			b.punct("=", around)
			b.excerpt(tp.Default)
		}
	}
	b.punct(">", tight)
}

// parameters pushes a parameter list between the given brackets.
func (b *builder) parameters(open, end string, params []apimodel.Parameter) {
	b.punct(open, tight)
	for i, p := range params {
		if i > 0 {
			b.punct(",", after)
		}
		b.push(review.Text, p.Name, tight)
		if p.Optional {
			b.punct("?", tight)
		}
		if !p.Type.IsEmpty() {
			b.punct(":", after)
			b.excerpt(p.Type)
		}
	}
	b.punct(end, tight)
}

// signature pushes `<T>(params): ret;`.
func (b *builder) signature(sig *apimodel.Signature) {
	b.typeParameters(sig.TypeParameters)
	b.parameters("(", ")", sig.Parameters)
	b.annotation(sig.ReturnType)
	b.punct(";", tight)
}

// annotation pushes `: T`, unless the type is empty.
func (b *builder) annotation(ex apimodel.Excerpt) {
	if ex.IsEmpty() {
		return
	}
	b.punct(":", after)
	b.excerpt(ex)
}

func isDefaultExport(item apimodel.Item) bool {
	for _, tok := range item.ExcerptTokens() {
		if strings.Contains(tok.Text, "export default") {
			return true
		}
	}
	return false
}
