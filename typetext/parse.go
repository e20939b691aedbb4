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

package typetext

import (
	"slices"
	"strings"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/internal/refmap"
	"github.com/bufbuild/apireview/review"
)

// Options configures [Parse].
type Options struct {
	// Set on every token produced.
	Deprecated bool

	// The maximum nesting of member-list blocks. Object-type literals nested
	// more deeply are rendered as flat runs of tokens. Zero or negative means
	// no limit.
	MaxDepth int
}

// Tokens maps the spans of an excerpt to a flat run of tokens.
//
// Every reference span becomes exactly one [review.TypeName] token that
// navigates to the span's canonical reference; plain text spans are split
// into keywords, punctuation and identifiers. Token order follows span
// order.
func Tokens(ex apimodel.Excerpt, deprecated bool) []review.Token {
	text, refs := refmap.Build(ex)
	lx, ok := lex(text, refs)
	if !ok {
		return spanTokens(ex, deprecated)
	}

	c := classifier{lx: lx, refs: refs, deprecated: deprecated}
	if match, ok := matchBrackets(lx); ok {
		c.roles = memberRoles(lx, match)
	}
	return c.classify()
}

// Parse parses an excerpt holding a type expression.
//
// If the expression contains an object-type literal outside of any other
// bracket, the returned line's Tokens end with the literal's opening brace,
// each member becomes one child line terminated by `;`, and Close begins
// with the closing brace, followed by whatever comes after it. Members are
// parsed the same way, so nested literals produce grandchildren. Otherwise,
// the returned line is a leaf holding the same tokens as [Tokens] would
// produce.
//
// If the text cannot be lexed, or its brackets do not balance, the result is
// a single [review.Text] token holding the text.
func Parse(ex apimodel.Excerpt, opts Options) review.Line {
	text, refs := refmap.Build(ex)
	lx, ok := lex(text, refs)
	if !ok {
		return fallback(text, opts)
	}
	match, ok := matchBrackets(lx)
	if !ok {
		return fallback(text, opts)
	}

	p := &parser{lx: lx, match: match, maxDepth: opts.MaxDepth}
	root := p.block(0, len(lx), 0)

	c := classifier{lx: lx, refs: refs, deprecated: opts.Deprecated, roles: memberRoles(lx, match)}
	tokens := c.classify()
	return root.line(tokens, opts.Deprecated)
}

// parser discovers the block structure of a bracket-balanced expression.
type parser struct {
	lx       []lexeme
	match    []int
	maxDepth int
}

// block is a parsed run of lexemes, [lo, hi).
type block struct {
	lo, hi int

	// Index of the `{` that opens the member list, or -1 if this block is
	// flat. The matching `}` is at close.
	open, close int
	members     []*block
}

// block parses lx[lo:hi] at the given member-list nesting depth.
func (p *parser) block(lo, hi, depth int) *block {
	b := &block{lo: lo, hi: hi, open: -1}
	if p.maxDepth > 0 && depth >= p.maxDepth {
		return b
	}

	open := -1
	for i := lo; i < hi; i++ {
		if !p.lx[i].isOpen() {
			continue
		}
		if p.lx[i].is("{") {
			open = i
			break
		}
		i = p.match[i] // Skip over the whole group.
	}
	if open < 0 {
		return b
	}

	end := p.match[open]
	for _, seg := range split(p.lx, p.match, open+1, end) {
		b.members = append(b.members, p.block(seg[0], seg[1], depth+1))
	}
	if len(b.members) > 0 {
		b.open, b.close = open, end
	}
	return b
}

// split splits lx[lo:hi] on the `;` and `,` that are not inside a nested
// bracket group. Empty segments are dropped.
func split(lx []lexeme, match []int, lo, hi int) [][2]int {
	var segs [][2]int
	start := lo
	for i := lo; i < hi; i++ {
		l := lx[i]
		switch {
		case l.isOpen():
			i = match[i]
		case l.is(";"), l.is(","):
			if i > start {
				segs = append(segs, [2]int{start, i})
			}
			start = i + 1
		}
	}
	if hi > start {
		segs = append(segs, [2]int{start, hi})
	}
	return segs
}

const (
	roleNone     role = iota
	roleMember        // The name of a member of an object-type literal.
	roleModifier      // A word before a member's name, like `get`.
)

// role is what a lexeme means within an object-type literal.
type role int8

// memberModifiers may precede a member's name.
var memberModifiers = map[string]bool{
	"readonly": true, "static": true, "get": true, "set": true,
	"public": true, "private": true, "protected": true, "abstract": true,
	"-": true, "+": true,
}

// memberRoles finds the member names and modifiers of every object-type
// literal in lx, however deeply it is nested.
func memberRoles(lx []lexeme, match []int) []role {
	roles := make([]role, len(lx))
	for i, l := range lx {
		if !l.is("{") {
			continue
		}
		for _, seg := range split(lx, match, i+1, match[i]) {
			markMember(lx, roles, seg[0], seg[1])
		}
	}
	return roles
}

// markMember finds the name of the member spanning lx[lo:hi], if it has
// one; index signatures and call signatures do not.
func markMember(lx []lexeme, roles []role, lo, hi int) {
	for i := lo; i < hi; i++ {
		l := lx[i]
		if !l.isWordLike() {
			if memberModifiers[l.text] {
				continue
			}
			return
		}

		next := i + 1
		if next >= hi {
			return
		}
		switch n := lx[next]; {
		case l.kind == lexWord && memberModifiers[l.text] && n.isWordLike():
			roles[i] = roleModifier // `readonly foo: T`.
			continue
		case l.text == "new" && (n.is("(") || n.is("<")):
			return // A construct signature.
		case n.is(":"), n.is("?"), n.is("("), n.is("<"):
			roles[i] = roleMember
		}
		return
	}
}

// line assembles the parsed block into a review line, slicing tokens.
func (b *block) line(tokens []review.Token, deprecated bool) review.Line {
	if b.open < 0 {
		return review.Line{Tokens: slices.Clone(tokens[b.lo:b.hi])}
	}

	line := review.Line{
		Tokens: slices.Clone(tokens[b.lo : b.open+1]),
		Close:  slices.Clone(tokens[b.close:b.hi]),
	}
	semi := review.NewToken(review.Punctuation, ";", review.Options{IsDeprecated: deprecated})
	for _, m := range b.members {
		child := m.line(tokens, deprecated)
		if child.IsLeaf() {
			child.Tokens = append(child.Tokens, semi)
		} else {
			child.Close = append(child.Close, semi)
		}
		line.Children = append(line.Children, child)
	}
	return line
}

// fallback renders unparseable text as a single token, with runs of
// whitespace collapsed.
func fallback(text string, opts Options) review.Line {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return review.Line{}
	}
	return review.Line{Tokens: []review.Token{
		review.NewToken(review.Text, text, review.Options{IsDeprecated: opts.Deprecated}),
	}}
}

// spanTokens maps each span of an excerpt to one token without looking at
// its text; used when the text cannot be lexed.
func spanTokens(ex apimodel.Excerpt, deprecated bool) []review.Token {
	var out []review.Token
	for _, span := range ex.Tokens {
		text := strings.TrimSpace(span.Text)
		if text == "" {
			continue
		}
		if !span.IsReference() {
			out = append(out, review.NewToken(review.Text, text, review.Options{IsDeprecated: deprecated}))
			continue
		}

		tok := review.NewToken(review.TypeName, text, review.Options{IsDeprecated: deprecated})
		tok.NavigateToID = span.CanonicalReference.String()
		out = append(out, tok)
	}
	return out
}
