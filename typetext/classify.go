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
	"github.com/bufbuild/apireview/internal/refmap"
	"github.com/bufbuild/apireview/review"
)

const (
	notKeyword wordClass = iota
	valueWord            // A keyword that names a type, like `string`.
	prefixWord           // A keyword that precedes its operand, like `keyof`.
	binaryWord           // A keyword between two operands, like `extends`.
)

// wordClass determines how a reserved word is spaced.
type wordClass int8

// reserved is the fixed classification table for reserved words.
var reserved = map[string]wordClass{
	"any":       valueWord,
	"bigint":    valueWord,
	"boolean":   valueWord,
	"false":     valueWord,
	"never":     valueWord,
	"null":      valueWord,
	"number":    valueWord,
	"object":    valueWord,
	"string":    valueWord,
	"symbol":    valueWord,
	"this":      valueWord,
	"true":      valueWord,
	"undefined": valueWord,
	"unknown":   valueWord,
	"void":      valueWord,

	"abstract":  prefixWord,
	"accessor":  prefixWord,
	"asserts":   prefixWord,
	"async":     prefixWord,
	"class":     prefixWord,
	"const":     prefixWord,
	"declare":   prefixWord,
	"default":   prefixWord,
	"enum":      prefixWord,
	"export":    prefixWord,
	"function":  prefixWord,
	"import":    prefixWord,
	"infer":     prefixWord,
	"interface": prefixWord,
	"keyof":     prefixWord,
	"let":       prefixWord,
	"module":    prefixWord,
	"namespace": prefixWord,
	"new":       prefixWord,
	"out":       prefixWord,
	"private":   prefixWord,
	"protected": prefixWord,
	"public":    prefixWord,
	"readonly":  prefixWord,
	"static":    prefixWord,
	"type":      prefixWord,
	"typeof":    prefixWord,
	"unique":    prefixWord,
	"var":       prefixWord,

	"as":         binaryWord,
	"extends":    binaryWord,
	"implements": binaryWord,
	"in":         binaryWord,
	"is":         binaryWord,
	"satisfies":  binaryWord,
}

// classifier assigns a kind and spacing to every lexeme of one expression.
type classifier struct {
	lx         []lexeme
	refs       *refmap.Map
	deprecated bool

	// Roles of lexemes within object-type literals. May be nil.
	roles []role
}

// classify returns one token per lexeme.
func (c *classifier) classify() []review.Token {
	tokens := make([]review.Token, len(c.lx))

	// Bracket depths at which a conditional `?` awaits its `:`.
	var ternary []int
	depth := 0
	for i, l := range c.lx {
		var kind review.Kind
		var prefix, suffix bool
		// In `A extends B ? C : D`, C is not a label.
		conditional := len(ternary) > 0 && ternary[len(ternary)-1] == depth
		switch l.kind {
		case lexRef:
			kind = review.TypeName
		case lexString, lexNumber:
			kind = review.Text
		case lexWord:
			if c.role(i) == roleModifier {
				kind, suffix = review.Keyword, true
				break
			}
			switch c.wordClass(i, conditional) {
			case notKeyword:
				kind = c.identKind(i, conditional)
			case valueWord:
				kind = review.Keyword
			case prefixWord:
				kind = review.Keyword
				suffix = true
			case binaryWord:
				kind = review.Keyword
				prefix, suffix = true, true
			}
		case lexPunct:
			kind = review.Punctuation
			switch l.text {
			case ",", ";":
				suffix = true
			case ":":
				suffix = true
				if n := len(ternary); n > 0 && ternary[n-1] == depth {
					prefix = true
					ternary = ternary[:n-1]
				}
			case "=", "|", "&", "=>":
				prefix, suffix = true, true
			case "?":
				if !c.isOptionalMarker(i) {
					prefix, suffix = true, true
					ternary = append(ternary, depth)
				}
			}

			switch {
			case l.isOpen():
				depth++
			case l.isClose():
				depth--
			}
		}

		tokens[i] = review.NewToken(kind, l.text, review.Options{
			HasPrefixSpace: prefix,
			HasSuffixSpace: suffix,
			IsDeprecated:   c.deprecated,
		})
		if l.kind == lexRef {
			if ref, ok := c.refs.Lookup(l.start, l.end); ok {
				tokens[i].NavigateToID = ref.String()
			}
		}
	}

	// Adjacent words must stay separate.
	for i := 1; i < len(tokens); i++ {
		if c.lx[i-1].isWordLike() && c.lx[i].isWordLike() &&
			!tokens[i-1].HasSuffixSpace && !tokens[i].HasPrefixSpace {
			tokens[i-1].HasSuffixSpace = true
		}
	}

	// No space on the inner side of a bracket.
	for i, l := range c.lx {
		switch {
		case l.isOpen():
			tokens[i].HasSuffixSpace = false
			if i+1 < len(tokens) {
				tokens[i+1].HasPrefixSpace = false
			}
		case l.isClose():
			tokens[i].HasPrefixSpace = false
			if i > 0 {
				tokens[i-1].HasSuffixSpace = false
			}
		}
	}

	return tokens
}

// wordClass classifies the word at i, taking into account that TypeScript's
// reserved words are contextual: `type` in `{ type: string }` is a name.
func (c *classifier) wordClass(i int, conditional bool) wordClass {
	class := reserved[c.lx[i].text]
	if class == notKeyword || c.isMemberName(i) {
		return notKeyword
	}

	if prev, ok := c.at(i - 1); ok && (prev.is(".") || prev.is("?.")) {
		return notKeyword
	}
	if !conditional && c.isLabel(i) {
		return notKeyword
	}

	if class == valueWord {
		return class
	}
	// Operators need an operand after them.
	next, ok := c.at(i + 1)
	if !ok || next.isClose() || next.is(",") || next.is(";") || next.is(".") ||
		next.is("=") || next.is("|") || next.is("&") {
		return notKeyword
	}
	return class
}

// identKind returns the kind of a non-reserved word.
func (c *classifier) identKind(i int, conditional bool) review.Kind {
	switch {
	case c.isMemberName(i):
		return review.MemberName
	case !conditional && c.isLabel(i):
		return review.Text
	default:
		return review.TypeName
	}
}

// isLabel returns whether the lexeme at i is followed by `:` or `?:`, as a
// parameter name or tuple label is.
func (c *classifier) isLabel(i int) bool {
	next, ok := c.at(i + 1)
	if !ok {
		return false
	}
	if next.is(":") {
		return true
	}
	after, ok := c.at(i + 2)
	return next.is("?") && ok && after.is(":")
}

// isOptionalMarker returns whether the `?` at i marks something optional,
// rather than being part of a conditional type.
func (c *classifier) isOptionalMarker(i int) bool {
	if c.isMemberName(i - 1) {
		return true
	}
	next, ok := c.at(i + 1)
	return !ok || next.is(":") || next.is(",") || next.is(")") ||
		next.is("]") || next.is(";") || next.is("=")
}

func (c *classifier) isMemberName(i int) bool {
	return c.role(i) == roleMember
}

func (c *classifier) role(i int) role {
	if i < 0 || i >= len(c.roles) {
		return roleNone
	}
	return c.roles[i]
}

func (c *classifier) at(i int) (lexeme, bool) {
	if i < 0 || i >= len(c.lx) {
		return lexeme{}, false
	}
	return c.lx[i], true
}
