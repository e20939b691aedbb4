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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/apireview/internal/refmap"
)

const (
	lexWord   lexKind = iota // An identifier or reserved word.
	lexString                // A quoted string or template literal.
	lexNumber                // A numeric literal.
	lexPunct                 // Punctuation or an operator.
	lexRef                   // A reference span of the excerpt.
)

// lexKind is the kind of a [lexeme].
type lexKind int8

// lexeme is a single non-whitespace unit of type text.
type lexeme struct {
	kind       lexKind
	text       string
	start, end int
}

// Multi-character punctuation, longest first. `>>` is deliberately absent:
// in type text it is always two closing angle brackets.
var operators = []string{"...", "=>", "?."}

// lex splits text into lexemes, skipping whitespace and comments.
//
// Every range in refs outside of a comment becomes a single lexRef lexeme,
// and no other lexeme crosses into a referenced range.
//
// Returns false if text contains an unterminated string or comment.
func lex(text string, refs *refmap.Map) ([]lexeme, bool) {
	var out []lexeme
	cursor := 0
	for cursor < len(text) {
		if e, ok := refs.At(cursor); ok {
			out = append(out, lexeme{kind: lexRef, text: e.Text(text), start: e.Start, end: e.End})
			cursor = e.End
			continue
		}

		limit := len(text)
		if next, ok := refs.Next(cursor); ok {
			limit = next.Start
		}
		rest := text[cursor:limit]
		r, n := utf8.DecodeRuneInString(rest)

		var kind lexKind
		switch {
		case unicode.IsSpace(r):
			cursor += n
			continue

		// Comments may span references, which are then skipped with them.
		case strings.HasPrefix(rest, "//"):
			if nl := strings.IndexByte(text[cursor:], '\n'); nl >= 0 {
				cursor += nl + 1
			} else {
				cursor = len(text)
			}
			continue

		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(text[cursor+2:], "*/")
			if end < 0 {
				return nil, false
			}
			cursor += end + 4
			continue

		case r == '"' || r == '\'' || r == '`':
			kind = lexString
			n = scanString(rest)
			if n < 0 {
				return nil, false
			}

		case isIdentStart(r):
			kind = lexWord
			n = scanWhile(rest, n, isIdentContinue)

		case isDigit(r), r == '.' && len(rest) > 1 && isDigit(rune(rest[1])):
			kind = lexNumber
			n = scanWhile(rest, n, func(r rune) bool {
				return r == '.' || r == '_' || isDigit(r) || unicode.IsLetter(r)
			})

		default:
			kind = lexPunct
			for _, op := range operators {
				if strings.HasPrefix(rest, op) {
					n = len(op)
					break
				}
			}
		}

		out = append(out, lexeme{kind: kind, text: rest[:n], start: cursor, end: cursor + n})
		cursor += n
	}
	return out, true
}

// scanString returns the length of the quoted string at the start of text,
// or -1 if it is not terminated.
func scanString(text string) int {
	quote := text[0]
	for i := 1; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		case '\n':
			if quote != '`' {
				return -1
			}
		}
	}
	return -1
}

// scanWhile returns the offset of the first rune at or after start that
// does not satisfy ok.
func scanWhile(text string, start int, ok func(rune) bool) int {
	n := start
	for n < len(text) {
		r, size := utf8.DecodeRuneInString(text[n:])
		if !ok(r) {
			break
		}
		n += size
	}
	return n
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '\u200c' || r == '\u200d'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isOpen returns whether this lexeme opens a bracket group.
func (l lexeme) isOpen() bool {
	return l.kind == lexPunct && len(l.text) == 1 && strings.Contains("({[<", l.text)
}

// isClose returns whether this lexeme closes a bracket group.
func (l lexeme) isClose() bool {
	return l.kind == lexPunct && len(l.text) == 1 && strings.Contains(")}]>", l.text)
}

// isWordLike returns whether two adjacent word-like lexemes need a space
// between them to remain separate.
func (l lexeme) isWordLike() bool {
	return l.kind != lexPunct
}

// is returns whether this lexeme is the given punctuation.
func (l lexeme) is(punct string) bool {
	return l.kind == lexPunct && l.text == punct
}

var closerOf = map[string]string{"(": ")", "{": "}", "[": "]", "<": ">"}

// matchBrackets returns, for every opening or closing bracket, the index of
// its partner; other entries are -1.
//
// Returns false if the brackets of any family do not balance.
func matchBrackets(lx []lexeme) ([]int, bool) {
	match := make([]int, len(lx))
	var stack []int
	for i, l := range lx {
		match[i] = -1
		switch {
		case l.isOpen():
			stack = append(stack, i)
		case l.isClose():
			if len(stack) == 0 {
				return nil, false
			}
			top := stack[len(stack)-1]
			if closerOf[lx[top].text] != l.text {
				return nil, false
			}
			stack = stack[:len(stack)-1]
			match[top], match[i] = i, top
		}
	}
	return match, len(stack) == 0
}
