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

package review

import (
	"iter"
	"strings"
)

// Line is one renderable row, optionally owning an indented block of child
// rows.
type Line struct {
	Tokens   []Token `json:"Tokens"`
	Children []Line  `json:"Children,omitempty"`

	// Rendered after Children at this line's indentation. Empty when
	// Children is empty.
	Close []Token `json:"Close,omitempty"`
}

// IsLeaf returns whether this line has no children.
func (l Line) IsLeaf() bool {
	return len(l.Children) == 0
}

// All returns an iterator over every token of this line and its children,
// in render order.
func (l Line) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l.all(yield)
	}
}

func (l Line) all(yield func(Token) bool) bool {
	for _, tok := range l.Tokens {
		if !yield(tok) {
			return false
		}
	}
	for _, child := range l.Children {
		if !child.all(yield) {
			return false
		}
	}
	for _, tok := range l.Close {
		if !yield(tok) {
			return false
		}
	}
	return true
}

// Flatten returns the tokens of this line and its children as a single run,
// in render order.
func (l Line) Flatten() []Token {
	var out []Token
	for tok := range l.All() {
		out = append(out, tok)
	}
	return out
}

// Len returns the number of tokens of this line and its children.
func (l Line) Len() int {
	n := len(l.Tokens) + len(l.Close)
	for _, child := range l.Children {
		n += child.Len()
	}
	return n
}

// Join renders a run of tokens on a single line.
//
// Exactly one space is inserted at every boundary where the token before it
// has a suffix space or the token after it has a prefix space. Spacing flags
// on the outer edges of the run are ignored.
func Join(tokens []Token) string {
	var out strings.Builder
	writeTokens(&out, tokens)
	return out.String()
}

// String implements [fmt.Stringer], rendering this line as with [Render]
// with a two-space indent.
func (l Line) String() string {
	return Render([]Line{l}, "  ")
}

// Render renders lines as text, one row per line. Each level of children is
// indented by an extra copy of indent.
func Render(lines []Line, indent string) string {
	var out strings.Builder
	for _, line := range lines {
		render(&out, line, indent, 0)
	}
	return out.String()
}

func render(out *strings.Builder, line Line, indent string, depth int) {
	writeIndent(out, indent, depth)
	if line.IsLeaf() {
		writeTokens(out, append(line.Tokens[:len(line.Tokens):len(line.Tokens)], line.Close...))
		out.WriteByte('\n')
		return
	}

	writeTokens(out, line.Tokens)
	out.WriteByte('\n')
	for _, child := range line.Children {
		render(out, child, indent, depth+1)
	}
	if len(line.Close) > 0 {
		writeIndent(out, indent, depth)
		writeTokens(out, line.Close)
		out.WriteByte('\n')
	}
}

func writeIndent(out *strings.Builder, indent string, depth int) {
	for range depth {
		out.WriteString(indent)
	}
}

func writeTokens(out *strings.Builder, tokens []Token) {
	for i, tok := range tokens {
		if i > 0 && (tokens[i-1].HasSuffixSpace || tok.HasPrefixSpace) {
			out.WriteByte(' ')
		}
		out.WriteString(tok.Value)
	}
}
