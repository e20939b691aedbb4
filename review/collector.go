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

// Collector accumulates the tokens of a single declaration in emission
// order.
//
// A Collector is single-use: once [Collector.Finish] is called, it must not
// be used again. It is not safe for concurrent use.
//
// Tokens pushed before a block is attached with [Collector.Append] form the
// head of the line; tokens pushed after it are rendered after the block.
type Collector struct {
	line Line
	done bool
}

// Push appends tokens to the line being built. Tokens already pushed are
// never modified.
func (c *Collector) Push(tokens ...Token) {
	c.check()
	if c.line.IsLeaf() {
		c.line.Tokens = append(c.line.Tokens, tokens...)
	} else {
		c.line.Close = append(c.line.Close, tokens...)
	}
}

// Append appends a parsed line fragment, such as the output of a structural
// type parser.
//
// If the fragment has children and no block has been attached yet, the
// fragment's children become this line's children. Otherwise the fragment
// is pushed as a flat run of tokens.
func (c *Collector) Append(fragment Line) {
	c.check()
	if fragment.IsLeaf() || !c.line.IsLeaf() {
		c.Push(fragment.Flatten()...)
		return
	}

	c.line.Tokens = append(c.line.Tokens, fragment.Tokens...)
	c.line.Children = fragment.Children
	c.line.Close = append([]Token(nil), fragment.Close...)
}

// Finish returns the collected line.
func (c *Collector) Finish() Line {
	c.check()
	c.done = true
	return c.line
}

func (c *Collector) check() {
	if c.done {
		panic("review: use of Collector after Finish")
	}
}
