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

// Package refmap provides an index from byte ranges of an excerpt's text to
// the declarations those ranges reference.
//
// Lookups are by exact range rather than by text, so that two occurrences
// of the same identifier referring to different symbols resolve
// independently.
package refmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/tidwall/btree"

	"github.com/bufbuild/apireview/apimodel"
)

// Entry is a single referencing range, [Start, End).
type Entry struct {
	Start, End int
	Ref        apimodel.CanonicalReference
}

// Text returns the text of this entry within the text it was built from.
func (e Entry) Text(text string) string {
	return text[e.Start:e.End]
}

// Map is a set of non-overlapping referencing ranges.
//
// The zero value is empty and ready to use. A Map is safe for concurrent
// reads once no more calls to [Map.Insert] are made.
type Map struct {
	// Keys are the starts of ranges.
	tree btree.Map[int, Entry]
}

// Build concatenates the spans of an excerpt and records the range of every
// reference span within the result.
//
// Whitespace around a reference span's text is not part of its range.
func Build(ex apimodel.Excerpt) (string, *Map) {
	m := new(Map)
	var text strings.Builder
	for _, tok := range ex.Tokens {
		start := text.Len()
		text.WriteString(tok.Text)
		if !tok.IsReference() {
			continue
		}

		trimmed := strings.TrimSpace(tok.Text)
		if trimmed == "" {
			continue
		}
		start += strings.Index(tok.Text, trimmed)
		m.Insert(start, start+len(trimmed), tok.CanonicalReference)
	}
	return text.String(), m
}

// Len returns the number of ranges in this map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// Insert adds a new range. Returns false, without modifying the map, if the
// range overlaps one already present.
func (m *Map) Insert(start, end int, ref apimodel.CanonicalReference) bool {
	if start >= end {
		panic(fmt.Sprintf("refmap: empty range [%d, %d)", start, end))
	}

	if next, ok := m.Next(start); ok && next.Start < end {
		return false
	}
	if prev, ok := m.before(start); ok && prev.End > start {
		return false
	}

	m.tree.Set(start, Entry{Start: start, End: end, Ref: ref})
	return true
}

// At returns the range that starts exactly at offset, if there is one.
func (m *Map) At(offset int) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	return m.tree.Get(offset)
}

// Lookup returns the reference for exactly the range [start, end).
func (m *Map) Lookup(start, end int) (apimodel.CanonicalReference, bool) {
	e, ok := m.At(start)
	if !ok || e.End != end {
		return "", false
	}
	return e.Ref, true
}

// Next returns the first range that starts at or after offset.
func (m *Map) Next(offset int) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	iter := m.tree.Iter()
	if !iter.Seek(offset) {
		return Entry{}, false
	}
	return iter.Value(), true
}

// before returns the last range that starts before offset.
func (m *Map) before(offset int) (Entry, bool) {
	iter := m.tree.Iter()
	var ok bool
	if iter.Seek(offset) {
		ok = iter.Prev()
	} else {
		ok = iter.Last()
	}
	if !ok {
		return Entry{}, false
	}
	return iter.Value(), true
}

// All returns an iterator over the ranges in this map, in ascending order.
func (m *Map) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if m == nil {
			return
		}
		m.tree.Scan(func(_ int, e Entry) bool {
			return yield(e)
		})
	}
}

// Format implements [fmt.Formatter].
func (m *Map) Format(s fmt.State, _ rune) {
	fmt.Fprint(s, "{")
	first := true
	for e := range m.All() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false
		fmt.Fprintf(s, "[%d, %d): %s", e.Start, e.End, e.Ref)
	}
	fmt.Fprint(s, "}")
}
