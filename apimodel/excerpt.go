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

package apimodel

import (
	"fmt"
	"strings"
)

const (
	Content   ExcerptTokenKind = iota // Plain source text.
	Reference                         // A reference to another declaration.
)

// CanonicalReference is a stable, opaque identifier for one declared symbol.
//
// It is only ever used to hyperlink between declarations; two references
// being equal says nothing about the content of the declarations.
type CanonicalReference string

// IsZero returns whether this is the empty reference.
func (r CanonicalReference) IsZero() bool {
	return r == ""
}

// String implements [fmt.Stringer].
func (r CanonicalReference) String() string {
	return string(r)
}

// ExcerptTokenKind distinguishes plain text spans from reference spans.
type ExcerptTokenKind int8

// String implements [fmt.Stringer].
func (k ExcerptTokenKind) String() string {
	switch k {
	case Content:
		return "Content"
	case Reference:
		return "Reference"
	default:
		return fmt.Sprintf("apimodel.ExcerptTokenKind(%d)", int(k))
	}
}

// ExcerptToken is a single span of an [Excerpt].
type ExcerptToken struct {
	Kind ExcerptTokenKind
	Text string

	// Set only when Kind is [Reference].
	CanonicalReference CanonicalReference
}

// Text returns a plain text excerpt span.
func Text(text string) ExcerptToken {
	return ExcerptToken{Kind: Content, Text: text}
}

// Ref returns a reference excerpt span.
func Ref(text string, ref CanonicalReference) ExcerptToken {
	return ExcerptToken{Kind: Reference, Text: text, CanonicalReference: ref}
}

// IsReference returns whether this span links to another declaration.
//
// A reference span without a canonical reference is treated as text.
func (t ExcerptToken) IsReference() bool {
	return t.Kind == Reference && !t.CanonicalReference.IsZero()
}

// Excerpt is a fragment of declaration source, split into spans.
//
// The zero value is an empty excerpt.
type Excerpt struct {
	Tokens []ExcerptToken
}

// NewExcerpt builds an excerpt out of the given spans.
func NewExcerpt(tokens ...ExcerptToken) Excerpt {
	return Excerpt{Tokens: tokens}
}

// TextExcerpt builds an excerpt consisting of a single text span.
func TextExcerpt(text string) Excerpt {
	if text == "" {
		return Excerpt{}
	}
	return NewExcerpt(Text(text))
}

// Text returns the concatenated text of all spans.
func (e Excerpt) Text() string {
	var out strings.Builder
	for _, tok := range e.Tokens {
		out.WriteString(tok.Text)
	}
	return out.String()
}

// IsEmpty returns whether this excerpt has no text other than whitespace.
func (e Excerpt) IsEmpty() bool {
	for _, tok := range e.Tokens {
		if strings.TrimSpace(tok.Text) != "" {
			return false
		}
	}
	return true
}
