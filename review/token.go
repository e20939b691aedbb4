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

// Token is the smallest renderable unit of a declaration.
type Token struct {
	Kind  Kind   `json:"Kind"`
	Value string `json:"Value"`

	HasPrefixSpace bool `json:"HasPrefixSpace,omitempty"`
	HasSuffixSpace bool `json:"HasSuffixSpace,omitempty"`

	// The canonical reference of the declaration this token links to.
	NavigateToID string `json:"NavigateToId,omitempty"`
	// A display-name hint for the navigation target. Only set on the name
	// token of a top-level declaration.
	NavigationDisplayName string `json:"NavigationDisplayName,omitempty"`

	IsDeprecated bool `json:"IsDeprecated,omitempty"`

	// Style tags. Only set on the name token of a top-level declaration.
	RenderClasses []string `json:"RenderClasses,omitempty"`
}

// Options are the flags [NewToken] copies onto a new token.
type Options struct {
	HasPrefixSpace bool
	HasSuffixSpace bool
	IsDeprecated   bool
}

// NewToken returns a token with exactly the requested flags.
//
// There is no defaulting based on kind or value: spacing is always the
// caller's decision.
func NewToken(kind Kind, value string, opts Options) Token {
	return Token{
		Kind:           kind,
		Value:          value,
		HasPrefixSpace: opts.HasPrefixSpace,
		HasSuffixSpace: opts.HasSuffixSpace,
		IsDeprecated:   opts.IsDeprecated,
	}
}

// IsNavigable returns whether this token links to a declaration.
func (t Token) IsNavigable() bool {
	return t.NavigateToID != ""
}
