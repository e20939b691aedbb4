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

import "fmt"

const (
	Text        Kind = iota // Plain text, such as a parameter name or a literal.
	Punctuation             // Structural punctuation and operators.
	Keyword                 // A reserved word.
	TypeName                // The name of a type.
	MemberName              // The name of a member: a method, property or enum member.
)

// Kind is the styling category of a [Token].
//
// The numeric values are part of the review tool's wire format and must not
// be reordered.
type Kind int

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Punctuation:
		return "Punctuation"
	case Keyword:
		return "Keyword"
	case TypeName:
		return "TypeName"
	case MemberName:
		return "MemberName"
	default:
		return fmt.Sprintf("review.Kind(%d)", int(k))
	}
}
