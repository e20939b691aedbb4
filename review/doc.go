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

// Package review defines the display tokens an API review tool renders and
// diffs.
//
// A declaration is rendered as a [Line] of [Token]s. Whitespace is never a
// token of its own: it is encoded in the HasPrefixSpace and HasSuffixSpace
// flags of adjacent tokens, and [Render] inserts exactly one space at every
// boundary where either flag is set.
//
// Lines may own child lines, which a UI shows as a collapsible, indented
// block. The tokens in [Line.Close] are rendered after the children, at the
// indentation of the owning line, and begin with the delimiter that closes
// the block.
package review
