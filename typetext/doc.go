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

// Package typetext turns TypeScript type-expression text into review tokens.
//
// There are two entry points. [Tokens] is the excerpt token processor: it
// maps an excerpt's spans to a flat run of classified tokens, emitting each
// reference span as a single navigable type name and re-tokenizing the
// plain text in between. [Parse] additionally decomposes object-type
// literals into one child line per member, recursively, so that a UI can
// show them as an indented block.
//
// Both entry points share one lexer and one classification table, so the
// same text produces the same tokens regardless of how the API model split
// it into spans. References are resolved by their exact byte range within
// the excerpt's text (see [refmap.Build]), never by matching identifier
// text.
//
// Malformed input never produces an error. If the text cannot be lexed,
// or if its brackets do not balance, [Parse] falls back to a single text
// token holding the raw text.
package typetext
