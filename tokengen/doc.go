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

// Package tokengen turns a single declaration item into a review line.
//
// [Generate] selects the generator for an item's kind. Each generator
// reproduces the concrete TypeScript syntax of its kind as tokens: modifiers
// in canonical order, then the kind keyword, the name, generic parameters,
// parameter lists and types. Type expressions are handed to the typetext
// package, so an object-type literal in a type alias, variable or property
// produces one child line per member.
//
// Generators are pure. They read only the item they are given and never
// share state, so items may be generated concurrently.
package tokengen
