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

// Package apimodel describes the public API surface of a TypeScript library
// as a graph of declaration items.
//
// The graph is produced by an API model provider outside of this module. It
// is constructed once per analysis run and is read-only from then on: nothing
// in this module mutates an [Item] after it has been handed over, which is
// what makes it safe to generate tokens for independent items concurrently.
//
// Each item carries its source text as an [Excerpt]: an ordered sequence of
// spans, each of which is either plain text or a reference to another
// declaration, identified by an opaque [CanonicalReference].
//
// [Item] is a closed union. The set of concrete types is fixed by this
// package, and each reports one [Kind].
package apimodel
