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

// Package apireview generates API review token streams for the declarations
// of a TypeScript library.
//
// The input is an API model: a read-only graph of [apimodel.Item] values
// produced by an external extractor. A [Generator] turns each declaration
// into a [review.Line] of display tokens, carrying spacing, styling,
// cross-reference and deprecation metadata for a rendering and diffing
// layer to consume.
//
// [Generator.Generate] processes independent items concurrently and reports
// items that cannot be generated without failing the others.
// [Generator.Tree] additionally nests the members of classes, interfaces,
// namespaces and enums inside their parent's line.
//
// The per-kind generators live in the tokengen package, and the type
// expression parser in the typetext package.
package apireview
