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

package tokengen

import (
	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/review"
)

// export abstract class Name<T> extends Base implements A, B
func generateClass(b *builder, item apimodel.Item) {
	class := as[*apimodel.Class](item, "Class")

	b.export(class)
	if class.Abstract {
		b.keywords("abstract")
	}
	b.keywords("class")
	b.declName(class, "class")
	b.typeParameters(class.TypeParameters)

	if !class.Extends.IsEmpty() {
		b.push(review.Keyword, "extends", around)
		b.excerpt(class.Extends)
	}
	if len(class.Implements) > 0 {
		b.push(review.Keyword, "implements", around)
		b.list(class.Implements)
	}
}

// export interface Name<T> extends A, B
func generateInterface(b *builder, item apimodel.Item) {
	iface := as[*apimodel.Interface](item, "Interface")

	b.export(iface)
	b.keywords("interface")
	b.declName(iface, "interface")
	b.typeParameters(iface.TypeParameters)

	if len(iface.Extends) > 0 {
		b.push(review.Keyword, "extends", around)
		b.list(iface.Extends)
	}
}

// export enum Name
func generateEnum(b *builder, item apimodel.Item) {
	enum := as[*apimodel.Enum](item, "Enum")

	b.export(enum)
	b.keywords("enum")
	b.declName(enum, "enum")
}

// declare namespace Name
func generateNamespace(b *builder, item apimodel.Item) {
	ns := as[*apimodel.Namespace](item, "Namespace")

	b.keywords("declare", "namespace")
	b.declName(ns, "namespace")
}

// export type Name<T> = ...
//
// If the alias carries no separate type excerpt, the declaration excerpt is
// emitted as is.
func generateTypeAlias(b *builder, item apimodel.Item) {
	alias := as[*apimodel.TypeAlias](item, "TypeAlias")
	if alias.Type.IsEmpty() {
		b.excerpt(alias.Excerpt)
		return
	}

	b.export(alias)
	b.keywords("type")
	b.declName(alias, "type")
	b.typeParameters(alias.TypeParameters)
	b.punct("=", around)
	b.typeExpr(alias.Type)
}

// export const name: T
//
// If the variable carries no separate type excerpt, the declaration excerpt
// follows `export const`.
func generateVariable(b *builder, item apimodel.Item) {
	v := as[*apimodel.Variable](item, "Variable")

	b.keywords("export", "const")
	if v.Type.IsEmpty() {
		b.excerpt(v.Excerpt)
		return
	}
	b.member(v.Name)
	b.punct(":", after)
	b.typeExpr(v.Type)
}

// export function name<T>(params): ret;
func generateFunction(b *builder, item apimodel.Item) {
	fn := as[*apimodel.Function](item, "Function")

	b.export(fn)
	b.keywords("function")
	b.member(fn.Name)
	b.signature(&fn.Signature)
}
