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

// protected static abstract name?<T>(params): ret;
func generateMethod(b *builder, item apimodel.Item) {
	var (
		sig      *apimodel.Signature
		optional bool
	)
	switch m := item.(type) {
	case *apimodel.Method:
		b.modifiers(m.Protected, m.Static, m.Abstract, false)
		sig, optional = &m.Signature, m.Optional
	case *apimodel.MethodSignature:
		sig, optional = &m.Signature, m.Optional
	default:
		as[*apimodel.Method](item, "Method")
	}

	b.member(item.DisplayName())
	if optional {
		b.punct("?", tight)
	}
	b.signature(sig)
}

// <T>(params): ret;
// new <T>(params): ret;
func generateSignature(b *builder, item apimodel.Item) {
	var sig *apimodel.Signature
	switch s := item.(type) {
	case *apimodel.CallSignature:
		sig = &s.Signature
	case *apimodel.ConstructSignature:
		b.keywords("new")
		sig = &s.Signature
	default:
		as[*apimodel.CallSignature](item, "Signature")
	}

	b.signature(sig)
}

// protected constructor(params);
func generateConstructor(b *builder, item apimodel.Item) {
	ctor := as[*apimodel.Constructor](item, "Constructor")

	b.modifiers(ctor.Protected, false, false, false)
	b.push(review.Keyword, "constructor", tight)
	b.parameters("(", ")", ctor.Parameters)
	b.punct(";", tight)
}

// readonly [key: K]: V;
func generateIndexSignature(b *builder, item apimodel.Item) {
	sig := as[*apimodel.IndexSignature](item, "IndexSignature")

	b.modifiers(false, false, false, sig.Readonly)
	b.parameters("[", "]", sig.Parameters)
	b.annotation(sig.ReturnType)
	b.punct(";", tight)
}

// protected static abstract readonly name?: T;
func generateProperty(b *builder, item apimodel.Item) {
	var (
		typ      apimodel.Excerpt
		optional bool
	)
	switch p := item.(type) {
	case *apimodel.Property:
		b.modifiers(p.Protected, p.Static, p.Abstract, p.Readonly)
		typ, optional = p.Type, p.Optional
	case *apimodel.PropertySignature:
		b.modifiers(false, false, false, p.Readonly)
		typ, optional = p.Type, p.Optional
	default:
		as[*apimodel.Property](item, "Property")
	}

	b.member(item.DisplayName())
	if optional {
		b.punct("?", tight)
	}
	if !typ.IsEmpty() {
		b.punct(":", after)
		b.typeExpr(typ)
	}
	b.punct(";", tight)
}

// Name = value
func generateEnumMember(b *builder, item apimodel.Item) {
	member := as[*apimodel.EnumMember](item, "EnumMember")

	b.member(member.Name)
	if !member.Initializer.IsEmpty() {
		b.punct("=", around)
		b.excerpt(member.Initializer)
	}
}

// modifiers pushes class member modifiers in the order TypeScript accepts
// them.
func (b *builder) modifiers(protected, static, abstract, readonly bool) {
	if protected {
		b.keywords("protected")
	}
	if static {
		b.keywords("static")
	}
	if abstract {
		b.keywords("abstract")
	}
	if readonly {
		b.keywords("readonly")
	}
}
