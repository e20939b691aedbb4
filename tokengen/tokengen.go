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
	"github.com/cockroachdb/errors"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/review"
)

// ErrUnsupportedKind is returned by [Generate] for items that have no
// declaration syntax of their own, such as packages and entry points.
var ErrUnsupportedKind = errors.New("unsupported declaration kind")

// Options configures [Generate].
type Options struct {
	// Deprecated marks every produced token as deprecated.
	Deprecated bool

	// MaxDepth limits how deeply object-type literals are broken into child
	// lines. Zero or negative means no limit.
	MaxDepth int
}

// generator emits the tokens of one kind of item into b.
//
// A generator panics if it is given an item of a kind it does not handle.
type generator func(b *builder, item apimodel.Item)

// generators maps every kind with declaration syntax to its generator.
//
// Kinds missing from this table are reported as [ErrUnsupportedKind]. Only
// the container kinds may be missing; this is checked by tests.
var generators = map[apimodel.Kind]generator{
	apimodel.KindCallSignature:      generateSignature,
	apimodel.KindClass:              generateClass,
	apimodel.KindConstructor:        generateConstructor,
	apimodel.KindConstructSignature: generateSignature,
	apimodel.KindEnum:               generateEnum,
	apimodel.KindEnumMember:         generateEnumMember,
	apimodel.KindFunction:           generateFunction,
	apimodel.KindIndexSignature:     generateIndexSignature,
	apimodel.KindInterface:          generateInterface,
	apimodel.KindMethod:             generateMethod,
	apimodel.KindMethodSignature:    generateMethod,
	apimodel.KindNamespace:          generateNamespace,
	apimodel.KindProperty:           generateProperty,
	apimodel.KindPropertySignature:  generateProperty,
	apimodel.KindTypeAlias:          generateTypeAlias,
	apimodel.KindVariable:           generateVariable,
}

// Generate produces the review line for a single item. Members of the item,
// if any, are not included.
//
// Returns an error wrapping [ErrUnsupportedKind] if there is no generator
// for the item's kind.
func Generate(item apimodel.Item, opts Options) (review.Line, error) {
	gen := generators[item.Kind()]
	if gen == nil {
		return review.Line{}, errors.Wrapf(ErrUnsupportedKind, "%v %q", item.Kind(), item.DisplayName())
	}

	b := &builder{opts: opts}
	gen(b, item)
	return b.Finish(), nil
}

// Supports returns whether [Generate] can produce a line for items of the
// given kind.
func Supports(kind apimodel.Kind) bool {
	return generators[kind] != nil
}

// as converts item to the concrete type a generator expects. Getting this
// wrong is a bug in the dispatch table, so it panics.
func as[T apimodel.Item](item apimodel.Item, gen string) T {
	v, ok := item.(T)
	if !ok {
		panic(errors.AssertionFailedf(
			"invalid item %q of kind %v for %s generator",
			item.DisplayName(), item.Kind(), gen,
		))
	}
	return v
}
