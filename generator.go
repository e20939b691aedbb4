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

package apireview

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/reporter"
	"github.com/bufbuild/apireview/review"
	"github.com/bufbuild/apireview/tokengen"
)

// Generator generates review lines for the items of an API model.
//
// The zero value is ready to use. A Generator may be used concurrently, as
// long as its fields are not modified.
type Generator struct {
	// The maximum number of items to generate concurrently. If unspecified
	// or set to a non-positive value, then
	// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int

	// A custom error reporter. If unspecified a default reporter is used,
	// which records each failed item in its [Result] and continues.
	Reporter reporter.Reporter

	// If unspecified, nothing is logged.
	Logger *zap.Logger

	// Reports whether an item is deprecated. Every token of a deprecated
	// item is marked as such. If unspecified, no item is deprecated.
	Deprecated func(apimodel.Item) bool

	// Limits how deeply object-type literals are broken into child lines.
	// Zero or negative means no limit.
	MaxDepth int
}

// Result is the outcome of generating a single item.
type Result struct {
	Item apimodel.Item
	Line review.Line

	// Set if the item could not be generated, in which case Line is empty.
	Err reporter.ErrorWithItem
}

// Generate generates the line of each item. The members of an item are not
// included in its line; to generate them, pass them explicitly, or use
// [Generator.Tree].
//
// The results are in the same order as items. Every item that fails is
// reported to the generator's reporter; if the reporter returns an error,
// generation stops early and that error is returned. Generation also stops
// if ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, items ...apimodel.Item) ([]Result, error) {
	if len(items) == 0 {
		return nil, nil
	}

	h := reporter.NewHandler(g.Reporter)
	log := g.logger()

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(g.parallelism())

	results := make([]Result, len(items))
	for i, item := range items {
		results[i].Item = item
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			line, err := tokengen.Generate(item, g.options(item))
			if err != nil {
				results[i].Err = reporter.Error(item, err)
				log.Warn("cannot generate item",
					zap.String("ref", item.CanonicalReference().String()),
					zap.Stringer("kind", item.Kind()),
					zap.Error(err))
				return h.HandleError(results[i].Err)
			}

			results[i].Line = line
			log.Debug("generated item",
				zap.String("ref", item.CanonicalReference().String()),
				zap.Stringer("kind", item.Kind()),
				zap.Int("tokens", line.Len()),
				zap.Int("children", len(line.Children)))
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	log.Debug("generated batch",
		zap.Int("items", len(items)),
		zap.Int("failed", h.Reported()))
	return results, nil
}

// Tree generates the review lines of root and everything it contains.
//
// Models, packages and entry points contribute no line of their own: their
// members are returned in their place. The members of classes, interfaces,
// namespaces and enums become the children of their parent's line, which is
// given an opening brace, with a closing brace after the children.
//
// Items that fail are reported as with [Generator.Generate] and left out of
// the tree, along with their members.
func (g *Generator) Tree(ctx context.Context, root apimodel.Item) ([]review.Line, error) {
	var items []apimodel.Item
	for item := range apimodel.Walk(root) {
		if !item.Kind().IsContainer() {
			items = append(items, item)
		}
	}

	results, err := g.Generate(ctx, items...)
	if err != nil {
		return nil, err
	}

	byItem := make(map[apimodel.Item]*Result, len(results))
	for i := range results {
		byItem[results[i].Item] = &results[i]
	}
	return assemble(root, byItem), nil
}

// assemble builds the lines for item out of already generated results.
func assemble(item apimodel.Item, results map[apimodel.Item]*Result) []review.Line {
	if item == nil {
		return nil
	}

	var members []review.Line
	if c, ok := item.(apimodel.Container); ok {
		for _, member := range c.Children() {
			members = append(members, assemble(member, results)...)
		}
	}
	if item.Kind().IsContainer() {
		return members
	}

	r := results[item]
	if r == nil || r.Err != nil {
		return nil
	}
	line := r.Line
	if len(members) == 0 {
		return []review.Line{line}
	}

	deprecated := line.Flatten()[0].IsDeprecated
	if item.Kind() == apimodel.KindEnum {
		comma := review.NewToken(review.Punctuation, ",", review.Options{IsDeprecated: deprecated})
		for i := range members {
			if members[i].IsLeaf() {
				members[i].Tokens = append(members[i].Tokens, comma)
			} else {
				members[i].Close = append(members[i].Close, comma)
			}
		}
	}

	line.Tokens = append(line.Tokens, review.NewToken(review.Punctuation, "{", review.Options{
		HasPrefixSpace: true,
		IsDeprecated:   deprecated,
	}))
	line.Children = members
	line.Close = []review.Token{review.NewToken(review.Punctuation, "}", review.Options{IsDeprecated: deprecated})}
	return []review.Line{line}
}

func (g *Generator) options(item apimodel.Item) tokengen.Options {
	return tokengen.Options{
		Deprecated: g.Deprecated != nil && g.Deprecated(item),
		MaxDepth:   g.MaxDepth,
	}
}

func (g *Generator) parallelism() int {
	par := g.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	return par
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}
