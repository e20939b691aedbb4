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

// Package apitest builds API models out of YAML test fixtures.
//
// A fixture describes one item and, recursively, its members:
//
//	kind: Class
//	name: Base
//	ref: "demo!Base:class"
//	typeParameters: [{name: T}]
//	extends: [[{text: Root, ref: "demo!Root:class"}]]
//	members:
//	  - kind: Property
//	    name: id
//	    type: string
//
// An excerpt is written either as a string, which becomes a single text
// span, or as a list whose elements are strings (text spans) or
// {text, ref} mappings (reference spans).
package apitest

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/apireview/apimodel"
)

// Fixture is the YAML form of an item.
type Fixture struct {
	Kind    string  `yaml:"kind"`
	Name    string  `yaml:"name"`
	Ref     string  `yaml:"ref"`
	Excerpt Excerpt `yaml:"excerpt"`

	// Generation options; only meaningful on the top-level fixture.
	Deprecated bool `yaml:"deprecated"`
	MaxDepth   int  `yaml:"maxDepth"`

	TypeParameters []TypeParameter `yaml:"typeParameters"`
	Parameters     []Parameter     `yaml:"parameters"`
	ReturnType     Excerpt         `yaml:"returnType"`
	Type           Excerpt         `yaml:"type"`
	Extends        []Excerpt       `yaml:"extends"`
	Implements     []Excerpt       `yaml:"implements"`
	Initializer    Excerpt         `yaml:"initializer"`

	Abstract  bool `yaml:"abstract"`
	Static    bool `yaml:"static"`
	Protected bool `yaml:"protected"`
	Optional  bool `yaml:"optional"`
	Readonly  bool `yaml:"readonly"`

	Members []*Fixture `yaml:"members"`
}

// TypeParameter is the YAML form of [apimodel.TypeParameter].
type TypeParameter struct {
	Name       string  `yaml:"name"`
	Constraint Excerpt `yaml:"constraint"`
	Default    Excerpt `yaml:"default"`
}

// Parameter is the YAML form of [apimodel.Parameter].
type Parameter struct {
	Name     string  `yaml:"name"`
	Type     Excerpt `yaml:"type"`
	Optional bool    `yaml:"optional"`
}

// Excerpt is the YAML form of [apimodel.Excerpt].
type Excerpt apimodel.Excerpt

// UnmarshalYAML implements [yaml.Unmarshaler].
func (e *Excerpt) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = Excerpt(apimodel.TextExcerpt(node.Value))
		return nil
	case yaml.SequenceNode:
		var spans []span
		if err := node.Decode(&spans); err != nil {
			return err
		}
		e.Tokens = make([]apimodel.ExcerptToken, len(spans))
		for i, s := range spans {
			e.Tokens[i] = apimodel.ExcerptToken(s)
		}
		return nil
	default:
		return errors.Newf("line %d: an excerpt must be a string or a list of spans", node.Line)
	}
}

type span apimodel.ExcerptToken

func (s *span) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = span(apimodel.Text(node.Value))
		return nil
	}
	var ref struct {
		Text string `yaml:"text"`
		Ref  string `yaml:"ref"`
	}
	if err := node.Decode(&ref); err != nil {
		return err
	}
	*s = span(apimodel.Ref(ref.Text, apimodel.CanonicalReference(ref.Ref)))
	return nil
}

// Parse decodes a fixture.
func Parse(data []byte) (*Fixture, error) {
	f := new(Fixture)
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, errors.Wrap(err, "apitest: invalid fixture")
	}
	return f, nil
}

// Load decodes a fixture and builds its item.
func Load(data []byte) (*Fixture, apimodel.Item, error) {
	f, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	item, err := f.Item()
	return f, item, err
}

// Item builds the item this fixture describes.
func (f *Fixture) Item() (apimodel.Item, error) {
	kind, ok := kinds[f.Kind]
	if !ok {
		return nil, errors.Newf("apitest: unknown kind %q for %q", f.Kind, f.Name)
	}
	members := make([]apimodel.Item, 0, len(f.Members))
	for _, m := range f.Members {
		item, err := m.Item()
		if err != nil {
			return nil, errors.Wrapf(err, "in %q", f.Name)
		}
		members = append(members, item)
	}

	decl := apimodel.Declaration{
		Name:      f.Name,
		Reference: apimodel.CanonicalReference(f.Ref),
		Excerpt:   apimodel.Excerpt(f.Excerpt),
	}
	sig := apimodel.Signature{
		TypeParameters: f.typeParameters(),
		Parameters:     f.parameters(),
		ReturnType:     apimodel.Excerpt(f.ReturnType),
	}

	switch kind {
	case apimodel.KindCallSignature:
		return &apimodel.CallSignature{Declaration: decl, Signature: sig}, nil
	case apimodel.KindClass:
		class := &apimodel.Class{
			Declaration:    decl,
			TypeParameters: sig.TypeParameters,
			Implements:     excerpts(f.Implements),
			Abstract:       f.Abstract,
			Members:        members,
		}
		switch len(f.Extends) {
		case 0:
		case 1:
			class.Extends = apimodel.Excerpt(f.Extends[0])
		default:
			return nil, errors.Newf("apitest: class %q extends more than one type", f.Name)
		}
		return class, nil
	case apimodel.KindConstructor:
		return &apimodel.Constructor{Declaration: decl, Parameters: sig.Parameters, Protected: f.Protected}, nil
	case apimodel.KindConstructSignature:
		return &apimodel.ConstructSignature{Declaration: decl, Signature: sig}, nil
	case apimodel.KindEntryPoint:
		return &apimodel.EntryPoint{Declaration: decl, Members: members}, nil
	case apimodel.KindEnum:
		return &apimodel.Enum{Declaration: decl, Members: members}, nil
	case apimodel.KindEnumMember:
		return &apimodel.EnumMember{Declaration: decl, Initializer: apimodel.Excerpt(f.Initializer)}, nil
	case apimodel.KindFunction:
		return &apimodel.Function{Declaration: decl, Signature: sig}, nil
	case apimodel.KindIndexSignature:
		return &apimodel.IndexSignature{
			Declaration: decl,
			Parameters:  sig.Parameters,
			ReturnType:  sig.ReturnType,
			Readonly:    f.Readonly,
		}, nil
	case apimodel.KindInterface:
		return &apimodel.Interface{
			Declaration:    decl,
			TypeParameters: sig.TypeParameters,
			Extends:        excerpts(f.Extends),
			Members:        members,
		}, nil
	case apimodel.KindMethod:
		return &apimodel.Method{
			Declaration: decl,
			Signature:   sig,
			Optional:    f.Optional,
			Static:      f.Static,
			Protected:   f.Protected,
			Abstract:    f.Abstract,
		}, nil
	case apimodel.KindMethodSignature:
		return &apimodel.MethodSignature{Declaration: decl, Signature: sig, Optional: f.Optional}, nil
	case apimodel.KindModel:
		return &apimodel.Model{Declaration: decl, Members: members}, nil
	case apimodel.KindNamespace:
		return &apimodel.Namespace{Declaration: decl, Members: members}, nil
	case apimodel.KindPackage:
		return &apimodel.Package{Declaration: decl, Members: members}, nil
	case apimodel.KindProperty:
		return &apimodel.Property{
			Declaration: decl,
			Type:        apimodel.Excerpt(f.Type),
			Optional:    f.Optional,
			Readonly:    f.Readonly,
			Static:      f.Static,
			Protected:   f.Protected,
			Abstract:    f.Abstract,
		}, nil
	case apimodel.KindPropertySignature:
		return &apimodel.PropertySignature{
			Declaration: decl,
			Type:        apimodel.Excerpt(f.Type),
			Optional:    f.Optional,
			Readonly:    f.Readonly,
		}, nil
	case apimodel.KindTypeAlias:
		return &apimodel.TypeAlias{Declaration: decl, TypeParameters: sig.TypeParameters, Type: apimodel.Excerpt(f.Type)}, nil
	case apimodel.KindVariable:
		return &apimodel.Variable{Declaration: decl, Type: apimodel.Excerpt(f.Type)}, nil
	default:
		return nil, errors.AssertionFailedf("apitest: kind %v is not handled", kind)
	}
}

func (f *Fixture) typeParameters() []apimodel.TypeParameter {
	var out []apimodel.TypeParameter
	for _, tp := range f.TypeParameters {
		out = append(out, apimodel.TypeParameter{
			Name:       tp.Name,
			Constraint: apimodel.Excerpt(tp.Constraint),
			Default:    apimodel.Excerpt(tp.Default),
		})
	}
	return out
}

func (f *Fixture) parameters() []apimodel.Parameter {
	var out []apimodel.Parameter
	for _, p := range f.Parameters {
		out = append(out, apimodel.Parameter{Name: p.Name, Type: apimodel.Excerpt(p.Type), Optional: p.Optional})
	}
	return out
}

func excerpts(in []Excerpt) []apimodel.Excerpt {
	var out []apimodel.Excerpt
	for _, ex := range in {
		out = append(out, apimodel.Excerpt(ex))
	}
	return out
}

var kinds = func() map[string]apimodel.Kind {
	m := make(map[string]apimodel.Kind)
	for k := range apimodel.Kinds() {
		m[k.String()] = k
	}
	return m
}()
