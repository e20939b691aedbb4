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

package apimodel

import "iter"

// Item is one declaration in the API model.
//
// Item is sealed: every implementation lives in this package, so a switch
// over the concrete types (or over [Kind]) can be checked for exhaustiveness.
type Item interface {
	// Kind returns the kind of this declaration.
	Kind() Kind
	// DisplayName returns the declaration's name as it appears in source.
	DisplayName() string
	// CanonicalReference returns the stable identifier for this declaration.
	CanonicalReference() CanonicalReference
	// ExcerptTokens returns the spans of the whole declaration's source text.
	ExcerptTokens() []ExcerptToken

	item()
}

// Container is an [Item] that owns other items, such as a class and its
// members.
type Container interface {
	Item

	// Children returns the items directly owned by this one, in source order.
	Children() []Item
}

// Declaration holds the fields shared by every [Item].
type Declaration struct {
	Name      string
	Reference CanonicalReference
	Excerpt   Excerpt
}

// DisplayName implements [Item].
func (d *Declaration) DisplayName() string { return d.Name }

// CanonicalReference implements [Item].
func (d *Declaration) CanonicalReference() CanonicalReference { return d.Reference }

// ExcerptTokens implements [Item].
func (d *Declaration) ExcerptTokens() []ExcerptToken { return d.Excerpt.Tokens }

func (*Declaration) item() {}

// Parameter is a parameter of a callable declaration.
type Parameter struct {
	Name     string
	Type     Excerpt
	Optional bool
}

// TypeParameter is a generic parameter, as in `T extends U = V`.
type TypeParameter struct {
	Name       string
	Constraint Excerpt // Empty when there is no `extends` clause.
	Default    Excerpt // Empty when there is no default.
}

// Signature holds the fields shared by callable declarations.
type Signature struct {
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     Excerpt
}

// Class is a class declaration.
type Class struct {
	Declaration
	TypeParameters []TypeParameter
	Extends        Excerpt // Empty when the class has no base class.
	Implements     []Excerpt
	Abstract       bool
	Members        []Item
}

// Interface is an interface declaration.
type Interface struct {
	Declaration
	TypeParameters []TypeParameter
	Extends        []Excerpt
	Members        []Item
}

// Function is a top-level function declaration.
type Function struct {
	Declaration
	Signature
}

// Method is a method of a class.
type Method struct {
	Declaration
	Signature
	Optional  bool
	Static    bool
	Protected bool
	Abstract  bool
}

// MethodSignature is a method of an interface or object type.
type MethodSignature struct {
	Declaration
	Signature
	Optional bool
}

// CallSignature is an interface member of the form `(x: T): U`.
type CallSignature struct {
	Declaration
	Signature
}

// ConstructSignature is an interface member of the form `new (x: T): U`.
type ConstructSignature struct {
	Declaration
	Signature
}

// Constructor is a class constructor.
type Constructor struct {
	Declaration
	Parameters []Parameter
	Protected  bool
}

// IndexSignature is a member of the form `[key: K]: V`.
type IndexSignature struct {
	Declaration
	Parameters []Parameter
	ReturnType Excerpt
	Readonly   bool
}

// Enum is an enum declaration. Its members are [EnumMember]s.
type Enum struct {
	Declaration
	Members []Item
}

// EnumMember is a single member of an [Enum].
type EnumMember struct {
	Declaration
	Initializer Excerpt // Empty when the member has no explicit value.
}

// Namespace is a namespace declaration.
type Namespace struct {
	Declaration
	Members []Item
}

// TypeAlias is a `type Name = ...` declaration.
type TypeAlias struct {
	Declaration
	TypeParameters []TypeParameter
	Type           Excerpt
}

// Variable is an exported variable.
type Variable struct {
	Declaration
	Type Excerpt
}

// Property is a property of a class.
type Property struct {
	Declaration
	Type      Excerpt
	Optional  bool
	Readonly  bool
	Static    bool
	Protected bool
	Abstract  bool
}

// PropertySignature is a property of an interface or object type.
type PropertySignature struct {
	Declaration
	Type     Excerpt
	Optional bool
	Readonly bool
}

// Model is the root of an API model; its members are [Package]s.
type Model struct {
	Declaration
	Members []Item
}

// Package is a single package; its members are [EntryPoint]s.
type Package struct {
	Declaration
	Members []Item
}

// EntryPoint is an importable entry point of a [Package].
type EntryPoint struct {
	Declaration
	Members []Item
}

func (*Class) Kind() Kind              { return KindClass }
func (*Interface) Kind() Kind          { return KindInterface }
func (*Function) Kind() Kind           { return KindFunction }
func (*Method) Kind() Kind             { return KindMethod }
func (*MethodSignature) Kind() Kind    { return KindMethodSignature }
func (*CallSignature) Kind() Kind      { return KindCallSignature }
func (*ConstructSignature) Kind() Kind { return KindConstructSignature }
func (*Constructor) Kind() Kind        { return KindConstructor }
func (*IndexSignature) Kind() Kind     { return KindIndexSignature }
func (*Enum) Kind() Kind               { return KindEnum }
func (*EnumMember) Kind() Kind         { return KindEnumMember }
func (*Namespace) Kind() Kind          { return KindNamespace }
func (*TypeAlias) Kind() Kind          { return KindTypeAlias }
func (*Variable) Kind() Kind           { return KindVariable }
func (*Property) Kind() Kind           { return KindProperty }
func (*PropertySignature) Kind() Kind  { return KindPropertySignature }
func (*Model) Kind() Kind              { return KindModel }
func (*Package) Kind() Kind            { return KindPackage }
func (*EntryPoint) Kind() Kind         { return KindEntryPoint }

func (c *Class) Children() []Item      { return c.Members }
func (i *Interface) Children() []Item  { return i.Members }
func (e *Enum) Children() []Item       { return e.Members }
func (n *Namespace) Children() []Item  { return n.Members }
func (m *Model) Children() []Item      { return m.Members }
func (p *Package) Children() []Item    { return p.Members }
func (e *EntryPoint) Children() []Item { return e.Members }

// Walk returns an iterator over root and every item it transitively
// contains, in pre-order.
func Walk(root Item) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		walk(root, yield)
	}
}

func walk(item Item, yield func(Item) bool) bool {
	if item == nil {
		return true
	}
	if !yield(item) {
		return false
	}
	if c, ok := item.(Container); ok {
		for _, child := range c.Children() {
			if !walk(child, yield) {
				return false
			}
		}
	}
	return true
}
