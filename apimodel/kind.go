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

import (
	"fmt"
	"iter"
)

const (
	KindNone Kind = iota // Not a valid item kind.

	KindCallSignature
	KindClass
	KindConstructor
	KindConstructSignature
	KindEntryPoint
	KindEnum
	KindEnumMember
	KindFunction
	KindIndexSignature
	KindInterface
	KindMethod
	KindMethodSignature
	KindModel
	KindNamespace
	KindPackage
	KindProperty
	KindPropertySignature
	KindTypeAlias
	KindVariable

	kindCount // Total number of kinds, including KindNone.
)

// Kind identifies what kind of declaration an [Item] is.
type Kind int8

// Kinds returns an iterator over every valid kind, in declaration order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := KindNone + 1; k < kindCount; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// IsContainer returns whether this kind only groups other items and has no
// declaration syntax of its own.
func (k Kind) IsContainer() bool {
	switch k {
	case KindModel, KindPackage, KindEntryPoint:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k <= KindNone || k >= kindCount {
		return fmt.Sprintf("apimodel.Kind(%d)", int(k))
	}
	return kindNames[k]
}

var kindNames = [...]string{
	KindCallSignature:      "CallSignature",
	KindClass:              "Class",
	KindConstructor:        "Constructor",
	KindConstructSignature: "ConstructSignature",
	KindEntryPoint:         "EntryPoint",
	KindEnum:               "Enum",
	KindEnumMember:         "EnumMember",
	KindFunction:           "Function",
	KindIndexSignature:     "IndexSignature",
	KindInterface:          "Interface",
	KindMethod:             "Method",
	KindMethodSignature:    "MethodSignature",
	KindModel:              "Model",
	KindNamespace:          "Namespace",
	KindPackage:            "Package",
	KindProperty:           "Property",
	KindPropertySignature:  "PropertySignature",
	KindTypeAlias:          "TypeAlias",
	KindVariable:           "Variable",
}
