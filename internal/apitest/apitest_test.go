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

package apitest_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/apireview/apimodel"
	"github.com/bufbuild/apireview/internal/apitest"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	_, item, err := apitest.Load([]byte(`
kind: Class
name: Base
ref: "demo!Base:class"
abstract: true
typeParameters: [{name: T, constraint: object}]
extends: [[{text: Root, ref: "demo!Root:class"}]]
implements:
  - [{text: Comparable, ref: "demo!Comparable:interface"}, "<T>"]
members:
  - kind: Property
    name: id
    type: string
    readonly: true
`))
	require.NoError(t, err)

	class, ok := item.(*apimodel.Class)
	require.True(t, ok, "got %T", item)
	assert.Equal(t, "Base", class.DisplayName())
	assert.Equal(t, apimodel.CanonicalReference("demo!Base:class"), class.CanonicalReference())
	assert.True(t, class.Abstract)
	require.Len(t, class.TypeParameters, 1)
	assert.Equal(t, "object", class.TypeParameters[0].Constraint.Text())
	assert.Equal(t, []apimodel.ExcerptToken{apimodel.Ref("Root", "demo!Root:class")}, class.Extends.Tokens)
	require.Len(t, class.Implements, 1)
	assert.Equal(t, []apimodel.ExcerptToken{
		apimodel.Ref("Comparable", "demo!Comparable:interface"),
		apimodel.Text("<T>"),
	}, class.Implements[0].Tokens)

	require.Len(t, class.Members, 1)
	prop, ok := class.Members[0].(*apimodel.Property)
	require.True(t, ok, "got %T", class.Members[0])
	assert.True(t, prop.Readonly)
	assert.Equal(t, "string", prop.Type.Text())
}

func TestLoadOptions(t *testing.T) {
	t.Parallel()

	fixture, item, err := apitest.Load([]byte("kind: Variable\nname: x\ntype: number\ndeprecated: true\nmaxDepth: 2\n"))
	require.NoError(t, err)
	assert.True(t, fixture.Deprecated)
	assert.Equal(t, 2, fixture.MaxDepth)
	assert.Equal(t, apimodel.KindVariable, item.Kind())
}

func TestLoadKinds(t *testing.T) {
	t.Parallel()

	for kind := range apimodel.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			_, item, err := apitest.Load([]byte("kind: " + kind.String() + "\nname: x\n"))
			require.NoError(t, err)
			assert.Equal(t, kind, item.Kind())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml string
	}{
		{name: "unknown-kind", yaml: "kind: Struct\nname: x\n"},
		{name: "unknown-member-kind", yaml: "kind: Class\nname: x\nmembers: [{kind: Field, name: y}]\n"},
		{name: "two-bases", yaml: "kind: Class\nname: x\nextends: [A, B]\n"},
		{name: "bad-excerpt", yaml: "kind: Variable\nname: x\ntype: {text: number}\n"},
		{name: "not-yaml", yaml: "kind: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := apitest.Load([]byte(test.yaml))
			require.Error(t, err)
			assert.False(t, errors.HasAssertionFailure(err))
		})
	}
}
