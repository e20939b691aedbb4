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

package reporter

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/bufbuild/apireview/apimodel"
)

// ErrorWithItem is an error about a single declaration item of an API model.
//
// The value of Error() contains both a description of the item and the
// underlying error. The value of Unwrap() is only the underlying error.
type ErrorWithItem interface {
	error
	Item() apimodel.Item
	Unwrap() error
}

// Error returns an error about item.
func Error(item apimodel.Item, err error) ErrorWithItem {
	return itemError{item: item, underlying: err}
}

// Errorf returns an error about item with a formatted message.
func Errorf(item apimodel.Item, format string, args ...any) ErrorWithItem {
	return itemError{item: item, underlying: errors.Newf(format, args...)}
}

type itemError struct {
	item       apimodel.Item
	underlying error
}

func (e itemError) Error() string {
	name := e.item.CanonicalReference().String()
	if name == "" {
		name = e.item.DisplayName()
	}
	return fmt.Sprintf("%v %s: %v", e.item.Kind(), name, e.underlying)
}

// Item implements [ErrorWithItem].
func (e itemError) Item() apimodel.Item {
	return e.item
}

// Unwrap implements [ErrorWithItem].
func (e itemError) Unwrap() error {
	return e.underlying
}

var _ ErrorWithItem = itemError{}
