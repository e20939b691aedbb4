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

// Package reporter contains the types used for reporting errors from
// generating review lines for a batch of items.
//
// A failure for one item never affects the output for other items. Whether
// the batch as a whole keeps going after a failure is up to the [Reporter].
package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. If it returns
// nil, generation continues with the remaining items. If it returns a
// non-nil error, the batch stops and returns that error.
type ErrorReporter func(err ErrorWithItem) error

// Reporter receives the errors of a batch.
type Reporter interface {
	Error(ErrorWithItem) error
}

// NewReporter returns a Reporter that calls errs. If errs is nil, every error
// is discarded and generation always continues.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc(errs)
}

type reporterFunc ErrorReporter

func (f reporterFunc) Error(err ErrorWithItem) error {
	if f == nil {
		return nil
	}
	return f(err)
}

// Handler is used by the batch generator to forward errors to a Reporter.
// It is safe for concurrent use.
//
// Once the reporter has returned an error, that error is sticky: it is
// returned for every later report without consulting the reporter again.
type Handler struct {
	reporter Reporter

	mu       sync.Mutex
	reported int
	err      error
}

// NewHandler creates a new Handler that reports errors to rep. If rep is nil,
// errors are discarded.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleError reports err. Returns non-nil if generation should stop.
func (h *Handler) HandleError(err ErrorWithItem) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.reported++
	h.err = h.reporter.Error(err)
	return h.err
}

// Error returns the error that stopped generation, if any.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// Reported returns how many errors reached the reporter.
func (h *Handler) Reported() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.reported
}
