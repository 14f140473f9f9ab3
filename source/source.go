// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
)

// RawEnvironment is a flat, unvalidated key-value mapping. A key that is
// absent from the map is absent from the environment; adapters never coerce
// absence into an empty string.
//
// A RawEnvironment is never mutated after construction. Constructors copy
// their input, and consumers must treat the map as read-only.
type RawEnvironment map[string]string

// NewRawEnvironment returns a RawEnvironment holding a copy of values.
// Later mutation of values does not affect the returned environment.
func NewRawEnvironment(values map[string]string) RawEnvironment {
	raw := make(RawEnvironment, len(values))
	for k, v := range values {
		raw[k] = v
	}
	return raw
}

// Lookup reports the value for key and whether the key is present.
func (r RawEnvironment) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Source is a raw-environment adapter. Load may suspend (file read, etc.)
// and must honor ctx cancellation; it must not leave partial state visible
// to the caller on failure.
type Source interface {
	// Name identifies the adapter in errors and logs (e.g. "process-env").
	Name() string

	// Load yields the adapter's current environment, or an *Error.
	Load(ctx context.Context) (RawEnvironment, error)
}

// Error reports a failed source load. It is one of the three error kinds
// the pipeline returns and is always recoverable.
type Error struct {
	// Source is the Name of the adapter that failed.
	Source string

	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("source %q failed to load: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
