// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import "context"

// MapSource serves a fixed in-memory record. It is the natural source for
// tests and for callers that assemble configuration themselves.
type MapSource struct {
	name string
	raw  RawEnvironment
}

// NewMapSource copies values into a new MapSource named "record".
func NewMapSource(values map[string]string) *MapSource {
	return &MapSource{name: "record", raw: NewRawEnvironment(values)}
}

// NewNamedMapSource is NewMapSource with a caller-chosen adapter name,
// useful when several in-memory sources appear in the same error output.
func NewNamedMapSource(name string, values map[string]string) *MapSource {
	return &MapSource{name: name, raw: NewRawEnvironment(values)}
}

// Name implements Source.
func (s *MapSource) Name() string { return s.name }

// Load returns a copy of the record so the source's own state stays frozen.
func (s *MapSource) Load(ctx context.Context) (RawEnvironment, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Source: s.name, Err: err}
	}
	return NewRawEnvironment(s.raw), nil
}
