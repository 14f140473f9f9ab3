// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import "github.com/MKhiriev/go-env-guard/source"

// Schema is an opaque decode capability supplied by the caller.
//
// Decode is a pure function over its inputs: it reads only the given raw
// environment, returns either the decoded fields or a Failure tree, and
// never both. Absent raw keys must stay absent during decoding — a decoder
// must not coerce them to empty strings.
//
// The decoded value is a flat mapping from field key (the same flat naming
// the raw environment uses, nested paths delimited with "_") to the typed
// value.
type Schema interface {
	// Decode converts raw into typed fields or reports why it cannot.
	Decode(raw source.RawEnvironment) (map[string]any, *Failure)

	// Keys lists every field key the schema declares, in declaration
	// order. The partition policy derives its key lists from this.
	Keys() []string
}
