// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

import "github.com/MKhiriev/go-env-guard/schema"

// Issue is a single invalid-data finding. Message keeps the decoder's full
// text; truncation happens only in the rendered table.
type Issue struct {
	Key     string
	Message string
}

// Report is the flattened form of a decode-failure tree.
//
// Missing and Invalid are deduplicated and disjoint: each key gets exactly
// one classification, decided by the first leaf encountered for it in
// traversal order. Table is derived from the two buckets and nothing else.
type Report struct {
	Missing []string
	Invalid []Issue
	Table   string
}

// Classify walks the failure tree depth-first and buckets every leaf.
//
// Combinator nodes (And, Or) are expanded into their children and never
// classified themselves. Missing, source-unavailable, and unsupported
// leaves count as missing; invalid-data leaves count as invalid. When
// alternative branches of an Or node report the same key, the branch
// visited first wins and later classifications for that key are dropped,
// not merged.
func Classify(failure *schema.Failure) Report {
	var (
		missing []string
		invalid []Issue
		seen    = make(map[string]struct{})
	)

	failure.Walk(func(leaf *schema.Failure) {
		key := leaf.Key()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		switch leaf.Kind {
		case schema.KindInvalid:
			invalid = append(invalid, Issue{Key: key, Message: leaf.Message})
		default:
			missing = append(missing, key)
		}
	})

	return Report{
		Missing: missing,
		Invalid: invalid,
		Table:   FormatTable(missing, invalid),
	}
}

// Err wraps the report into an *Error, or returns nil when the report has
// no findings.
func (r Report) Err() *Error {
	if len(r.Missing) == 0 && len(r.Invalid) == 0 {
		return nil
	}
	return &Error{Missing: r.Missing, Invalid: r.Invalid, Report: r.Table}
}
