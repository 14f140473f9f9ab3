// Package validate classifies schema decode failures into a flat,
// categorized report.
//
// Every leaf of a schema.Failure tree lands in exactly one of two buckets:
// missing (the key was absent, or its source was unreachable or
// unsupported) or invalid (the key was present but its value failed
// checks). The buckets are deduplicated, a key is never in both, and the
// rendered table is deterministic for a given pair of buckets.
package validate
