// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

// Banner is the fixed first line of every rendered validation error.
const Banner = "Environment validation failed:"

// Error reports that schema decoding failed. It carries the full
// classification alongside the rendered table so both machines and
// operators get the same picture.
//
// An *Error is recoverable by default; the pipeline's fatal failure mode
// escalates it to a panic while keeping the same value as payload.
type Error struct {
	Missing []string
	Invalid []Issue
	Report  string
}

func (e *Error) Error() string {
	return Banner + "\n" + e.Report
}
