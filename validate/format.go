// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

import (
	"fmt"
	"strings"
)

const (
	// keyWidth is the fixed width of the Key column. Longer keys are cut;
	// this is cosmetic alignment only and never touches the report data.
	keyWidth = 10

	// detailsLimit is the longest details string printed as-is; anything
	// longer is cut at this many characters and suffixed with "...".
	detailsLimit = 30

	missingDetails = "required but not provided"
)

// FormatTable renders the two report buckets as a fixed-width table:
// a header row, then one row per missing key, then one row per invalid
// issue, both in encounter order. The output is fully determined by its
// arguments.
func FormatTable(missing []string, invalid []Issue) string {
	var b strings.Builder

	writeRow(&b, "Key", "Status", "Details")
	for _, key := range missing {
		writeRow(&b, key, "missing", missingDetails)
	}
	for _, issue := range invalid {
		writeRow(&b, issue.Key, "invalid", truncate(issue.Message))
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeRow(b *strings.Builder, key, status, details string) {
	fmt.Fprintf(b, "%s | %-7s | %s\n", padKey(key), status, details)
}

// padKey forces key into exactly keyWidth characters.
func padKey(key string) string {
	if len(key) > keyWidth {
		return key[:keyWidth]
	}
	return key + strings.Repeat(" ", keyWidth-len(key))
}

func truncate(details string) string {
	if len(details) > detailsLimit {
		return details[:detailsLimit] + "..."
	}
	return details
}
