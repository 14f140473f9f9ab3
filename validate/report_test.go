// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-env-guard/schema"
)

// ── Classify ──────────────────────────────────────────────────────────────────

func TestClassify_BucketsByLeafKind(t *testing.T) {
	// Arrange
	tree := schema.And(
		schema.Missing([]string{"DB_DSN"}, "required but not provided"),
		schema.Invalid([]string{"PORT"}, "not an int"),
		schema.Unavailable([]string{"SECRET_FILE"}, "file unreadable"),
		schema.Unsupported([]string{"MATRIX"}, "no parser for [][]int"),
	)

	// Act
	report := Classify(tree)

	// Assert
	assert.Equal(t, []string{"DB_DSN", "SECRET_FILE", "MATRIX"}, report.Missing)
	assert.Equal(t, []Issue{{Key: "PORT", Message: "not an int"}}, report.Invalid)
}

// TestClassify_ExpandsCombinators verifies that And and Or nodes are never
// classified themselves; only their leaves reach the buckets.
func TestClassify_ExpandsCombinators(t *testing.T) {
	tree := schema.And(
		schema.Or(
			schema.Invalid([]string{"MODE"}, "not a known variant"),
			schema.Missing([]string{"MODE_FILE"}, "required but not provided"),
		),
		schema.Missing([]string{"TOKEN"}, "required but not provided"),
	)

	report := Classify(tree)

	assert.Equal(t, []string{"MODE_FILE", "TOKEN"}, report.Missing)
	assert.Equal(t, []Issue{{Key: "MODE", Message: "not a known variant"}}, report.Invalid)
}

// TestClassify_FirstClassificationWins verifies the tie rule: when
// alternative branches report the same key, the branch visited first
// decides both the bucket and the message; later findings are dropped,
// not merged.
func TestClassify_FirstClassificationWins(t *testing.T) {
	tests := []struct {
		name    string
		tree    *schema.Failure
		missing []string
		invalid []Issue
	}{
		{
			name: "same key invalid twice keeps first message",
			tree: schema.Or(
				schema.Invalid([]string{"MODE"}, "not an int"),
				schema.Invalid([]string{"MODE"}, "not a bool"),
			),
			invalid: []Issue{{Key: "MODE", Message: "not an int"}},
		},
		{
			name: "missing beats later invalid for the same key",
			tree: schema.Or(
				schema.Missing([]string{"MODE"}, "required but not provided"),
				schema.Invalid([]string{"MODE"}, "not an int"),
			),
			missing: []string{"MODE"},
		},
		{
			name: "invalid beats later missing for the same key",
			tree: schema.Or(
				schema.Invalid([]string{"MODE"}, "not an int"),
				schema.Missing([]string{"MODE"}, "required but not provided"),
			),
			invalid: []Issue{{Key: "MODE", Message: "not an int"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Classify(tt.tree)

			assert.Equal(t, tt.missing, report.Missing)
			assert.Equal(t, tt.invalid, report.Invalid)
		})
	}
}

// TestClassify_BucketsAreDisjoint is the property the dedup rule is meant
// to guarantee: no key ever appears both as missing and as invalid.
func TestClassify_BucketsAreDisjoint(t *testing.T) {
	tree := schema.And(
		schema.Or(
			schema.Missing([]string{"A"}, "required but not provided"),
			schema.Invalid([]string{"A"}, "not an int"),
		),
		schema.Or(
			schema.Invalid([]string{"B"}, "not a bool"),
			schema.Missing([]string{"B"}, "required but not provided"),
		),
		schema.Missing([]string{"C"}, "required but not provided"),
	)

	report := Classify(tree)

	invalidKeys := map[string]struct{}{}
	for _, issue := range report.Invalid {
		invalidKeys[issue.Key] = struct{}{}
	}
	for _, key := range report.Missing {
		_, both := invalidKeys[key]
		assert.False(t, both, "key %s classified twice", key)
	}
}

func TestClassify_RootSentinel(t *testing.T) {
	tree := schema.Invalid(nil, "input is not a record")

	report := Classify(tree)

	assert.Equal(t, []Issue{{Key: "<root>", Message: "input is not a record"}}, report.Invalid)
	assert.Empty(t, report.Missing)
}

// ── Err ───────────────────────────────────────────────────────────────────────

func TestReport_Err(t *testing.T) {
	t.Run("empty report has no error", func(t *testing.T) {
		assert.Nil(t, Report{}.Err())
	})

	t.Run("non-empty report wraps into Error", func(t *testing.T) {
		report := Classify(schema.Missing([]string{"A"}, "required but not provided"))

		err := report.Err()

		require.NotNil(t, err)
		assert.Equal(t, report.Missing, err.Missing)
		assert.Equal(t, report.Table, err.Report)
	})
}

func TestError_MessageStartsWithBanner(t *testing.T) {
	err := Classify(schema.Missing([]string{"A"}, "required but not provided")).Err()

	require.NotNil(t, err)
	assert.Equal(t, Banner, err.Error()[:len(Banner)])
	assert.Contains(t, err.Error(), err.Report)
}
