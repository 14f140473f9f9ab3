// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo_EmitsRoleAndTimestamp(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "env-guard")

	// Act
	l.Info().Str("stage", "decode").Msg("stage complete")

	// Assert
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "env-guard", entry["role"])
	assert.Equal(t, "decode", entry["stage"])
	assert.Equal(t, "stage complete", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()

	// Must not panic and must not write anywhere.
	l.Error().Msg("invisible")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "parent-role")

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	assert.Contains(t, buf.String(), "parent-role")
}

func TestFromContext_FallsBackToGlobal(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
}

func TestFromContext_ExtractsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := NewLoggerTo(&buf, "attached")
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("via context")

	assert.Contains(t, buf.String(), "attached")
}
