// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"os"
	"strings"
)

// EnvSource reads the process environment. It is the pipeline's default
// source.
type EnvSource struct{}

// NewEnvSource returns a Source backed by os.Environ.
func NewEnvSource() *EnvSource {
	return &EnvSource{}
}

// Name implements Source.
func (s *EnvSource) Name() string { return "process-env" }

// Load snapshots the process environment. Variables set to an empty string
// are kept as present-but-empty; only unset variables are absent.
func (s *EnvSource) Load(ctx context.Context) (RawEnvironment, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Source: s.Name(), Err: err}
	}

	environ := os.Environ()
	raw := make(RawEnvironment, len(environ))
	for _, kv := range environ {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		raw[key] = value
	}

	return raw, nil
}
