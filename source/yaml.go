// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLSource reads a flat YAML mapping of string keys to string values,
// e.g.
//
//	SERVER_ADDRESS: "0.0.0.0:8080"
//	APP_TOKEN_DURATION: "1h"
//
// Nested YAML documents are rejected; the pipeline expects the same flat
// shape the process environment has.
type YAMLSource struct {
	path string
}

// NewYAMLSource returns a Source that parses the YAML file at path on
// every Load call.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: path}
}

// Name implements Source.
func (s *YAMLSource) Name() string { return "yaml" }

// Load reads and decodes the file.
func (s *YAMLSource) Load(ctx context.Context) (RawEnvironment, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Source: s.Name(), Err: err}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &Error{Source: s.Name(), Err: fmt.Errorf("error reading yaml file %q: %w", s.path, err)}
	}

	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, &Error{Source: s.Name(), Err: fmt.Errorf("error decoding yaml file %q: %w", s.path, err)}
	}

	return NewRawEnvironment(values), nil
}
