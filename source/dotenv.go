// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
)

// DotenvSource reads a .env file without touching the process environment.
type DotenvSource struct {
	path string
}

// NewDotenvSource returns a Source that parses the dotenv file at path on
// every Load call.
func NewDotenvSource(path string) *DotenvSource {
	return &DotenvSource{path: path}
}

// Name implements Source.
func (s *DotenvSource) Name() string { return "dotenv" }

// Load parses the file with godotenv.Read, which returns the parsed values
// instead of exporting them, keeping the adapter free of global side effects.
func (s *DotenvSource) Load(ctx context.Context) (RawEnvironment, error) {
	if err := ctx.Err(); err != nil {
		return nil, &Error{Source: s.Name(), Err: err}
	}

	values, err := godotenv.Read(s.path)
	if err != nil {
		return nil, &Error{Source: s.Name(), Err: fmt.Errorf("error reading dotenv file %q: %w", s.path, err)}
	}

	return NewRawEnvironment(values), nil
}
