// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envconv provides typed accessors over the partitioned
// configuration maps the pipeline returns. Values may already be typed by
// the schema decoder or still be raw strings; each accessor handles both.
package envconv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotFound is returned when the requested key is absent from the map.
var ErrNotFound = errors.New("key not found")

// String returns the value at key as a string.
func String(env map[string]any, key string) (string, error) {
	v, ok := env[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", v), nil
}

// Int returns the value at key as an int, parsing strings when needed.
func Int(env map[string]any, key string) (int, error) {
	v, ok := env[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	switch value := v.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("key %s: cannot parse %q as int", key, value)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("key %s: cannot convert %T to int", key, v)
	}
}

// Bool returns the value at key as a bool, parsing strings when needed.
func Bool(env map[string]any, key string) (bool, error) {
	v, ok := env[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	switch value := v.(type) {
	case bool:
		return value, nil
	case string:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("key %s: cannot parse %q as bool", key, value)
		}
		return b, nil
	default:
		return false, fmt.Errorf("key %s: cannot convert %T to bool", key, v)
	}
}

// Duration returns the value at key as a time.Duration, parsing strings
// like "30s" when needed.
func Duration(env map[string]any, key string) (time.Duration, error) {
	v, ok := env[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	switch value := v.(type) {
	case time.Duration:
		return value, nil
	case int64:
		return time.Duration(value), nil
	case string:
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("key %s: cannot parse %q as duration", key, value)
		}
		return d, nil
	default:
		return 0, fmt.Errorf("key %s: cannot convert %T to duration", key, v)
	}
}

// JSON unmarshals the value at key into target. String values are parsed
// as JSON documents; anything else is round-tripped through encoding/json.
func JSON(env map[string]any, key string, target any) error {
	v, ok := env[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	data, err := toJSONBytes(v)
	if err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("key %s: cannot parse value as JSON: %w", key, err)
	}
	return nil
}

func toJSONBytes(v any) ([]byte, error) {
	if s, ok := v.(string); ok {
		return []byte(s), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cannot re-encode value as JSON: %w", err)
	}
	return data, nil
}
