// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-env-guard/source"
)

// Kind enumerates the value types FieldSchema can parse.
type Kind uint8

const (
	String Kind = iota
	Int
	Float
	Bool
	Duration
	JSON
)

// Field declares a single configuration key.
//
// Default is used when the key is absent from raw input; an empty Default
// means no default. Rule is an optional go-playground/validator tag
// expression (e.g. "min=1,max=65535") checked against the parsed value.
type Field struct {
	Key      string
	Kind     Kind
	Required bool
	Default  string
	Rule     string
}

// FieldSchema is a declarative Schema for callers that do not keep an
// env-tagged configuration struct.
type FieldSchema struct {
	fields []Field
	check  *validator.Validate
}

// NewFieldSchema builds a FieldSchema over the given fields. Field order
// is preserved in Keys and in failure aggregation.
func NewFieldSchema(fields ...Field) *FieldSchema {
	return &FieldSchema{
		fields: fields,
		check:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Keys implements Schema.
func (s *FieldSchema) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Decode implements Schema. Each field is resolved independently so a
// single pass reports every failing key at once.
func (s *FieldSchema) Decode(raw source.RawEnvironment) (map[string]any, *Failure) {
	decoded := make(map[string]any, len(s.fields))
	var leaves []*Failure

	for _, f := range s.fields {
		value, ok := raw.Lookup(f.Key)
		if !ok {
			if f.Default == "" {
				if f.Required {
					leaves = append(leaves, Missing([]string{f.Key}, "required but not provided"))
				}
				continue
			}
			value = f.Default
		}

		parsed, err := parseValue(f.Kind, value)
		if err != nil {
			leaves = append(leaves, Invalid([]string{f.Key}, err.Error()))
			continue
		}

		if f.Rule != "" {
			if err := s.check.Var(parsed, f.Rule); err != nil {
				leaves = append(leaves, Invalid([]string{f.Key}, ruleMessage(err)))
				continue
			}
		}

		decoded[f.Key] = parsed
	}

	if len(leaves) > 0 {
		return nil, And(leaves...)
	}
	return decoded, nil
}

func parseValue(kind Kind, value string) (any, error) {
	switch kind {
	case String:
		return value, nil
	case Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as int", value)
		}
		return n, nil
	case Float:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as float", value)
		}
		return f, nil
	case Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as bool", value)
		}
		return b, nil
	case Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as duration", value)
		}
		return d, nil
	case JSON:
		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			return nil, fmt.Errorf("cannot parse %q as JSON", value)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown field kind %d", kind)
	}
}

// ruleMessage flattens a validator error into a single stable line, keeping
// the rule name and parameter so operators can see which constraint fired.
func ruleMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		rule := verrs[0].Tag()
		if param := verrs[0].Param(); param != "" {
			rule += "=" + param
		}
		return fmt.Sprintf("failed validation rule %q", rule)
	}
	return err.Error()
}
