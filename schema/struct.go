// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-env-guard/source"
)

// StructSchema adapts an env-tagged configuration struct into a Schema.
//
// Field keys follow the caarlos0/env convention: the `env` tag names the
// key and nested structs contribute their `envPrefix` tag, so a nested
// server.host field under prefix SERVER_ is decoded from SERVER_HOST.
// Fields tagged `env:"...,required"` produce missing-data failures when
// absent.
type StructSchema struct {
	typ        reflect.Type
	requireAll bool
	keys       []string
	fieldKeys  map[string]string
}

// NewStructSchema builds a StructSchema from a prototype, which must be a
// struct or a pointer to one. The prototype is only inspected, never
// written to; every Decode call populates a fresh instance.
//
// Panics if prototype is not a struct, since that is a programming error
// on the caller's side, not a data error.
func NewStructSchema(prototype any) *StructSchema {
	typ := reflect.TypeOf(prototype)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: prototype must be a struct, got %T", prototype))
	}

	s := &StructSchema{
		typ:       typ,
		fieldKeys: make(map[string]string),
	}
	walkEnvFields(reflect.New(typ).Elem(), "", func(fieldName, key string, _ reflect.Value) {
		s.keys = append(s.keys, key)
		if _, taken := s.fieldKeys[fieldName]; !taken {
			s.fieldKeys[fieldName] = key
		}
	})

	return s
}

// RequireAll marks every field without an explicit default as required,
// mirroring env.Options.RequiredIfNoDef. Returns the receiver for chaining.
func (s *StructSchema) RequireAll() *StructSchema {
	s.requireAll = true
	return s
}

// Keys implements Schema.
func (s *StructSchema) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Decode implements Schema. Only keys present in raw participate; absent
// keys are left to defaults or reported as missing, never read as "".
// The returned map holds the typed field values keyed by their env names;
// fields that received neither a value nor a default are omitted.
func (s *StructSchema) Decode(raw source.RawEnvironment) (map[string]any, *Failure) {
	target, set, failure := s.parse(raw)
	if failure != nil {
		return nil, failure
	}

	decoded := make(map[string]any, len(set))
	walkEnvFields(reflect.ValueOf(target).Elem(), "", func(_, key string, value reflect.Value) {
		if _, ok := set[key]; ok {
			decoded[key] = value.Interface()
		}
	})

	return decoded, nil
}

// DecodeTyped decodes raw into a fresh instance of the prototype struct and
// returns a pointer to it, for callers that want the struct itself rather
// than the flat view.
func (s *StructSchema) DecodeTyped(raw source.RawEnvironment) (any, *Failure) {
	target, _, failure := s.parse(raw)
	return target, failure
}

func (s *StructSchema) parse(raw source.RawEnvironment) (any, map[string]struct{}, *Failure) {
	target := reflect.New(s.typ).Interface()
	set := make(map[string]struct{}, len(s.keys))

	err := env.ParseWithOptions(target, env.Options{
		Environment:     map[string]string(raw),
		RequiredIfNoDef: s.requireAll,
		OnSet: func(key string, _ any, _ bool) {
			set[key] = struct{}{}
		},
	})
	if err != nil {
		return nil, nil, s.failureFrom(err)
	}

	return target, set, nil
}

// failureFrom translates caarlos0/env errors into the Failure taxonomy.
// env.Parse aggregates all per-field errors, which maps onto a single And
// node over one leaf per failed field.
func (s *StructSchema) failureFrom(err error) *Failure {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return s.classify(err)
	}

	leaves := make([]*Failure, 0, len(agg.Errors))
	for _, cause := range agg.Errors {
		leaves = append(leaves, s.classify(cause))
	}
	return And(leaves...)
}

func (s *StructSchema) classify(err error) *Failure {
	var (
		notSet   env.EnvVarIsNotSetError
		empty    env.EmptyEnvVarError
		parse    env.ParseError
		noParser env.NoParserError
		noTag    env.NoSupportedTagOptionError
		loadFile env.LoadFileContentError
	)

	switch {
	case errors.As(err, &notSet):
		return Missing([]string{notSet.Key}, "required but not provided")
	case errors.As(err, &empty):
		return Invalid([]string{empty.Key}, "required not to be empty")
	case errors.As(err, &parse):
		return Invalid([]string{s.keyFor(parse.Name)}, parse.Err.Error())
	case errors.As(err, &noParser):
		return Unsupported([]string{s.keyFor(noParser.Name)}, err.Error())
	case errors.As(err, &noTag):
		return Unsupported(nil, err.Error())
	case errors.As(err, &loadFile):
		return Unavailable([]string{loadFile.Key}, err.Error())
	default:
		return Invalid(nil, err.Error())
	}
}

// keyFor maps a struct field name back to its env key. env reports parse
// errors by field name; the report should speak in environment keys.
func (s *StructSchema) keyFor(fieldName string) string {
	if key, ok := s.fieldKeys[fieldName]; ok {
		return key
	}
	return fieldName
}

// walkEnvFields visits every env-tagged scalar field of v in declaration
// order, accumulating envPrefix tags across nested structs.
func walkEnvFields(v reflect.Value, prefix string, visit func(fieldName, key string, value reflect.Value)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if name == "-" {
			continue
		}

		value := v.Field(i)
		fieldType := field.Type
		if fieldType.Kind() == reflect.Pointer {
			if value.IsNil() {
				if name == "" && fieldType.Elem().Kind() != reflect.Struct {
					continue
				}
				value = reflect.New(fieldType.Elem()).Elem()
			} else {
				value = value.Elem()
			}
			fieldType = fieldType.Elem()
		}

		if name == "" && fieldType.Kind() == reflect.Struct {
			walkEnvFields(value, prefix+field.Tag.Get("envPrefix"), visit)
			continue
		}
		if name == "" {
			continue
		}

		visit(field.Name, prefix+name, value)
	}
}
