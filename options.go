// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envguard

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-env-guard/logger"
	"github.com/MKhiriev/go-env-guard/partition"
	"github.com/MKhiriev/go-env-guard/schema"
	"github.com/MKhiriev/go-env-guard/source"
)

// FailureMode selects what the pipeline does with a validation failure.
type FailureMode string

const (
	// FailRecover returns the *validate.Error to the caller. The default.
	FailRecover FailureMode = "recover"

	// FailFatal logs the report and panics with the same *validate.Error,
	// for deployments where starting with bad configuration must never
	// proceed.
	FailFatal FailureMode = "fatal"
)

// Options configures a Loader or a single Load call. Zero-valued fields
// fall through to the next configuration layer: per-call options override
// service-level options, which override the built-in defaults (process-env
// source, server mode, recoverable failures).
//
// Merging is per-field, never a full replace, so a call can override just
// the mode without resupplying the schema.
type Options struct {
	// Source supplies the raw environment. Default: source.NewEnvSource().
	Source source.Source

	// Schema is the decode capability. Required at construction time.
	Schema schema.Schema

	// ClientPrefix marks client-safe keys by name when the base policy is
	// derived from the schema's key list.
	ClientPrefix string

	// Meta patches the derived policy field by field.
	Meta *partition.MetaPatch

	// Mode selects the subset Load returns. Default: partition.ModeServer.
	Mode partition.Mode

	// OnFailure selects validation failure handling. Default: FailRecover.
	OnFailure FailureMode

	// Logger receives stage-transition and failure logs.
	// Default: logger.Nop().
	Logger *logger.Logger
}

func defaultOptions() Options {
	return Options{
		Source:    source.NewEnvSource(),
		Mode:      partition.ModeServer,
		OnFailure: FailRecover,
		Logger:    logger.Nop(),
	}
}

// mergeOptions layers each opts entry onto dst, earliest entry winning,
// using mergo the same way the configuration builder merges its sources.
//
// Meta patches are excluded here: mergo would deep-merge through the shared
// pointer and mutate the caller's patch. Loader.effectiveMeta chains them
// onto the base policy instead.
func mergeOptions(dst *Options, opts ...Options) error {
	for _, o := range opts {
		o.Meta = nil
		if err := mergo.Merge(dst, o); err != nil {
			return fmt.Errorf("error merging options: %w", err)
		}
	}
	return nil
}
