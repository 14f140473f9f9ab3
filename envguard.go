// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envguard validates raw key-value configuration against a declared
// schema, aggregates every failure into a categorized report, and partitions
// the validated configuration into disjoint server and client subsets under
// a naming-prefix policy.
//
// The pipeline runs once per Load call: the source yields a raw
// environment, the schema decodes it (failures are classified into a
// report), the decoded value is split into server and client candidates,
// and the partition policy is enforced for the requested mode. It holds no
// cache and no mutable state, so concurrent Load calls are independent and
// two calls over identical inputs produce structurally equal results.
//
// Failures form a closed set of three kinds, discriminated with errors.As:
// *source.Error (the adapter failed), *validate.Error (decoding failed,
// carrying the full missing/invalid report), and *partition.Violation (a
// subset contains keys the policy forbids).
package envguard

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-guard/logger"
	"github.com/MKhiriev/go-env-guard/partition"
	"github.com/MKhiriev/go-env-guard/source"
	"github.com/MKhiriev/go-env-guard/validate"
)

// ErrNoSchema is returned by New when no schema is configured.
var ErrNoSchema = errors.New("a schema is required")

// Result is one pipeline run's outcome. It is immutable once returned and
// owned by the caller.
type Result struct {
	// Mode is the mode the run executed under.
	Mode partition.Mode

	// Raw is the environment the source yielded.
	Raw source.RawEnvironment

	// Validation holds both frozen subsets of the validated configuration.
	Validation partition.Result

	// Meta is the effective policy the run enforced.
	Meta partition.Meta

	// Env is the subset matching Mode; it aliases Validation's server or
	// client view.
	Env map[string]any
}

// Loader sequences the validation-and-policy pipeline. Construct it once
// with New; it is immutable afterwards and safe for concurrent use.
type Loader struct {
	opts Options
	base partition.Meta
}

// New builds a Loader from service-level options layered over the built-in
// defaults. The base partition policy is computed here, once, from the
// schema's key list and the configured client prefix; later calls only
// patch it.
func New(opts Options) (*Loader, error) {
	merged := opts
	if err := mergeOptions(&merged, defaultOptions()); err != nil {
		return nil, err
	}
	if merged.Schema == nil {
		return nil, ErrNoSchema
	}

	return &Loader{
		opts: merged,
		base: partition.MetaFromKeys(merged.Schema.Keys(), merged.ClientPrefix),
	}, nil
}

// Load runs the full pipeline: load the raw environment, decode it against
// the schema, split the decoded value into server and client candidates,
// and enforce the partition policy for the effective mode.
//
// Per-call overrides take priority over the Loader's own options, which
// take priority over the defaults; merging is per-field. The source load is
// the only suspending step and honors ctx; decoding and enforcement are
// pure computations.
//
// In FailFatal mode a validation failure is logged and then escalated as a
// panic carrying the same *validate.Error, so operators see the identical
// report either way.
func (l *Loader) Load(ctx context.Context, overrides ...Options) (*Result, error) {
	eff := Options{}
	if err := mergeOptions(&eff, overrides...); err != nil {
		return nil, err
	}
	if err := mergeOptions(&eff, l.opts); err != nil {
		return nil, err
	}
	meta := l.effectiveMeta(overrides)

	raw, err := eff.Source.Load(ctx)
	if err != nil {
		var srcErr *source.Error
		if !errors.As(err, &srcErr) {
			err = &source.Error{Source: eff.Source.Name(), Err: err}
		}
		eff.Logger.Error().Err(err).Str("source", eff.Source.Name()).Msg("raw environment load failed")
		return nil, err
	}
	eff.Logger.Debug().
		Str("source", eff.Source.Name()).
		Int("keys", len(raw)).
		Msg("raw environment loaded")

	decoded, failure := eff.Schema.Decode(raw)
	if failure != nil {
		verr := validate.Classify(failure).Err()
		if verr == nil {
			verr = &validate.Error{Report: validate.FormatTable(nil, nil)}
		}
		return nil, escalate(eff.Logger, eff.OnFailure, verr)
	}

	split := partition.Split(decoded, meta)
	enforced, err := partition.Enforce(split, partition.EnforceOptions{
		Mode: eff.Mode,
		Meta: meta,
	})
	if err != nil {
		eff.Logger.Error().Err(err).Str("mode", string(eff.Mode)).Msg("partition policy violated")
		return nil, err
	}
	eff.Logger.Debug().
		Str("mode", string(eff.Mode)).
		Int("server_keys", len(enforced.Server())).
		Int("client_keys", len(enforced.Client())).
		Msg("environment validated and partitioned")

	return &Result{
		Mode:       eff.Mode,
		Raw:        raw,
		Validation: enforced,
		Meta:       meta,
		Env:        enforced.Subset(eff.Mode),
	}, nil
}

// MustLoad is Load for program startup paths: any failure panics.
func (l *Loader) MustLoad(ctx context.Context, overrides ...Options) *Result {
	result, err := l.Load(ctx, overrides...)
	if err != nil {
		panic(fmt.Errorf("envguard: %w", err))
	}
	return result
}

// Validate decodes raw against the Loader's schema and splits it into both
// subsets without enforcing either mode. On decode failure it returns the
// classified *validate.Error.
func (l *Loader) Validate(raw source.RawEnvironment, overrides ...Options) (partition.Result, error) {
	meta := l.effectiveMeta(overrides)

	decoded, failure := l.opts.Schema.Decode(raw)
	if failure != nil {
		verr := validate.Classify(failure).Err()
		if verr == nil {
			verr = &validate.Error{Report: validate.FormatTable(nil, nil)}
		}
		return partition.Result{}, verr
	}

	return partition.Split(decoded, meta), nil
}

// effectiveMeta layers the service-level patch and then any per-call
// patches onto the base policy. Field-by-field: a patch supplying only the
// prefix leaves the key lists untouched.
func (l *Loader) effectiveMeta(overrides []Options) partition.Meta {
	meta := l.base.Apply(l.opts.Meta)
	for i := len(overrides) - 1; i >= 0; i-- {
		meta = meta.Apply(overrides[i].Meta)
	}
	return meta
}

// escalate applies the failure-mode knob to a validation error. The report
// is logged in both modes so observability output stays identical.
func escalate(log *logger.Logger, mode FailureMode, verr *validate.Error) error {
	log.Error().
		Strs("missing", verr.Missing).
		Int("invalid", len(verr.Invalid)).
		Msg(verr.Error())

	if mode == FailFatal {
		panic(verr)
	}
	return verr
}
