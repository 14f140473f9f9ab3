// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partition

import (
	"fmt"
	"sort"
	"strings"
)

// EnforceOptions parameterizes a single enforcement pass.
type EnforceOptions struct {
	// Mode selects which subset is checked and which rule set applies.
	Mode Mode

	// Meta is the base policy, normally the one computed at schema
	// construction time.
	Meta Meta

	// MetaOverride optionally patches Meta for this call only.
	MetaOverride *MetaPatch
}

// Violation reports keys found in a subset where the policy forbids them.
// It is a configuration-authoring bug rather than a data bug, so it is
// always returned, never escalated.
type Violation struct {
	// Mode is the mode under which enforcement ran.
	Mode Mode

	// Keys are the offending keys, deduplicated and sorted.
	Keys []string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s mode forbids these keys: %s", titleMode(v.Mode), strings.Join(v.Keys, ", "))
}

// Enforce checks the subset selected by opts.Mode against the effective
// policy (opts.Meta patched by opts.MetaOverride) and returns the result
// unchanged when it is clean.
//
// Server mode forbids a server-subset key when it is declared client-safe,
// when it is not declared server-only at all, or when a non-empty client
// prefix matches it. Client mode forbids a client-subset key when it is
// not declared client-safe or when a non-empty client prefix does not
// match it. An empty client prefix disables both prefix checks. An empty
// subset always passes.
func Enforce(result Result, opts EnforceOptions) (Result, error) {
	meta := opts.Meta.Apply(opts.MetaOverride)

	violating := make(map[string]struct{})
	switch opts.Mode {
	case ModeClient:
		for key := range result.client {
			if !meta.isClientKey(key) {
				violating[key] = struct{}{}
				continue
			}
			if meta.ClientPrefix != "" && !strings.HasPrefix(key, meta.ClientPrefix) {
				violating[key] = struct{}{}
			}
		}
	default:
		for key := range result.server {
			if meta.isClientKey(key) || !meta.isServerKey(key) {
				violating[key] = struct{}{}
				continue
			}
			if meta.ClientPrefix != "" && strings.HasPrefix(key, meta.ClientPrefix) {
				violating[key] = struct{}{}
			}
		}
	}

	if len(violating) > 0 {
		keys := make([]string, 0, len(violating))
		for key := range violating {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return Result{}, &Violation{Mode: opts.Mode, Keys: keys}
	}

	return result, nil
}

func titleMode(mode Mode) string {
	s := string(mode)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
