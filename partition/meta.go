// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partition

import (
	"slices"
	"strings"
)

// Mode selects which subset of the partition a caller receives.
type Mode string

const (
	ModeServer Mode = "server"
	ModeClient Mode = "client"
)

// Meta declares the partition policy: which keys are server-only, which
// are client-safe, and the naming prefix that marks client keys. It is
// computed once at schema-construction time and then only patched, never
// rebuilt, per call.
type Meta struct {
	ServerKeys   []string
	ClientKeys   []string
	ClientPrefix string
}

// MetaPatch is a partial override of Meta. Nil fields fall through to the
// base value; ClientPrefix is a pointer so an explicit empty prefix (which
// disables prefix checks) is distinguishable from "no override".
type MetaPatch struct {
	ServerKeys   []string
	ClientKeys   []string
	ClientPrefix *string
}

// MetaFromKeys derives a Meta from a schema's flat key list: keys carrying
// the client prefix become client keys, everything else is server-only.
// With an empty prefix every key is server-only until declared otherwise
// via a patch.
func MetaFromKeys(keys []string, clientPrefix string) Meta {
	meta := Meta{ClientPrefix: clientPrefix}
	for _, key := range keys {
		if clientPrefix != "" && strings.HasPrefix(key, clientPrefix) {
			meta.ClientKeys = append(meta.ClientKeys, key)
			continue
		}
		meta.ServerKeys = append(meta.ServerKeys, key)
	}
	return meta
}

// Apply merges patch onto the base field by field: a set patch field wins,
// an unset one falls back to the base. The receiver is not modified.
func (m Meta) Apply(patch *MetaPatch) Meta {
	if patch == nil {
		return m
	}

	merged := m
	if patch.ServerKeys != nil {
		merged.ServerKeys = patch.ServerKeys
	}
	if patch.ClientKeys != nil {
		merged.ClientKeys = patch.ClientKeys
	}
	if patch.ClientPrefix != nil {
		merged.ClientPrefix = *patch.ClientPrefix
	}
	return merged
}

func (m Meta) isServerKey(key string) bool {
	return slices.Contains(m.ServerKeys, key)
}

func (m Meta) isClientKey(key string) bool {
	return slices.Contains(m.ClientKeys, key)
}
