// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partition

import "strings"

// Result holds the two disjoint views of validated configuration. Both
// maps are copied on construction and must be treated as frozen afterwards;
// the package never hands out a map it will later write to.
type Result struct {
	server map[string]any
	client map[string]any
}

// NewResult copies both subsets into a frozen Result.
func NewResult(server, client map[string]any) Result {
	return Result{
		server: copyValues(server),
		client: copyValues(client),
	}
}

// Split partitions decoded configuration into server and client candidate
// subsets. With a non-empty client prefix, any key carrying the prefix is
// a client candidate and everything else a server candidate; with an empty
// prefix, membership in the declared client-key list decides instead.
func Split(decoded map[string]any, meta Meta) Result {
	server := make(map[string]any)
	client := make(map[string]any)

	for key, value := range decoded {
		isClient := meta.isClientKey(key)
		if meta.ClientPrefix != "" {
			isClient = strings.HasPrefix(key, meta.ClientPrefix)
		}
		if isClient {
			client[key] = value
			continue
		}
		server[key] = value
	}

	return Result{server: server, client: client}
}

// Server returns the server-only subset. The map is frozen; callers must
// not mutate it.
func (r Result) Server() map[string]any { return r.server }

// Client returns the client-safe subset. The map is frozen; callers must
// not mutate it.
func (r Result) Client() map[string]any { return r.client }

// Subset returns the view matching mode.
func (r Result) Subset(mode Mode) map[string]any {
	if mode == ModeClient {
		return r.client
	}
	return r.server
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
