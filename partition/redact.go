// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package partition

import "strings"

// redactedValue replaces every non-client-safe value in logging output.
const redactedValue = "[REDACTED]"

// Redacted returns a copy of raw that is safe to log: values of keys that
// are not client-safe under meta are masked. Keys themselves are kept so
// operators can still see what was provided.
func Redacted(raw map[string]string, meta Meta) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		if isClientSafe(key, meta) {
			out[key] = value
			continue
		}
		out[key] = redactedValue
	}
	return out
}

func isClientSafe(key string, meta Meta) bool {
	if meta.ClientPrefix != "" {
		return strings.HasPrefix(key, meta.ClientPrefix)
	}
	return meta.isClientKey(key)
}
