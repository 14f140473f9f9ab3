// Package partition splits validated configuration into disjoint server
// and client subsets and enforces that neither subset leaks keys belonging
// to the other.
//
// The policy is declared by a Meta value: the server-only key list, the
// client-safe key list, and the client-key naming prefix. Enforcement is
// default-deny — a key that is declared nowhere is rejected, not silently
// allowed — and violations are reported deterministically (deduplicated,
// lexicographically sorted) so error output stays diffable.
package partition
