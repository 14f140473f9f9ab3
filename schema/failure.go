// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import "strings"

// FailureKind discriminates the nodes of a Failure tree.
type FailureKind uint8

const (
	// KindAnd is a combinator: all children failed independently.
	KindAnd FailureKind = iota
	// KindOr is a combinator: alternative branches (e.g. union variants)
	// all failed.
	KindOr
	// KindMissing is a leaf: a required key was absent from the input.
	KindMissing
	// KindInvalid is a leaf: a present value failed type or rule checks.
	KindInvalid
	// KindUnavailable is a leaf: the backing data source was unreachable.
	KindUnavailable
	// KindUnsupported is a leaf: the schema asked for something the decoder
	// cannot express (no parser for the target type, unknown tag option).
	KindUnsupported
)

// String returns the lowercase tag name of the kind.
func (k FailureKind) String() string {
	switch k {
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindMissing:
		return "missing"
	case KindInvalid:
		return "invalid"
	case KindUnavailable:
		return "unavailable"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Failure is one node of a decode-failure tree. Combinator nodes carry only
// Causes; leaf nodes carry a Path and a Message and never carry Causes.
//
// Invariants: every leaf has a non-empty Message; Path may be empty only
// for a failure that concerns the whole input (rendered as "<root>").
type Failure struct {
	Kind    FailureKind
	Path    []string
	Message string
	Causes  []*Failure
}

// And builds a conjunction node. With a single cause it returns that cause
// directly, so decoders can aggregate without producing useless wrappers.
func And(causes ...*Failure) *Failure {
	if len(causes) == 1 {
		return causes[0]
	}
	return &Failure{Kind: KindAnd, Causes: causes}
}

// Or builds a disjunction node over alternative branches.
func Or(causes ...*Failure) *Failure {
	if len(causes) == 1 {
		return causes[0]
	}
	return &Failure{Kind: KindOr, Causes: causes}
}

// Missing builds a missing-data leaf for the given field path.
func Missing(path []string, message string) *Failure {
	return &Failure{Kind: KindMissing, Path: path, Message: message}
}

// Invalid builds an invalid-data leaf for the given field path.
func Invalid(path []string, message string) *Failure {
	return &Failure{Kind: KindInvalid, Path: path, Message: message}
}

// Unavailable builds a source-unavailable leaf.
func Unavailable(path []string, message string) *Failure {
	return &Failure{Kind: KindUnavailable, Path: path, Message: message}
}

// Unsupported builds an unsupported leaf.
func Unsupported(path []string, message string) *Failure {
	return &Failure{Kind: KindUnsupported, Path: path, Message: message}
}

// IsLeaf reports whether the node is a leaf cause rather than a combinator.
func (f *Failure) IsLeaf() bool {
	return f.Kind != KindAnd && f.Kind != KindOr
}

// Key renders the node's path as a dotted key, or "<root>" when the path
// is empty.
func (f *Failure) Key() string {
	if len(f.Path) == 0 {
		return "<root>"
	}
	return strings.Join(f.Path, ".")
}

// Walk performs a depth-first traversal and calls visit for every leaf in
// encounter order. Combinator nodes are expanded into their children and
// never passed to visit, so each leaf is visited exactly once.
func (f *Failure) Walk(visit func(leaf *Failure)) {
	if f == nil {
		return
	}
	if f.IsLeaf() {
		visit(f)
		return
	}
	for _, cause := range f.Causes {
		cause.Walk(visit)
	}
}

// Error implements the error interface so a *Failure can travel through
// error-returning call chains; the validate package renders the readable
// form.
func (f *Failure) Error() string {
	if f.IsLeaf() {
		return f.Kind.String() + " " + f.Key() + ": " + f.Message
	}

	parts := make([]string, 0, len(f.Causes))
	for _, cause := range f.Causes {
		parts = append(parts, cause.Error())
	}
	return strings.Join(parts, "; ")
}
