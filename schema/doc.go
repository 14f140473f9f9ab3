// Package schema turns a raw environment into a typed configuration value,
// or into a structured Failure tree that the validate package can classify.
//
// The Schema interface is a pure decode capability: it never reads the
// process environment itself and never panics on bad input. Two
// implementations ship with the package:
//   - StructSchema decodes into a caller-supplied tagged struct using
//     caarlos0/env, so existing env-tagged configuration structs work as-is.
//   - FieldSchema is a declarative field list with per-field parsing and
//     go-playground/validator rules, for callers without a config struct.
//
// Failure trees are tagged unions with two combinators (And, Or) and four
// leaf causes (missing, invalid, source unavailable, unsupported). Every
// leaf carries a field path and a message; traversal visits every leaf
// exactly once.
package schema
