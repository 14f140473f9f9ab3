// Package source provides pluggable raw-environment adapters for the
// go-env-guard pipeline.
//
// A Source yields an immutable RawEnvironment: a flat mapping from key to
// string value in which absence is expressed by the key not being present,
// never by an empty string. Implementations cover the process environment
// (EnvSource), in-memory records (MapSource), dotenv files (DotenvSource),
// and flat YAML files (YAMLSource).
//
// Sources must not mutate global state beyond reading it. Every failure is
// returned as an *Error carrying the adapter name and the underlying cause,
// so callers can discriminate source failures from validation failures with
// errors.As.
package source
