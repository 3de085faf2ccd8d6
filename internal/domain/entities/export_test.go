package entities

// ResolveToken exports resolveToken for testing.
var ResolveToken = resolveToken //nolint:gochecknoglobals // test export

// CanonicalVersion exports canonicalVersion for testing.
var CanonicalVersion = canonicalVersion //nolint:gochecknoglobals // test export
