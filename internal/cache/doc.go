// Package cache provides a bounded in-memory memo for rendered icons.
//
// Composition is pure and cheap, but callers on hot paths (for example a
// server re-serving the same avatars) are expected to memoize by
// (seed, pixel size, circular) rather than recompute. The memo evicts its
// oldest entry once full and is safe for concurrent use.
package cache
