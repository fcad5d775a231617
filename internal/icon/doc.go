// Package icon composes complete hashicon image descriptions.
//
// Compose runs the whole pipeline for one seed: fingerprint chain, palette
// and background derivation, pattern selection, mirrored cell rendering, and
// the optional circular clip with its border ring. The result is a pure
// value; callers that render on a hot path are expected to memoize it
// externally (see internal/services/render).
package icon
