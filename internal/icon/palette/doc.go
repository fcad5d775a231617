// Package palette maps fingerprints to HSL colors.
//
// Modulo-bucketing spreads any fingerprint across a broad but bounded color
// range: foreground colors stay between 50-89% saturation and 45-64%
// lightness, shades between 40-69% saturation and either a dark (25-39%) or
// light (65-84%) lightness band. Every non-negative fingerprint maps to a
// valid color; there are no failure modes.
package palette
