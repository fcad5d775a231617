// Package cells selects a pattern family for a fingerprint and fills the icon
// grid with mirrored shapes.
//
// The renderer walks the left half of the grid row-major, fills a cell only
// when its fingerprint is even, and emits each non-center shape together with
// its horizontal mirror so the right half of the grid is always a reflection
// of the left. The same inputs always yield the same element list, including
// ordering.
package cells
