package hash

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf16"

	"hashicon/internal/domain"
)

// Sum returns the fingerprint of s.
//
// It walks the string by UTF-16 code unit, updating a wrapping 32-bit signed
// accumulator h = h*31 + unit, and returns abs(h).
func Sum(s string) domain.Fingerprint {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return domain.Fingerprint(abs32(h))
}

// abs32 clamps math.MinInt32 to math.MaxInt32 instead of overflowing.
func abs32(h int32) int32 {
	switch {
	case h == math.MinInt32:
		return math.MaxInt32
	case h < 0:
		return -h
	}
	return h
}

// Chain returns count fingerprints derived from seed. The first is the hash
// of seed+"0"; each subsequent link hashes the hex form of the previous link
// concatenated with the decimal index.
//
// count must be at least 1; smaller values fail with ErrInvalidArgument
// rather than being clamped.
func Chain(seed string, count int) ([]domain.Fingerprint, error) {
	if count < 1 {
		return nil, fmt.Errorf("chain length %d: %w", count, domain.ErrInvalidArgument)
	}
	chain := make([]domain.Fingerprint, count)
	chain[0] = Sum(seed + "0")
	for i := 1; i < count; i++ {
		chain[i] = Sum(chain[i-1].Hex() + strconv.Itoa(i))
	}
	return chain, nil
}
