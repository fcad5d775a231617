// Package hash derives fingerprint chains from seed strings.
//
// Contents
//
//   - A fast, non-cryptographic 32-bit string hash (Sum) with the classic
//     h*31+unit accumulator over UTF-16 code units
//   - Ordered fingerprint chains where each link seeds the next (Chain)
//
// # Notes
//
// The accumulator wraps in two's complement at every step and the final value
// is the absolute value, clamped at math.MaxInt32 for the one input that
// would otherwise overflow. Identical seeds always yield identical chains on
// every platform; longer chains are prefix-stable with shorter ones.
package hash
