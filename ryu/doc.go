// Package ryu formats binary floating point values as their shortest
// round-tripping decimal digits using only fixed width integer arithmetic.
//
// See Ulf Adams, "Ryū: Fast Float-to-String Conversion"
// (doi:10.1145/3192366.3192369).
//
// The value and the two midpoints to its neighbours are scaled to integers
// by a single 128-bit multiplication with a power of ten:
//
//  (lower, central, upper) * 2^e2 * 10^q
//
// Trailing digits are then removed while the interval still contains a
// shorter number, and the remaining central value is rounded. The output is
// identical to the exact big integer generator in package dtoa, which the
// tests use as an oracle.
package ryu
