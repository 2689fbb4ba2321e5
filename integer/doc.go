// Package integer provides the exact unsigned arithmetic used by the float
// conversion algorithms.
//
// Values are bounded by what float64 conversion needs: a decimal literal of at
// most 1100 significant digits scaled by powers of two and five near the ends
// of the exponent range, roughly 4000 bits. Within that bound every operation
// is exact.
//
// Layout
//
// An Unsigned is a slice of 32-bit words, least significant first, with no
// leading zero words:
//
//  value = words[0] + words[1]*2^32 + ... + words[n-1]*2^(32*(n-1))
//
// Zero has no words.
//
// Digit Generation
//
// QuoRemDigit produces one decimal digit of B/S given B < 10*S. With S
// normalized (the high bit of its top word set) the estimate from the leading
// words is at most one too large, so one compare and subtract fixes it.
//
// Powers of Five
//
// Pow5 serves 5^p from a process wide cache. Missing entries are built by
// halving the exponent,
//
//  5^p = 5^⌊p/2⌋ * 5^⌈p/2⌉
//
// while holding a single mutex. Cached values are never modified afterwards.
package integer
