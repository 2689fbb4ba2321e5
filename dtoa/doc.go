// Package dtoa generates the shortest round-tripping decimal digits of a
// binary floating point value with exact big integer arithmetic.
//
// This is the free-format algorithm of Steele and White ("How to Print
// Floating-Point Numbers Accurately") in the form given by Dragon4. The value
// and its rounding interval are expressed as:
//
//  value = B/S * 10^k
//  M+    = half the gap to the next larger value, scaled like B
//  M-    = half the gap to the next smaller value, scaled like B
//
// Each step multiplies B, M+ and M- by ten and takes the quotient digit of
// B/S. Generation stops as soon as the remainder is within M- of zero (low)
// or within M+ of S (high). When both hold the digit is rounded toward the
// nearer end, and ties go to the even digit.
//
// When 10*S fits in 63 bits the loop runs on uint64. Otherwise it runs on
// integer.Unsigned values.
package dtoa
