// Package ieee splits IEEE-754 binary32 and binary64 values into sign,
// exponent and significand, and puts them back together.
//
//  | sign | exponent (biased) | mantissa        |
//  |------|-------------------|-----------------|
//  | 1    | 8                 | 23              | binary32, bias 127
//  | 1    | 11                | 52              | binary64, bias 1023
//
// A biased exponent of zero marks zero and subnormals (no hidden bit, minimum
// normal exponent). All ones marks infinity (zero mantissa) and NaN.
package ieee
