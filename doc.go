// Package floatdec converts IEEE-754 binary floating point values to and from
// decimal text.
//
// Formatting produces the shortest digits that read back to the same value,
// choosing the candidate closest to the value when several are equally short:
//
//  | Value        | Text                    |
//  |--------------|-------------------------|
//  | 1            | 1.0                     |
//  | 0.001        | 0.001                   |
//  | 0.0001       | 1.0E-4                  |
//  | 9999999      | 9999999.0               |
//  | 1e7          | 1.0E7                   |
//  | -0           | -0.0                    |
//  | +Inf, -Inf   | Infinity, -Infinity     |
//  | NaN          | NaN                     |
//
// Fixed notation is used when the exponent of the leading digit is in
// [-3, 7), scientific notation otherwise.
//
// Parsing accepts the same forms, optional surrounding white space, an
// optional f, F, d or D suffix and hexadecimal floats such as 0x1.8p3. The
// result is the nearest value, ties to even. float32 results are rounded once,
// directly from the text, never through an intermediate double.
//
// Digits come from package ryu. ExactDoubleDigits and ExactFloatDigits use
// the big integer generator in package dtoa instead, which is slower but
// simple enough to serve as a reference.
package floatdec
