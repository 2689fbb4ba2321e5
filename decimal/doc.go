// Package decimal provides the decimal significand produced when formatting a
// binary floating point number.
//
// The equation for a decimal number is:
//
//  number = 0.d1 d2 ... dn * 10 ^ exponent
//
// Where d1 through dn are the significant digits, d1 is never zero, and dn is
// never zero. For example:
//
//  1.23      = 0.123 * 10^1   Digits "123", Exponent 1
//  0.001     = 0.1   * 10^-2  Digits "1",   Exponent -2
//  1.0E7     = 0.1   * 10^8   Digits "1",   Exponent 8
//
// Formatting
//
// The canonical text form puts the point after the first digit when the
// leading exponent (Exponent - 1) is outside [-3, 7) and writes the leading
// exponent after an E. Inside the range the value is written out in full. At
// least one digit is always written on each side of the point:
//
//  | Digits | Exponent | Text         |
//  |--------|----------|--------------|
//  | 1      | 1        | 1.0          |
//  | 1      | 8        | 1.0E7        |
//  | 9999999| 7        | 9999999.0    |
//  | 1      | -2       | 0.001        |
//  | 1      | -3       | 1.0E-4       |
//  | 49     | -323     | 4.9E-324     |
//  |--------|----------|--------------|
package decimal
