// Package strtod converts decimal and hexadecimal text to correctly rounded
// binary floating point values.
//
// Decimal Text
//
// Text is first scanned into a Literal:
//
//  value = (-1)^Negative * 0.d1 d2 ... dn * 10^Exponent
//
// Convert then produces the double nearest to that value. Short literals with
// small exponents are handled by a single IEEE multiplication or division,
// which is correctly rounded when both operands are exact. Everything else
// starts from an estimate and is corrected with exact integer arithmetic:
//
//  D = digits * 2^d2 * 5^d5        the literal
//  B = m * 2^e                     the candidate double
//  H = 2^(e-1)                     half the gap to the neighbour
//
// All three are scaled by the smallest shared powers of two and five so they
// are integers. |B-D| < H accepts the candidate, |B-D| == H is a tie and goes
// to the even significand, and anything else moves the candidate one ULP toward
// D. At a power of two the gap below is half the gap above.
//
// Rounding Records
//
// Each conversion also reports a Rounding:
//
//  Direction  where the exact value lies compared to the result
//  Round      the first discarded bit
//  Sticky     whether any later discarded bit was set
//
// Narrow uses the direction to convert a double to float32 without double
// rounding: a double that lands exactly on a float32 midpoint is moved one ULP
// toward the exact value before the final conversion.
//
// Hexadecimal Text
//
// ParseHex reads the C99 style form with a mandatory binary exponent:
//
//  [+-] 0x 1f.8 p-3 [f|F|d|D]
//
// Up to 15 hex digits are kept, the rest only contribute to the sticky bit, and
// rounding is resolved with a round to nearest even table.
package strtod
