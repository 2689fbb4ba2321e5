package floatdec_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/floatdec"
	"github.com/calebcase/oops"
)

func TestFormatDouble(t *testing.T) {
	type TC struct {
		name     string
		value    float64
		expected string
		Mark     error
	}

	tcs := []TC{
		{
			name:     "one",
			value:    1,
			expected: "1.0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "ten million",
			value:    1e7,
			expected: "1.0E7",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "below ten million",
			value:    1e7 - 1,
			expected: "9999999.0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "thousandth",
			value:    0.001,
			expected: "0.001",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "ten thousandth",
			value:    0.0001,
			expected: "1.0E-4",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative fraction",
			value:    -123.456,
			expected: "-123.456",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "zero",
			value:    0,
			expected: "0.0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative zero",
			value:    math.Copysign(0, -1),
			expected: "-0.0",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "largest",
			value:    math.MaxFloat64,
			expected: "1.7976931348623157E308",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "smallest subnormal",
			value:    math.SmallestNonzeroFloat64,
			expected: "5.0E-324",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "nan",
			value:    math.NaN(),
			expected: "NaN",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "infinity",
			value:    math.Inf(1),
			expected: "Infinity",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative infinity",
			value:    math.Inf(-1),
			expected: "-Infinity",
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, floatdec.FormatDouble(tc.value), tc.Mark)
			require.Equal(t, "v="+tc.expected, string(floatdec.AppendDouble([]byte("v="), tc.value)), tc.Mark)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	type TC struct {
		name     string
		value    float32
		expected string
		Mark     error
	}

	tcs := []TC{
		{
			name:     "tenth",
			value:    0.1,
			expected: "0.1",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "largest",
			value:    math.MaxFloat32,
			expected: "3.4028235E38",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "smallest subnormal",
			value:    math.SmallestNonzeroFloat32,
			expected: "1.0E-45",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "two to the twenty four",
			value:    16777216,
			expected: "1.6777216E7",
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative zero",
			value:    float32(math.Copysign(0, -1)),
			expected: "-0.0",
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, floatdec.FormatFloat(tc.value), tc.Mark)
			require.Equal(t, tc.expected, string(floatdec.AppendFloat(nil, tc.value)), tc.Mark)
		})
	}
}

func TestParseDouble(t *testing.T) {
	type TC struct {
		name     string
		input    string
		expected uint64
		Mark     error
	}

	tcs := []TC{
		{
			name:     "smallest subnormal",
			input:    "4.9E-324",
			expected: 0x0000_0000_0000_0001,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "largest",
			input:    "1.7976931348623157E308",
			expected: 0x7fef_ffff_ffff_ffff,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "hex half",
			input:    "0x1.0p-1",
			expected: 0x3fe0_0000_0000_0000,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "negative infinity",
			input:    "-Infinity",
			expected: 0xfff0_0000_0000_0000,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "suffix",
			input:    "2.5d",
			expected: 0x4004_0000_0000_0000,
			Mark:     oops.New("unexpected"),
		},
		{
			name:     "overflow",
			input:    "-1e309",
			expected: 0xfff0_0000_0000_0000,
			Mark:     oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := floatdec.ParseDouble(tc.input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.expected, math.Float64bits(v), tc.Mark)
		})
	}

	t.Run("nan", func(t *testing.T) {
		v, err := floatdec.ParseDouble("NaN")
		require.NoError(t, err)
		require.True(t, math.IsNaN(v))
	})
}

func TestParseFloat(t *testing.T) {
	v, err := floatdec.ParseFloat("16777217")
	require.NoError(t, err)
	require.Equal(t, float32(16777216), v)

	v, err = floatdec.ParseFloat("3.40282356e38")
	require.NoError(t, err)
	require.Equal(t, float32(math.MaxFloat32), v)

	v, err = floatdec.ParseFloat("1e39")
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(v), 1))

	v, err = floatdec.ParseFloat("-0x1p-149f")
	require.NoError(t, err)
	require.Equal(t, float32(-math.SmallestNonzeroFloat32), v)

	v, err = floatdec.ParseFloat("NaN")
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(v)))
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "1.2.3", "1e", "0x1.8", "1 2", "+"} {
		_, err := floatdec.ParseDouble(input)
		require.Error(t, err, input)
		require.True(t, floatdec.Error.Has(err), input)

		var fe *floatdec.FormatError
		require.True(t, errors.As(err, &fe), input)
		require.Equal(t, input, fe.Input)

		_, err = floatdec.ParseFloat(input)
		require.Error(t, err, input)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	t.Run("float64", func(t *testing.T) {
		for i := 0; i < 20000; i++ {
			v := math.Float64frombits(rng.Uint64())
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}

			s := floatdec.FormatDouble(v)

			got, err := floatdec.ParseDouble(s)
			require.NoError(t, err, s)
			require.Equal(t, math.Float64bits(v), math.Float64bits(got), s)

			// The digits are the shortest ones strconv finds too.
			expected, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err, s)
			require.Equal(t, v, expected, s)
			require.Equal(t, floatdec.DoubleDigits(v).Len(), len(shortest(strconv.FormatFloat(v, 'e', -1, 64))), s)
		}
	})

	t.Run("float32", func(t *testing.T) {
		for i := 0; i < 20000; i++ {
			v := math.Float32frombits(rng.Uint32())
			if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
				continue
			}

			s := floatdec.FormatFloat(v)

			got, err := floatdec.ParseFloat(s)
			require.NoError(t, err, s)
			require.Equal(t, math.Float32bits(v), math.Float32bits(got), s)
		}
	})
}

// shortest returns the significant digits of strconv's 'e' format.
func shortest(s string) string {
	out := make([]byte, 0, len(s))
	for _, c := range []byte(s) {
		if c == 'e' {
			break
		}
		if c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}

	for len(out) > 1 && out[len(out)-1] == '0' {
		out = out[:len(out)-1]
	}

	if len(out) == 1 && out[0] == '0' {
		return ""
	}

	return string(out)
}

func TestDecimalAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(8))

	for i := 0; i < 5000; i++ {
		v := rng.NormFloat64() * math.Pow10(rng.Intn(40)-20)

		s := floatdec.FormatDouble(v)

		d, err := decimal.NewFromString(s)
		require.NoError(t, err, s)
		require.True(t, d.Equal(decimal.NewFromFloat(v)), "%s != %s", d, decimal.NewFromFloat(v))

		f := float32(v)
		s32 := floatdec.FormatFloat(f)

		d32, err := decimal.NewFromString(s32)
		require.NoError(t, err, s32)
		require.True(t, d32.Equal(decimal.NewFromFloat32(f)), "%s != %s", d32, decimal.NewFromFloat32(f))
	}
}

func TestDigits(t *testing.T) {
	values := []float64{1, 0.1, math.Pi, 1e23, math.MaxFloat64, math.SmallestNonzeroFloat64, 0x1p-1022}

	for _, v := range values {
		fast := floatdec.DoubleDigits(v)
		exact := floatdec.ExactDoubleDigits(v)
		require.True(t, fast.Equal(exact), spew.Sdump(fast, exact))
		require.Equal(t, floatdec.FormatDouble(v), floatdec.FormatDigits(fast))

		f := float32(v)
		if math.IsInf(float64(f), 0) {
			continue
		}

		fast32 := floatdec.FloatDigits(f)
		exact32 := floatdec.ExactFloatDigits(f)
		require.True(t, fast32.Equal(exact32), spew.Sdump(fast32, exact32))
		require.Equal(t, floatdec.FormatFloat(f), floatdec.FormatDigits(fast32))
	}

	t.Run("widths", func(t *testing.T) {
		// 0.1 has different shortest digits in each width.
		require.Equal(t, "0.1", floatdec.FormatDouble(0.1))
		require.Equal(t, "0.10000000149011612", floatdec.FormatDouble(float64(float32(0.1))))
		require.Equal(t, "0.1", floatdec.FormatFloat(float32(0.1)))

		require.Equal(t, "1", string(floatdec.FloatDigits(0.1).Digits))
		require.Equal(t, "1", string(floatdec.ExactFloatDigits(0.1).Digits))
		require.Equal(t, "10000000149011612", string(floatdec.DoubleDigits(float64(float32(0.1))).Digits))
		require.Equal(t, "10000000149011612", string(floatdec.ExactDoubleDigits(float64(float32(0.1))).Digits))
	})

	t.Run("deterministic", func(t *testing.T) {
		for _, v := range values {
			require.Equal(t, floatdec.FormatDouble(v), floatdec.FormatDouble(v))
			require.Equal(t, floatdec.ExactDoubleDigits(v), floatdec.ExactDoubleDigits(v))
		}
	})
}
