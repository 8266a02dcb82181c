package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boundaryOperands = []int32{
	1, -1, 2, -2, 3, -7, 12, -18, 1000, 46340, -46341,
	MaxInt, MaxInt - 1, MinInt, MinInt + 1,
}

func TestNormalizedReducesAndMovesSign(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Fraction
	}{
		{New(6, -4), New(-3, 2)},
		{New(-6, -4), New(3, 2)},
		{New(0, -5), New(0, 1)},
		{New(10, 5), New(2, 1)},
		{New(MinInt, 2), New(-1073741824, 1)},
		{New(MinInt, -2), New(MaxInt, 2)},
		{New(MinInt, MinInt), New(1, 1)},
		{New(7, 0), New(1, 0)},
		{New(0, 0), New(0, 0)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalized(), "Normalized(%v)", tt.in)
	}
}

func TestNormalizedIsCanonical(t *testing.T) {
	for _, a := range boundaryOperands {
		for _, b := range boundaryOperands {
			got := New(a, b).Normalized()
			require.Greater(t, got.Denominator, int32(0), "New(%d, %d).Normalized() = %v", a, b, got)
			require.Equal(t, uint32(1), gcd(magnitude(got.Numerator), magnitude(got.Denominator)),
				"New(%d, %d).Normalized() = %v not coprime", a, b, got)
		}
	}
}

func TestMulByInverseIsOne(t *testing.T) {
	for _, a := range boundaryOperands {
		for _, b := range boundaryOperands {
			got := New(a, b).Mul(New(b, a))
			require.Equal(t, New(1, 1), got, "(%d/%d)*(%d/%d)", a, b, b, a)
		}
	}
}

func TestSaturatingPrimitives(t *testing.T) {
	assert.Equal(t, MaxInt, SatAdd(MaxInt, 1))
	assert.Equal(t, MinInt, SatAdd(MinInt, -1))
	assert.Equal(t, MinInt, SatSub(MinInt, 1))
	assert.Equal(t, MaxInt, SatSub(MaxInt, -1))
	assert.Equal(t, MaxInt, SatMul(MaxInt, 2))
	assert.Equal(t, MinInt, SatMul(MaxInt, -2))
	assert.Equal(t, MaxInt, SatMul(MinInt, -1))
	assert.Equal(t, MaxInt, SatNeg(MinInt))
	assert.Equal(t, -MaxInt, SatNeg(MaxInt))
	assert.Equal(t, int32(-6), SatMul(2, -3))
}

func TestArithmeticAtBoundsNeverPanics(t *testing.T) {
	for _, a := range boundaryOperands {
		for _, b := range boundaryOperands {
			x, y := New(a, 1), New(b, 1)
			require.NotPanics(t, func() {
				_ = x.Add(y)
				_ = x.Sub(y)
				_ = x.Mul(y)
				_ = x.AddInt(b)
				_ = x.SubInt(b)
				_ = x.MulInt(b)
				_ = x.Abs()
				_ = x.Neg()
				_ = x.Cmp(y)
			}, "a=%d b=%d", a, b)
		}
	}

	assert.Equal(t, New(MaxInt, 1), New(MaxInt, 1).Add(New(MaxInt, 1)))
	assert.Equal(t, New(MinInt, 1), New(MinInt, 1).Sub(New(MaxInt, 1)))
	assert.Equal(t, New(MaxInt, 1), New(MinInt, 1).Mul(New(MinInt, 1)))
	assert.Equal(t, New(MinInt, 1), New(MaxInt, 1).MulInt(-3))
}

func TestArithmetic(t *testing.T) {
	half, third, quarter := New(1, 2), New(1, 3), New(1, 4)

	assert.Equal(t, New(5, 6), half.Add(third))
	assert.Equal(t, New(-1, 4), half.Sub(New(3, 4)))
	assert.Equal(t, New(3, 2), New(2, 3).Mul(New(9, 4)))
	assert.Equal(t, New(2, 3), half.Div(New(3, 4)))
	assert.Equal(t, New(5, 4), quarter.AddInt(1))
	assert.Equal(t, New(-3, 4), quarter.SubInt(1))
	assert.Equal(t, New(3, 2), half.MulInt(3))
	assert.Equal(t, New(1, 4), New(3, 4).DivInt(3))
	assert.Equal(t, New(-1, 2), half.Neg())
}

func TestNonPositiveDivisorPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { Zero().Reciprocal() })
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { New(-2, 3).Reciprocal() })
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { FromInt(1).Div(Zero()) })
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { FromInt(1).Div(New(-1, 2)) })
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { FromInt(1).DivInt(0) })
	assert.PanicsWithValue(t, ErrNonPositiveDivisor, func() { FromInt(1).DivInt(-4) })

	assert.Equal(t, New(3, 2), New(2, 3).Reciprocal())
}

func TestCompare(t *testing.T) {
	assert.True(t, New(1, 3).Less(New(1, 2)))
	assert.True(t, New(-1, 2).Less(New(1, 3)))
	assert.True(t, New(2, 4).Equal(New(1, 2)))
	assert.True(t, New(2, 4).LessEq(New(1, 2)))
	assert.False(t, New(1, 2).Less(New(2, 4)))
	assert.Equal(t, New(3, 4), New(1, 2).Max(New(3, 4)))
	assert.Equal(t, New(1, 2), New(1, 2).Min(New(3, 4)))
	assert.True(t, New(0, 7).IsZero())
	assert.True(t, New(1, 1000).IsPositive())
	assert.False(t, New(-1, 1000).IsPositive())

	// Both cross products saturate to MaxInt, so the values compare equal.
	assert.Equal(t, 0, New(MaxInt, 1).Cmp(New(MaxInt, 2)))
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in   Fraction
		want Fraction
	}{
		{New(9, 4), New(3, 2)},
		{New(2, 1), New(1, 1)},
		{New(10, 3), New(3, 1)},
		{New(0, 1), New(0, 1)},
		{New(5, 0), Zero()},
		{New(MaxInt, 1), New(46340, 1)},
		{New(MaxInt-1, 1), New(46340, 1)},
		{New(-4, 1), New(-1, 1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Sqrt(), "Sqrt(%v)", tt.in)
	}
}

func TestValue(t *testing.T) {
	assert.Equal(t, int32(3), New(7, 2).Value())
	assert.Equal(t, int32(-3), New(-7, 2).Value())
	assert.Equal(t, MaxInt, New(MinInt, -1).Value())
	assert.Equal(t, MaxInt, New(5, 0).Value())
	assert.Equal(t, MinInt, New(-5, 0).Value())
	assert.Equal(t, int32(0), New(0, 0).Value())
}

func TestAbs(t *testing.T) {
	assert.Equal(t, New(MaxInt, 3), New(MinInt, -3).Abs())
	assert.Equal(t, New(1, 86), New(-1, -86).Abs())
}

func TestString(t *testing.T) {
	assert.Equal(t, "-3/4", New(-3, 4).String())
	assert.Equal(t, "0/1", Zero().String())
}
