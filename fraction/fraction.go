// Package fraction implements an exact ratio type over int32 for targets
// without an FPU.
//
// Every intermediate product and sum saturates to [MinInt, MaxInt] instead of
// wrapping, and every arithmetic result is normalized. The type is a small
// value; no operation allocates.
//
// Division by (and reciprocal of) a fraction whose numerator is not positive
// is a contract violation and panics with ErrNonPositiveDivisor. Callers are
// expected to only divide by configuration constants and physical quantities
// that are positive by construction.
package fraction

import (
	"errors"
	"strconv"
)

// ErrNonPositiveDivisor is the panic value raised by Div, DivInt and
// Reciprocal when the divisor is zero or negative.
var ErrNonPositiveDivisor = errors.New("fraction: divisor must be positive")

// sqrtMax is floor(sqrt(MaxInt)); returned directly because the search below
// cannot terminate on MaxInt once products saturate.
const sqrtMax int32 = 46340

// Fraction is Numerator/Denominator. The zero value is 0/0, use Zero().
type Fraction struct {
	Numerator   int32
	Denominator int32
}

// New returns numerator/denominator as given. Nothing is validated or reduced.
func New(numerator, denominator int32) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// Zero returns 0/1.
func Zero() Fraction { return Fraction{Numerator: 0, Denominator: 1} }

// FromInt returns n/1.
func FromInt(n int32) Fraction { return Fraction{Numerator: n, Denominator: 1} }

// Value returns the truncated integer quotient. A zero denominator saturates
// by the sign of the numerator.
func (f Fraction) Value() int32 {
	if f.Denominator == 0 {
		switch {
		case f.Numerator > 0:
			return MaxInt
		case f.Numerator < 0:
			return MinInt
		}
		return 0
	}
	return clamp(int64(f.Numerator) / int64(f.Denominator))
}

// Reciprocal returns Denominator/Numerator.
func (f Fraction) Reciprocal() Fraction {
	if f.Numerator <= 0 {
		panic(ErrNonPositiveDivisor)
	}
	return Fraction{Numerator: f.Denominator, Denominator: f.Numerator}
}

// Abs returns |Numerator|/|Denominator|.
func (f Fraction) Abs() Fraction {
	n, d := f.Numerator, f.Denominator
	if n < 0 {
		n = SatNeg(n)
	}
	if d < 0 {
		d = SatNeg(d)
	}
	return Fraction{Numerator: n, Denominator: d}
}

// Neg returns -f.
func (f Fraction) Neg() Fraction {
	return Fraction{Numerator: SatNeg(f.Numerator), Denominator: f.Denominator}
}

// Normalized moves the sign to the numerator and reduces by the gcd.
func (f Fraction) Normalized() Fraction {
	n, d := f.Numerator, f.Denominator
	if d < 0 {
		n, d = SatNeg(n), SatNeg(d)
	}
	g := gcd(magnitude(n), magnitude(d))
	if g <= 1 {
		return Fraction{Numerator: n, Denominator: d}
	}
	// g may be 1<<31 when d == 0 and n == MinInt.
	return Fraction{
		Numerator:   int32(int64(n) / int64(g)),
		Denominator: int32(int64(d) / int64(g)),
	}
}

// Add returns f+g.
func (f Fraction) Add(g Fraction) Fraction {
	return Fraction{
		Numerator:   SatAdd(SatMul(f.Numerator, g.Denominator), SatMul(g.Numerator, f.Denominator)),
		Denominator: SatMul(f.Denominator, g.Denominator),
	}.Normalized()
}

// Sub returns f-g.
func (f Fraction) Sub(g Fraction) Fraction {
	return Fraction{
		Numerator:   SatSub(SatMul(f.Numerator, g.Denominator), SatMul(g.Numerator, f.Denominator)),
		Denominator: SatMul(f.Denominator, g.Denominator),
	}.Normalized()
}

// Mul returns f*g.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{
		Numerator:   SatMul(f.Numerator, g.Numerator),
		Denominator: SatMul(f.Denominator, g.Denominator),
	}.Normalized()
}

// Div returns f/g. g.Numerator must be positive.
func (f Fraction) Div(g Fraction) Fraction {
	if g.Numerator <= 0 {
		panic(ErrNonPositiveDivisor)
	}
	return Fraction{
		Numerator:   SatMul(f.Numerator, g.Denominator),
		Denominator: SatMul(f.Denominator, g.Numerator),
	}.Normalized()
}

// AddInt returns f+n.
func (f Fraction) AddInt(n int32) Fraction { return f.Add(FromInt(n)) }

// SubInt returns f-n.
func (f Fraction) SubInt(n int32) Fraction { return f.Sub(FromInt(n)) }

// MulInt returns f*n.
func (f Fraction) MulInt(n int32) Fraction {
	return Fraction{
		Numerator:   SatMul(f.Numerator, n),
		Denominator: f.Denominator,
	}.Normalized()
}

// DivInt returns f/n. n must be positive.
func (f Fraction) DivInt(n int32) Fraction {
	if n <= 0 {
		panic(ErrNonPositiveDivisor)
	}
	return Fraction{
		Numerator:   f.Numerator,
		Denominator: SatMul(f.Denominator, n),
	}.Normalized()
}

// Sqrt takes the floor square root of numerator and denominator separately.
// The result is exact only when both are perfect squares.
func (f Fraction) Sqrt() Fraction {
	if f.Denominator == 0 {
		return Zero()
	}
	return Fraction{
		Numerator:   floorSqrt(f.Numerator),
		Denominator: floorSqrt(f.Denominator),
	}
}

// floorSqrt returns the largest x with x*x <= v, or -1 for negative v.
// Cost grows with sqrt(v).
func floorSqrt(v int32) int32 {
	if v == MaxInt {
		return sqrtMax
	}
	var x int32
	for SatMul(x, x) <= v {
		x++
	}
	return x - 1
}

// String renders "n/d".
func (f Fraction) String() string {
	var buf [24]byte
	b := strconv.AppendInt(buf[:0], int64(f.Numerator), 10)
	b = append(b, '/')
	b = strconv.AppendInt(b, int64(f.Denominator), 10)
	return string(b)
}
