package fraction

// Cmp compares f and g by cross-multiplication and returns -1, 0 or +1.
// Neither side is reduced first; the products saturate.
func (f Fraction) Cmp(g Fraction) int {
	l := SatMul(f.Numerator, g.Denominator)
	r := SatMul(g.Numerator, f.Denominator)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

func (f Fraction) Less(g Fraction) bool   { return f.Cmp(g) < 0 }
func (f Fraction) LessEq(g Fraction) bool { return f.Cmp(g) <= 0 }
func (f Fraction) Equal(g Fraction) bool  { return f.Cmp(g) == 0 }

// IsZero reports whether f compares equal to 0/1.
func (f Fraction) IsZero() bool { return f.Equal(Zero()) }

// IsPositive reports whether f compares greater than 0/1.
func (f Fraction) IsPositive() bool { return Zero().Less(f) }

// Max returns the larger of f and g, preferring f on ties.
func (f Fraction) Max(g Fraction) Fraction {
	if f.Less(g) {
		return g
	}
	return f
}

// Min returns the smaller of f and g, preferring f on ties.
func (f Fraction) Min(g Fraction) Fraction {
	if g.Less(f) {
		return g
	}
	return f
}

// FromInt returns n/1. It lets Fraction satisfy numeric constraints that
// construct constants from a value of the type.
func (Fraction) FromInt(n int32) Fraction { return FromInt(n) }

// Pi returns the 22/7 approximation of π.
func (Fraction) Pi() Fraction { return Fraction{Numerator: 22, Denominator: 7} }
