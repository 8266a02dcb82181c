package ballistic

import "math"

// Number is the capability set the physics formulas and the integrator need
// from a numeric domain. FromInt is called on a zero value to build
// constants, so implementations must not depend on the receiver.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	Sqrt() T
	Less(T) bool
	FromInt(int32) T
	Value() int32
}

// pier is implemented by domains that carry their own approximation of π.
type pier[T any] interface {
	Pi() T
}

func constant[T Number[T]](n int32) T {
	var zero T
	return zero.FromInt(n)
}

func ratio[T Number[T]](num, den int32) T {
	return constant[T](num).Div(constant[T](den))
}

// Pi returns the domain's own π when it has one and 22/7 otherwise.
func Pi[T Number[T]]() T {
	var zero T
	if p, ok := any(zero).(pier[T]); ok {
		return p.Pi()
	}
	return ratio[T](22, 7)
}

func maxOf[T Number[T]](a, b T) T {
	if a.Less(b) {
		return b
	}
	return a
}

// Real is the floating-point domain used by the float firmware variant and by
// host tooling. It follows IEEE semantics: no saturation and no contract
// panics.
type Real float64

func (r Real) Add(o Real) Real    { return r + o }
func (r Real) Sub(o Real) Real    { return r - o }
func (r Real) Mul(o Real) Real    { return r * o }
func (r Real) Div(o Real) Real    { return r / o }
func (r Real) Neg() Real          { return -r }
func (r Real) Abs() Real          { return Real(math.Abs(float64(r))) }
func (r Real) Sqrt() Real         { return Real(math.Sqrt(float64(r))) }
func (r Real) Less(o Real) bool   { return r < o }
func (Real) FromInt(n int32) Real { return Real(n) }
func (Real) Pi() Real             { return math.Pi }
func (r Real) Float64() float64   { return float64(r) }

// Value truncates toward zero and saturates to the int32 range.
func (r Real) Value() int32 {
	switch {
	case math.IsNaN(float64(r)):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}
