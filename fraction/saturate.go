package fraction

import "math"

// Domain bounds. Every primitive below clamps into [MinInt, MaxInt].
const (
	MinInt int32 = math.MinInt32
	MaxInt int32 = math.MaxInt32
)

func clamp(v int64) int32 {
	if v > int64(MaxInt) {
		return MaxInt
	}
	if v < int64(MinInt) {
		return MinInt
	}
	return int32(v)
}

// SatAdd returns a+b clamped to the domain.
func SatAdd(a, b int32) int32 { return clamp(int64(a) + int64(b)) }

// SatSub returns a-b clamped to the domain.
func SatSub(a, b int32) int32 { return clamp(int64(a) - int64(b)) }

// SatMul returns a*b clamped to the domain.
func SatMul(a, b int32) int32 { return clamp(int64(a) * int64(b)) }

// SatNeg returns -a. Negating MinInt yields MaxInt.
func SatNeg(a int32) int32 {
	if a == MinInt {
		return MaxInt
	}
	return -a
}

// magnitude returns |a| without overflow; |MinInt| fits in uint32.
func magnitude(a int32) uint32 {
	if a < 0 {
		return uint32(-int64(a))
	}
	return uint32(a)
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
