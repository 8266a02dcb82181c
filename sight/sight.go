// Package sight holds the user-facing sight state and turns drift into a
// reticle position on the display.
package sight

import "exacto/ballistic"

// Limits for the user-adjustable fields.
const (
	MinRange  = 1
	MaxRange  = 100
	MaxZero   = 32
	MinEnergy = 5
	MaxEnergy = 40
	MaxSpin   = 30
)

// Sight is the full device state the user can change. It is a plain value
// and is compared with == to detect changes.
type Sight struct {
	XZero            int16 // px, positive moves the reticle right
	YZero            int16 // px, positive moves the reticle down
	BatteryPower     uint8 // percent
	Range            uint8 // meters
	EnergyDeciJoules uint8
	Spin             int8 // rad/s
}

// Default is the power-on state.
func Default() Sight {
	return Sight{
		BatteryPower:     100,
		Range:            10,
		EnergyDeciJoules: 19,
		Spin:             15,
	}
}

// Field names one adjustable value of a Sight.
type Field uint8

const (
	FieldRange Field = iota
	FieldXZero
	FieldYZero
	FieldEnergy
	FieldSpin
)

func (f Field) String() string {
	switch f {
	case FieldRange:
		return "Range"
	case FieldXZero:
		return "X zero"
	case FieldYZero:
		return "Y zero"
	case FieldEnergy:
		return "Energy"
	case FieldSpin:
		return "Spin"
	}
	return "?"
}

// Get returns the current value of f.
func (s Sight) Get(f Field) int {
	switch f {
	case FieldRange:
		return int(s.Range)
	case FieldXZero:
		return int(s.XZero)
	case FieldYZero:
		return int(s.YZero)
	case FieldEnergy:
		return int(s.EnergyDeciJoules)
	case FieldSpin:
		return int(s.Spin)
	}
	return 0
}

// Adjust moves f by delta, clamped to the field's limits, and reports whether
// the value changed.
func (s *Sight) Adjust(f Field, delta int) bool {
	before := *s
	v := s.Get(f) + delta
	switch f {
	case FieldRange:
		s.Range = uint8(clamp(v, MinRange, MaxRange))
	case FieldXZero:
		s.XZero = int16(clamp(v, -MaxZero, MaxZero))
	case FieldYZero:
		s.YZero = int16(clamp(v, -MaxZero, MaxZero))
	case FieldEnergy:
		s.EnergyDeciJoules = uint8(clamp(v, MinEnergy, MaxEnergy))
	case FieldSpin:
		s.Spin = int8(clamp(v, -MaxSpin, MaxSpin))
	}
	return *s != before
}

// Clamped returns s with every field inside its limits.
func (s Sight) Clamped() Sight {
	for _, f := range []Field{FieldRange, FieldXZero, FieldYZero, FieldEnergy, FieldSpin} {
		s.Adjust(f, 0)
	}
	if s.BatteryPower > 100 {
		s.BatteryPower = 100
	}
	return s
}

// Configure returns base with the muzzle energy and spin taken from s.
func Configure[T ballistic.Number[T]](base ballistic.Config[T], s Sight) ballistic.Config[T] {
	var z T
	base.MuzzleEnergy = z.FromInt(int32(s.EnergyDeciJoules)).Div(z.FromInt(10))
	base.AngularVelocity = z.FromInt(int32(s.Spin))
	return base
}

// Config is Configure applied to the default engine configuration.
func (s Sight) Config() ballistic.Config[ballistic.Scalar] {
	return Configure(ballistic.DefaultConfig[ballistic.Scalar](), s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
