package ballistic

// Config is the immutable firing configuration. Units are SI: joules, kilograms,
// radians per second, meters, m/s², kg/m³.
type Config[T Number[T]] struct {
	MuzzleEnergy    T
	Mass            T
	AngularVelocity T
	// Elevation is carried for the sight UI; the integrator does not use it.
	Elevation       T
	Gravity         T
	AirDensity      T
	DragCoefficient T
	Diameter        T
	Step            T
}

// DefaultConfig models a 0.4 g, 6 mm projectile at 1.9 J with 15 rad/s of
// spin at sea level, integrated in 1 m steps.
func DefaultConfig[T Number[T]]() Config[T] {
	return Config[T]{
		MuzzleEnergy:    ratio[T](19, 10),
		Mass:            ratio[T](4, 10000),
		AngularVelocity: constant[T](15),
		Elevation:       constant[T](0),
		Gravity:         ratio[T](981, 100),
		AirDensity:      ratio[T](18, 10),
		DragCoefficient: ratio[T](43, 100),
		Diameter:        ratio[T](6, 1000),
		Step:            constant[T](1),
	}
}

// Drift is the displacement from the line of aim, in meters. X is lateral
// (positive with positive spin), Y is vertical (negative is down).
type Drift[T Number[T]] struct {
	X T
	Y T
}

// ZeroDrift returns a drift with both components zero.
func ZeroDrift[T Number[T]]() Drift[T] {
	return Drift[T]{X: constant[T](0), Y: constant[T](0)}
}

// Trace reports how far the integrator ran.
type Trace[T Number[T]] struct {
	Steps  int
	Time   T // seconds of flight covered
	Energy T // kinetic energy left, joules
}

type stateVector[T Number[T]] struct {
	position      T
	time          T
	mass          T
	kineticEnergy T
	rotation      T
}

func (s *stateVector[T]) velocity() T {
	return VelocityFromKineticEnergy(s.kineticEnergy, s.mass)
}

// CalculateDrift integrates the flight in fixed distance steps until rng is
// covered or the projectile runs out of energy.
func CalculateDrift[T Number[T]](cfg *Config[T], rng T) Drift[T] {
	d, _ := CalculateTrace(cfg, rng)
	return d
}

// CalculateTrace is CalculateDrift plus the integrator bookkeeping.
//
// Each step covers cfg.Step meters in dt = |step/v| seconds. The Magnus and
// gravity accelerations are applied as uniform over the step, and drag work
// is taken out of the kinetic energy, floored at zero. The lateral sum is
// taken in closed form from the flight time once the loop ends (see
// MagnusDrift), so it never decreases as spin grows.
func CalculateTrace[T Number[T]](cfg *Config[T], rng T) (Drift[T], Trace[T]) {
	zero := constant[T](0)
	two := constant[T](2)

	state := stateVector[T]{
		position:      zero,
		time:          zero,
		mass:          cfg.Mass,
		kineticEnergy: cfg.MuzzleEnergy,
		rotation:      cfg.AngularVelocity,
	}

	driftX, driftY := zero, zero
	step := cfg.Step
	radius := cfg.Diameter.Div(two)
	traveled := zero
	steps := 0

	for traveled.Less(rng) && zero.Less(state.kineticEnergy) {
		v := state.velocity()
		if !zero.Less(v) {
			break
		}

		area := Pi[T]().Mul(radius).Mul(radius)
		drag := DragForce(v, cfg.DragCoefficient, cfg.AirDensity, area)

		dt := step.Div(v).Abs()

		accelY := cfg.Gravity.Neg()
		driftY = driftY.Add(accelY.Mul(dt).Mul(dt).Div(two))

		work := drag.Mul(step)
		state.kineticEnergy = maxOf(state.kineticEnergy.Sub(work), zero)

		state.position = state.position.Add(step)
		state.time = state.time.Add(dt)
		traveled = traveled.Add(step)
		steps++
	}

	if steps > 0 {
		driftX = MagnusDrift(state.rotation, cfg.AirDensity, radius, state.mass, step, state.time)
	}

	return Drift[T]{X: driftX, Y: driftY}, Trace[T]{
		Steps:  steps,
		Time:   state.time,
		Energy: state.kineticEnergy,
	}
}
