package ballistic

// VelocityFromKineticEnergy returns sqrt(2·energy/mass) in m/s.
func VelocityFromKineticEnergy[T Number[T]](energy, mass T) T {
	return constant[T](2).Mul(energy).Div(mass).Sqrt()
}

// DragForce returns 0.5·Cd·ρ·A·v² in newtons.
func DragForce[T Number[T]](velocity, dragCoefficient, airDensity, area T) T {
	vSquared := velocity.Mul(velocity)
	return ratio[T](1, 2).
		Mul(dragCoefficient).
		Mul(airDensity).
		Mul(area).
		Mul(vSquared)
}

// MagnusForce returns 0.5·ρ·r³·v·ω in newtons.
//
// The lift coefficient and cross-section are folded into the cubic radius
// term; this is the simplified model the sight has always used.
func MagnusForce[T Number[T]](velocity, angularVelocity, airDensity, radius T) T {
	return ratio[T](1, 2).
		Mul(airDensity).
		Mul(radius.Mul(radius).Mul(radius)).
		Mul(velocity).
		Mul(angularVelocity)
}

// MagnusDrift returns the lateral displacement accumulated under MagnusForce
// over a flight of fixed step length lasting flightTime seconds:
// ρ·r³·ω·step·t / (4·mass).
//
// Summing (MagnusForce/mass)·dt²/2 with dt = step/v gives the same value,
// because the force is linear in v. Spin is applied last so that the
// result scales with it even when the other factors saturate.
func MagnusDrift[T Number[T]](angularVelocity, airDensity, radius, mass, step, flightTime T) T {
	return flightTime.
		Mul(step).
		Div(mass).
		Mul(airDensity).
		Mul(radius).
		Mul(radius).
		Mul(radius).
		Div(constant[T](4)).
		Mul(angularVelocity)
}
