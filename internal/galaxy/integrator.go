package galaxy

import "gonum.org/v1/gonum/spatial/r3"

// Integrate advances current by one DeltaTime given accel, the acceleration
// computed from the current population.
//
// The position update uses the old acceleration; the velocity update uses
// only the new one:
//
//	p' = p + v*dt + a*dt^2/2
//	v' = v + a'*dt/2
//
// The a*dt/2 term of the symmetric velocity-Verlet velocity update is
// omitted.
func Integrate(current Star, accel r3.Vec) Star {
	pos := r3.Add(
		r3.Add(current.Position, r3.Scale(DeltaTime, current.Velocity)),
		r3.Scale(DeltaTimeSquaredHalf, current.Acceleration),
	)
	vel := r3.Add(current.Velocity, r3.Scale(DeltaTimeHalf, accel))

	return Star{
		Position:     pos,
		Velocity:     vel,
		Acceleration: accel,
		Mass:         current.Mass,
	}
}
