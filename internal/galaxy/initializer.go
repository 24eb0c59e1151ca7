package galaxy

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"
)

// rotationAxis is the fixed axis of the initial rigid rotation.
var rotationAxis = r3.Vec{Z: 1}

// Generate places count unit-mass stars uniformly inside a sphere of radius
// SphereRadius centered in the GalaxyWidth cube, each moving with the rigid
// rotation velocity AngularVelocity * (axis x offset).
func Generate(count int, rng *rand.Rand) []Star {
	stars := make([]Star, 0, count)
	center := Center()

	for i := 0; i < count; i++ {
		offset := sampleBall(rng)
		vel := r3.Scale(AngularVelocity, r3.Cross(rotationAxis, offset))

		stars = append(stars, NewStar().
			WithPosition(r3.Add(center, offset)).
			WithVelocity(vel))
	}

	return stars
}

// sampleBall draws from the cube [-R, R)^3 until the point lies strictly
// inside the sphere, giving a uniform-in-volume offset.
func sampleBall(rng *rand.Rand) r3.Vec {
	for {
		v := r3.Vec{
			X: uniform(rng, -SphereRadius, SphereRadius),
			Y: uniform(rng, -SphereRadius, SphereRadius),
			Z: uniform(rng, -SphereRadius, SphereRadius),
		}
		if r3.Norm(v) < SphereRadius {
			return v
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
