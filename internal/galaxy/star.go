package galaxy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// GalaxyWidth is the edge of the bounding cube the sphere is centered in.
	GalaxyWidth = 100.0
	// SphereRadius bounds the initial star offsets from the cube center.
	SphereRadius = 20.0
	// AngularVelocity of the initial rigid rotation about the z axis.
	AngularVelocity = 0.4

	DeltaTime            = 0.002
	DeltaTimeHalf        = DeltaTime / 2.0
	DeltaTimeSquaredHalf = (DeltaTime * DeltaTime) / 2.0
)

// Center returns the middle of the bounding cube.
func Center() r3.Vec {
	return r3.Vec{X: 0.5 * GalaxyWidth, Y: 0.5 * GalaxyWidth, Z: 0.5 * GalaxyWidth}
}

// Star is a point mass. Stars have no identity beyond their index in a
// population.
type Star struct {
	Position     r3.Vec
	Velocity     r3.Vec
	Acceleration r3.Vec
	Mass         float64
}

// NewStar returns a unit-mass star at rest at the origin.
func NewStar() Star {
	return Star{Mass: 1.0}
}

func (s Star) WithPosition(p r3.Vec) Star {
	s.Position = p
	return s
}

func (s Star) WithVelocity(v r3.Vec) Star {
	s.Velocity = v
	return s
}

func (s Star) WithAcceleration(a r3.Vec) Star {
	s.Acceleration = a
	return s
}

func (s Star) WithMass(m float64) Star {
	s.Mass = m
	return s
}

// Valid reports whether every component of the star is finite.
func (s Star) Valid() bool {
	return finite(s.Position) && finite(s.Velocity) && finite(s.Acceleration) &&
		!math.IsNaN(s.Mass) && !math.IsInf(s.Mass, 0)
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
