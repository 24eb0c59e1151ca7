package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

func TotalMass(stars []galaxy.Star) float64 {
	m := 0.0
	for _, s := range stars {
		m += s.Mass
	}
	return m
}

// Momentum is the sum of m v.
func Momentum(stars []galaxy.Star) r3.Vec {
	var p r3.Vec
	for _, s := range stars {
		p = r3.Add(p, r3.Scale(s.Mass, s.Velocity))
	}
	return p
}

// AngularMomentum is the sum of m (x - center) cross v.
func AngularMomentum(stars []galaxy.Star, center r3.Vec) r3.Vec {
	var l r3.Vec
	for _, s := range stars {
		l = r3.Add(l, r3.Scale(s.Mass, r3.Cross(r3.Sub(s.Position, center), s.Velocity)))
	}
	return l
}

// CenterOfMass returns the zero vector for an empty or massless population.
func CenterOfMass(stars []galaxy.Star) r3.Vec {
	total := TotalMass(stars)
	if total == 0 {
		return r3.Vec{}
	}
	var c r3.Vec
	for _, s := range stars {
		c = r3.Add(c, r3.Scale(s.Mass, s.Position))
	}
	return r3.Scale(1/total, c)
}

// RMSRadius is the root mean square distance of the stars from center.
func RMSRadius(stars []galaxy.Star, center r3.Vec) float64 {
	if len(stars) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range stars {
		sum += r3.Norm2(r3.Sub(s.Position, center))
	}
	return math.Sqrt(sum / float64(len(stars)))
}

// InvalidCount counts stars carrying NaN or Inf.
func InvalidCount(stars []galaxy.Star) int {
	n := 0
	for _, s := range stars {
		if !s.Valid() {
			n++
		}
	}
	return n
}

type Spread struct {
	name   string
	center r3.Vec
	radius float64
}

// NewSpread reports the latest RMS radius about the cube center.
func NewSpread() *Spread {
	return &Spread{name: "rms_radius", center: galaxy.Center()}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(stars []galaxy.Star, iter uint64) {
	s.radius = RMSRadius(stars, s.center)
}

func (s *Spread) Value() float64 { return s.radius }
func (s *Spread) Reset()         { s.radius = 0 }
