package viz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

// Plane is the pair of cube axes mapped onto the screen.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "x-z"
	case PlaneYZ:
		return "y-z"
	}
	return "x-y"
}

// Next cycles through the three planes.
func (p Plane) Next() Plane {
	return (p + 1) % 3
}

// Project maps a position in the [0, GalaxyWidth] cube onto a w x h
// sub-pixel area, keeping the aspect ratio square and the cube centered.
// The second axis grows downward as on screen. ok is false outside the
// area.
func Project(pos r3.Vec, plane Plane, w, h int) (x, y int, ok bool) {
	var u, v float64
	switch plane {
	case PlaneXZ:
		u, v = pos.X, pos.Z
	case PlaneYZ:
		u, v = pos.Y, pos.Z
	default:
		u, v = pos.X, pos.Y
	}
	if math.IsNaN(u) || math.IsNaN(v) {
		return 0, 0, false
	}

	side := math.Min(float64(w), float64(h))
	scale := side / galaxy.GalaxyWidth
	ox := (float64(w) - side) / 2
	oy := (float64(h) - side) / 2

	fx := ox + u*scale
	fy := oy + v*scale
	if fx < 0 || fy < 0 || fx >= float64(w) || fy >= float64(h) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// starSize is the drawn edge length in sub-pixels for a given mass.
func starSize(mass float64) int {
	if mass <= 1 || math.IsNaN(mass) {
		return 1
	}
	return int(math.Min(4, math.Round(mass)))
}
