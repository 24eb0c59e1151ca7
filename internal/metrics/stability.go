package metrics

import (
	"github.com/san-kum/galaxy/internal/galaxy"
)

// Containment is the fraction of samples in which every star stayed within
// margin of the simulation cube. Stars flung out by close encounters drive
// it below 1.
type Containment struct {
	name       string
	margin     float64
	violations int
	samples    int
}

func NewContainment(margin float64) *Containment {
	return &Containment{
		name:   "containment",
		margin: margin,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(stars []galaxy.Star, iter uint64) {
	c.samples++
	if Escaped(stars, c.margin) > 0 {
		c.violations++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}

// Escaped counts stars outside [-margin, GalaxyWidth+margin] on any axis.
// Stars with NaN coordinates count as escaped.
func Escaped(stars []galaxy.Star, margin float64) int {
	lo, hi := -margin, galaxy.GalaxyWidth+margin
	inside := func(v float64) bool { return v >= lo && v <= hi }

	n := 0
	for _, s := range stars {
		p := s.Position
		if !inside(p.X) || !inside(p.Y) || !inside(p.Z) {
			n++
		}
	}
	return n
}
