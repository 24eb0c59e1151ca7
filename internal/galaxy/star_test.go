package galaxy_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

var _ = Describe("Star", func() {
	It("defaults to a unit mass at rest at the origin", func() {
		Expect(galaxy.NewStar()).To(Equal(galaxy.Star{Mass: 1}))
	})

	It("builds copies without touching the receiver", func() {
		base := galaxy.NewStar()
		s := base.
			WithPosition(r3.Vec{X: 1}).
			WithVelocity(r3.Vec{Y: 2}).
			WithAcceleration(r3.Vec{Z: 3}).
			WithMass(4)

		Expect(s).To(Equal(galaxy.Star{
			Position:     r3.Vec{X: 1},
			Velocity:     r3.Vec{Y: 2},
			Acceleration: r3.Vec{Z: 3},
			Mass:         4,
		}))
		Expect(base).To(Equal(galaxy.NewStar()))
	})

	It("reports non-finite state", func() {
		Expect(galaxy.NewStar().Valid()).To(BeTrue())
		Expect(galaxy.NewStar().WithPosition(r3.Vec{X: math.NaN()}).Valid()).To(BeFalse())
		Expect(galaxy.NewStar().WithVelocity(r3.Vec{Z: math.Inf(-1)}).Valid()).To(BeFalse())
		Expect(galaxy.NewStar().WithMass(math.Inf(1)).Valid()).To(BeFalse())
	})

	It("centers the cube", func() {
		Expect(galaxy.Center()).To(Equal(r3.Vec{X: 50, Y: 50, Z: 50}))
	})
})
