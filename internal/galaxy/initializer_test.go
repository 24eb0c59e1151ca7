package galaxy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

var _ = Describe("Generate", func() {
	var stars []galaxy.Star

	BeforeEach(func() {
		stars = galaxy.Generate(1000, rand.New(rand.NewSource(7)))
	})

	It("returns exactly count stars", func() {
		Expect(stars).To(HaveLen(1000))
		Expect(galaxy.Generate(0, rand.New(rand.NewSource(7)))).To(BeEmpty())
	})

	It("places every star strictly inside the sphere", func() {
		center := galaxy.Center()
		for _, s := range stars {
			Expect(r3.Norm(r3.Sub(s.Position, center))).To(BeNumerically("<", galaxy.SphereRadius))
		}
	})

	It("sets the rigid rotation velocity field about z", func() {
		center := galaxy.Center()
		axis := r3.Vec{Z: 1}
		for _, s := range stars {
			offset := r3.Sub(s.Position, center)
			want := r3.Scale(galaxy.AngularVelocity, r3.Cross(axis, offset))

			Expect(s.Velocity.X).To(BeNumerically("~", want.X, 1e-9))
			Expect(s.Velocity.Y).To(BeNumerically("~", want.Y, 1e-9))
			Expect(s.Velocity.Z).To(Equal(0.0))
		}
	})

	It("starts every star with zero acceleration and unit mass", func() {
		for _, s := range stars {
			Expect(s.Acceleration).To(Equal(r3.Vec{}))
			Expect(s.Mass).To(Equal(1.0))
		}
	})

	It("fills the sphere rather than a shell", func() {
		center := galaxy.Center()
		inner := 0
		for _, s := range stars {
			if r3.Norm(r3.Sub(s.Position, center)) < galaxy.SphereRadius/2 {
				inner++
			}
		}
		// a uniform ball puts 1/8 of its volume inside half the radius
		Expect(inner).To(BeNumerically("~", 125, 50))
	})

	It("is reproducible for a fixed seed", func() {
		again := galaxy.Generate(1000, rand.New(rand.NewSource(7)))
		Expect(again).To(Equal(stars))
	})
})
