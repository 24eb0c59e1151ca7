package galaxy_test

import (
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

func seeded(n int, seed uint64) []galaxy.Star {
	return galaxy.Generate(n, rand.New(rand.NewSource(seed)))
}

var _ = Describe("Galaxy", func() {
	Describe("construction", func() {
		It("starts both buffers with identical contents", func() {
			g, err := galaxy.NewWithConfig(galaxy.Config{Stars: 64, Seed: 3})
			Expect(err).NotTo(HaveOccurred())

			Expect(g.Len()).To(Equal(64))
			Expect(g.Iteration()).To(BeZero())
			Expect(g.Buffer(0)).To(Equal(g.Buffer(1)))
			Expect(g.Stars()).To(Equal(g.Buffer(0)))
		})

		It("reproduces the population for a fixed seed", func() {
			a, _ := galaxy.NewWithConfig(galaxy.Config{Stars: 32, Seed: 99})
			b, _ := galaxy.NewWithConfig(galaxy.Config{Stars: 32, Seed: 99})
			Expect(a.Stars()).To(Equal(b.Stars()))
		})

		It("defaults the pool to the logical CPU count", func() {
			g, err := galaxy.New(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Workers()).To(Equal(runtime.NumCPU()))
		})

		It("copies the caller's stars", func() {
			stars := []galaxy.Star{starAt(0, 0, 0), starAt(1, 0, 0)}
			g, err := galaxy.FromStars(stars, galaxy.Config{})
			Expect(err).NotTo(HaveOccurred())

			stars[0].Mass = 42
			Expect(g.Stars()[0].Mass).To(Equal(1.0))
		})

		It("rejects invalid configuration", func() {
			_, err := galaxy.NewWithConfig(galaxy.Config{Stars: -1})
			Expect(err).To(MatchError(galaxy.ErrInvalidStarCount))

			_, err = galaxy.NewWithConfig(galaxy.Config{Stars: 1, Workers: -2})
			Expect(err).To(MatchError(galaxy.ErrInvalidWorkers))

			_, err = galaxy.NewWithConfig(galaxy.Config{Stars: 1, FoldChunk: -2})
			Expect(err).To(MatchError(galaxy.ErrInvalidFoldChunk))
		})
	})

	Describe("a two star system after one sequential step", func() {
		var stars []galaxy.Star

		BeforeEach(func() {
			g, err := galaxy.FromStars([]galaxy.Star{starAt(0, 0, 0), starAt(1, 0, 0)}, galaxy.Config{})
			Expect(err).NotTo(HaveOccurred())
			stars = g.Step()
		})

		It("accelerates the stars toward each other with unit magnitude", func() {
			Expect(stars[0].Acceleration).To(Equal(r3.Vec{X: 1}))
			Expect(stars[1].Acceleration).To(Equal(r3.Vec{X: -1}))
		})

		It("does not move them since the old acceleration was zero", func() {
			Expect(stars[0].Position).To(Equal(r3.Vec{}))
			Expect(stars[1].Position).To(Equal(r3.Vec{X: 1}))
		})

		It("gives them a half step of velocity", func() {
			Expect(stars[0].Velocity).To(Equal(r3.Vec{X: galaxy.DeltaTimeHalf}))
			Expect(stars[1].Velocity).To(Equal(r3.Vec{X: -galaxy.DeltaTimeHalf}))
			Expect(stars[0].Velocity.X).To(Equal(0.001))
		})
	})

	Describe("double buffering", func() {
		It("writes step k into buffer k mod 2 and returns it", func() {
			g, _ := galaxy.FromStars(seeded(16, 1), galaxy.Config{})

			for k := 1; k <= 6; k++ {
				out := g.Step()
				Expect(g.Iteration()).To(BeEquivalentTo(k))
				Expect(&out[0]).To(BeIdenticalTo(&g.Buffer(k % 2)[0]))
				Expect(g.Stars()).To(Equal(out))
			}
		})

		It("alternates in parallel mode too", func() {
			g, _ := galaxy.FromStars(seeded(16, 1), galaxy.Config{Workers: 3})

			for k := 1; k <= 4; k++ {
				out := g.StepParallel()
				Expect(&out[0]).To(BeIdenticalTo(&g.Buffer(k % 2)[0]))
			}
		})

		It("leaves the previous state readable in the other buffer", func() {
			g, _ := galaxy.FromStars(seeded(8, 2), galaxy.Config{})
			first := append([]galaxy.Star(nil), g.Step()...)
			g.Step()
			Expect(g.Buffer(1)).To(Equal(first))
		})
	})

	Describe("determinism", func() {
		It("reproduces sequential runs bit for bit", func() {
			pair := []galaxy.Star{
				starAt(0, 0, 0),
				starAt(1, 0, 0).WithVelocity(r3.Vec{Y: 0.3}),
			}
			run := func() []galaxy.Star {
				g, _ := galaxy.FromStars(pair, galaxy.Config{})
				g.Step()
				return append([]galaxy.Star(nil), g.Step()...)
			}
			Expect(run()).To(Equal(run()))
		})

		It("reproduces parallel runs for a fixed worker count", func() {
			pop := seeded(50, 5)
			run := func() []galaxy.Star {
				g, _ := galaxy.FromStars(pop, galaxy.Config{Workers: 4, FoldChunk: 4})
				for i := 0; i < 5; i++ {
					g.StepParallel()
				}
				return append([]galaxy.Star(nil), g.Stars()...)
			}
			Expect(run()).To(Equal(run()))
		})

		It("keeps sequential and parallel results within rounding", func() {
			pop := seeded(50, 5)
			seq, _ := galaxy.FromStars(pop, galaxy.Config{})
			par, _ := galaxy.FromStars(pop, galaxy.Config{Workers: 4, FoldChunk: 4})

			for i := 0; i < 10; i++ {
				seq.Step()
				par.StepParallel()
			}
			for i, s := range seq.Stars() {
				p := par.Stars()[i]
				expectClose(p.Position, s.Position, 1e-9)
				expectClose(p.Velocity, s.Velocity, 1e-9)
				expectClose(p.Acceleration, s.Acceleration, 1e-9)
			}
		})
	})

	Describe("degenerate populations", func() {
		It("moves a lone star in a straight line", func() {
			lone := seeded(1, 8)
			g, _ := galaxy.FromStars(lone, galaxy.Config{})
			v0 := lone[0].Velocity

			for k := 1; k <= 20; k++ {
				s := g.Step()[0]
				Expect(s.Acceleration).To(Equal(r3.Vec{}))
				Expect(s.Velocity).To(Equal(v0))

				want := r3.Add(lone[0].Position, r3.Scale(float64(k)*galaxy.DeltaTime, v0))
				expectClose(s.Position, want, 1e-12)
			}
		})

		It("keeps a lone star at rest where it is", func() {
			g, _ := galaxy.FromStars([]galaxy.Star{starAt(50, 50, 50)}, galaxy.Config{})
			for i := 0; i < 10; i++ {
				g.StepParallel()
			}
			Expect(g.Stars()[0]).To(Equal(starAt(50, 50, 50)))
		})

		It("steps an empty galaxy", func() {
			g, err := galaxy.New(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Step()).To(BeEmpty())
			Expect(g.StepParallel()).To(BeEmpty())
			Expect(g.Iteration()).To(BeEquivalentTo(2))
		})
	})

	Describe("StepFunc", func() {
		It("resolves each mode to its strategy", func() {
			g, _ := galaxy.FromStars(seeded(4, 1), galaxy.Config{})

			step, err := g.StepFunc(galaxy.ModeSingle)
			Expect(err).NotTo(HaveOccurred())
			step()

			step, err = g.StepFunc(galaxy.ModeParallel)
			Expect(err).NotTo(HaveOccurred())
			step()

			Expect(g.Iteration()).To(BeEquivalentTo(2))
		})

		It("rejects an unknown mode", func() {
			g, _ := galaxy.New(1)
			_, err := g.StepFunc(galaxy.Mode(7))
			Expect(err).To(MatchError(galaxy.ErrUnknownMode))
		})
	})
})
