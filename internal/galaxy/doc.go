// Package galaxy provides the gravitational N-body core.
//
// The package defines the star population and the rules that advance it:
//
//   - [Star]: point mass with position, velocity, acceleration
//   - [Generate]: rejection-sampled sphere of stars in rigid rotation
//   - [AccelerationOn]: brute-force pairwise gravitational acceleration
//   - [Integrate]: per-star position/velocity update for one time step
//   - [Galaxy]: double-buffered population driven sequentially or in parallel
//
// # Example
//
//	g, _ := galaxy.New(2000)
//	step, _ := g.StepFunc(galaxy.ModeParallel)
//	for i := 0; i < 100; i++ {
//	    stars := step()
//	    _ = stars[0].Position
//	}
//
// # Thread Safety
//
// A Galaxy is NOT safe for concurrent use. StepParallel fans the work out
// internally: every worker reads the current buffer and writes a disjoint
// range of the next buffer, so no star state is ever locked.
//
// # Singularities
//
// There is no softening term. Two distinct stars whose separation is tiny
// but nonzero produce a huge or infinite acceleration and the resulting
// NaN/Inf spreads through later iterations. Stars whose separation is
// exactly zero are skipped like the self term. Use [Star.Valid] to detect
// corrupted state.
package galaxy
