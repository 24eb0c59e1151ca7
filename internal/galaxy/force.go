package galaxy

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AccelerationOn folds the gravitational pull of every star in population on
// target, in population order. A star whose position difference to target
// is exactly zero is skipped, which excludes target itself (and any star
// sitting on exactly the same point).
//
// The contribution is scaled by target.Mass with G = 1.
func AccelerationOn(target Star, population []Star) r3.Vec {
	return accumulate(r3.Vec{}, target, population)
}

// AccelerationOnParallel splits population into at most parts contiguous
// partitions, folds them concurrently and combines the partial sums in
// partition order. The result is reproducible for a fixed partition count
// but may differ from AccelerationOn in the last bits since floating point
// addition is not associative.
func AccelerationOnParallel(target Star, population []Star, parts int) r3.Vec {
	n := len(population)
	if parts > n {
		parts = n
	}
	if parts <= 1 {
		return AccelerationOn(target, population)
	}

	partials := make([]r3.Vec, parts)
	forChunks(n, parts, func(chunk, start, end int) {
		partials[chunk] = accumulate(r3.Vec{}, target, population[start:end])
	})

	var sum r3.Vec
	for _, p := range partials {
		sum = r3.Add(sum, p)
	}
	return sum
}

func accumulate(acc r3.Vec, target Star, population []Star) r3.Vec {
	for i := range population {
		dp := r3.Sub(target.Position, population[i].Position)
		if dp == (r3.Vec{}) {
			continue
		}
		rSquared := r3.Dot(dp, dp)
		r := math.Sqrt(rSquared)
		rInverseCubed := 1.0 / (rSquared * r)

		delta := r3.Scale(-rInverseCubed, dp)
		acc = r3.Add(acc, r3.Scale(target.Mass, delta))
	}
	return acc
}
