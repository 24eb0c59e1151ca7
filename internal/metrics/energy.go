package metrics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/san-kum/galaxy/internal/galaxy"
)

// KineticEnergy is the sum of 1/2 m v^2 over the population.
func KineticEnergy(stars []galaxy.Star) float64 {
	ke := 0.0
	for _, s := range stars {
		ke += 0.5 * s.Mass * r3.Norm2(s.Velocity)
	}
	return ke
}

// PotentialEnergy sums -m_i m_j / r over distinct pairs with G = 1. Pairs
// at exactly zero separation are skipped, matching the force law.
func PotentialEnergy(stars []galaxy.Star) float64 {
	pe := 0.0
	for i := range stars {
		for j := i + 1; j < len(stars); j++ {
			r := r3.Norm(r3.Sub(stars[j].Position, stars[i].Position))
			if r == 0 {
				continue
			}
			pe -= stars[i].Mass * stars[j].Mass / r
		}
	}
	return pe
}

func TotalEnergy(stars []galaxy.Star) float64 {
	return KineticEnergy(stars) + PotentialEnergy(stars)
}

type EnergyDrift struct {
	name          string
	initialEnergy float64
	maxDrift      float64
	samples       int
}

// NewEnergyDrift tracks the largest relative departure of the total energy
// from its first observed value.
func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(stars []galaxy.Star, iter uint64) {
	energy := TotalEnergy(stars)

	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.samples++

	if e.initialEnergy != 0 {
		drift := math.Abs(energy-e.initialEnergy) / math.Abs(e.initialEnergy)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initialEnergy = 0
	e.maxDrift = 0
	e.samples = 0
}
