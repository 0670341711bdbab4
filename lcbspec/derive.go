package lcbspec

import (
	"math"
	"math/rand/v2"
	"strings"
)

// BulkDensity is the density, in kg/m³, assumed for bodies whose size is
// derived from their mass.
const BulkDensity = 3000.0

// RadiusFromMass estimates the radius in metres of a sphere of the given
// mass in kilograms at BulkDensity, by inverting m = ρ·4/3·π·r³. Callers
// storing the result as a small_body size convert it to kilometres.
func RadiusFromMass(massKg float64) float64 {
	return math.Cbrt(massKg / (BulkDensity * 4.0 / 3.0 * math.Pi))
}

const (
	minFireballSeconds = 1
	maxFireballSeconds = 9
)

// Lifespan estimates how many seconds a meteor of the given mass stays
// visible in the atmosphere. It takes the larger of a fireball duration
// drawn uniformly from 1–9 s and a draw scaled by the cube root of the mass,
// so the result lies in [1, max(9, cbrt(mass))].
func Lifespan(r *rand.Rand, massKg float64) int {
	fireball := minFireballSeconds + (maxFireballSeconds-minFireballSeconds)*r.Float64()
	scaled := r.Float64() * math.Cbrt(math.Max(massKg, 0))
	return max(int(math.Max(fireball, scaled)), minFireballSeconds)
}

// Minerals is the vocabulary asteroid compositions are sampled from.
var Minerals = []string{
	"Gold",
	"Cobalt",
	"Iron",
	"Manganese",
	"Molybdenum",
	"Nickel",
	"Osmium",
	"Palladium",
	"Platinum",
	"Rhenium",
	"Rhodium",
	"Ruthenium",
	"Tungsten",
}

const (
	minMinerals = 3
	maxMinerals = 7
)

// SampleMinerals returns between three and seven distinct entries of
// Minerals, in random order, joined by ", ".
func SampleMinerals(r *rand.Rand) string {
	n := minMinerals + r.IntN(maxMinerals-minMinerals+1)
	perm := r.Perm(len(Minerals))

	picked := make([]string, n)
	for i := range picked {
		picked[i] = Minerals[perm[i]]
	}
	return strings.Join(picked, ", ")
}

// AsteroidTraits are the randomly drawn attributes of an asteroid row.
type AsteroidTraits struct {
	HasSolidComposition bool
	Minerals            string
}

// NewAsteroidTraits draws a fresh set of asteroid attributes.
func NewAsteroidTraits(r *rand.Rand) AsteroidTraits {
	return AsteroidTraits{
		HasSolidComposition: randomBit(r) == 1,
		Minerals:            SampleMinerals(r),
	}
}

// CometTraits are the randomly drawn attributes of a comet row.
type CometTraits struct {
	HasIce  bool
	HasDust bool
	HasTail bool
}

// NewCometTraits draws a fresh set of comet attributes.
func NewCometTraits(r *rand.Rand) CometTraits {
	ice := randomBit(r)
	// Clamped at 1, so every comet records dust.
	dust := max(1, ice+randomBit(r))
	tail := randomBit(r)
	return CometTraits{
		HasIce:  ice == 1,
		HasDust: dust >= 1,
		HasTail: tail == 1,
	}
}

func randomBit(r *rand.Rand) int {
	return r.IntN(2)
}
