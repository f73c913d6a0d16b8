// Package sampling provides a seeded pseudo-random generator and the
// distribution draws used to build synthetic portfolios.
package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/iwvelando/credit-portfolio-sim/pkg/mathutil"
)

// Generator wraps a single deterministic random stream. All draws advance
// the same stream, so the order of calls defines the output.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded from seed. Equal seeds yield equal
// streams.
func NewGenerator(seed int64) *Generator {
	s := uint64(seed)
	return &Generator{rng: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

// Uniform returns a float in [0, 1).
func (g *Generator) Uniform() float64 {
	return g.rng.Float64()
}

// Normal returns a draw from N(mean, sigma²).
func (g *Generator) Normal(mean, sigma float64) float64 {
	return mean + sigma*g.rng.NormFloat64()
}

// ClippedNormal returns a normal draw bounded to [lo, hi].
func (g *Generator) ClippedNormal(mean, sigma, lo, hi float64) float64 {
	return mathutil.Clip(g.Normal(mean, sigma), lo, hi)
}

// LogNormal returns a draw whose logarithm is N(log(median), sigma²).
func (g *Generator) LogNormal(median, sigma float64) float64 {
	return math.Exp(math.Log(median) + sigma*g.rng.NormFloat64())
}

// ClippedLogNormal returns a log-normal draw bounded to [lo, hi].
func (g *Generator) ClippedLogNormal(median, sigma, lo, hi float64) float64 {
	return mathutil.Clip(g.LogNormal(median, sigma), lo, hi)
}

// IntRange returns an integer drawn uniformly from [lo, hi], both inclusive.
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// NoSuccess is returned by Geometric when no success is drawn within a
// representable number of trials.
const NoSuccess = math.MaxInt32

// Geometric returns the trial number of the first success in a sequence of
// Bernoulli trials with success probability p. The result is always >= 1 and
// at most NoSuccess; a non-positive p never succeeds and yields NoSuccess.
func (g *Generator) Geometric(p float64) int {
	if p >= 1 {
		return 1
	}
	if p <= 0 {
		return NoSuccess
	}
	// 1-U lies in (0, 1], keeping the logarithm finite.
	k := math.Ceil(math.Log(1.0-g.Uniform()) / math.Log1p(-p))
	if k < 1 {
		return 1
	}
	if k >= NoSuccess {
		return NoSuccess
	}
	return int(k)
}

// Categorical returns the index drawn according to weights. Weights need not
// sum to one; they are normalized by their total.
func (g *Generator) Categorical(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	u := g.Uniform() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if u < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
