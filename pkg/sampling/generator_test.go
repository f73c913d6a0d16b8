package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(7)
	b := NewGenerator(7)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(), b.Uniform())
		require.Equal(t, a.Normal(0, 1), b.Normal(0, 1))
		require.Equal(t, a.Geometric(0.1), b.Geometric(0.1))
	}
}

func TestGeneratorSeedsDiffer(t *testing.T) {
	a := NewGenerator(1)
	b := NewGenerator(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Uniform() == b.Uniform() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestClippedDrawsStayInBounds(t *testing.T) {
	g := NewGenerator(42)
	for i := 0; i < 5000; i++ {
		v := g.ClippedNormal(0.075, 0.02, 0.03, 0.15)
		require.GreaterOrEqual(t, v, 0.03)
		require.LessOrEqual(t, v, 0.15)

		p := g.ClippedLogNormal(2500, 0.7, 400, 15000)
		require.GreaterOrEqual(t, p, 400.0)
		require.LessOrEqual(t, p, 15000.0)
	}
}

func TestLogNormalMedian(t *testing.T) {
	g := NewGenerator(3)
	const n = 20000
	below := 0
	for i := 0; i < n; i++ {
		if g.LogNormal(60000, 0.5) < 60000 {
			below++
		}
	}
	assert.InDelta(t, 0.5, float64(below)/n, 0.02)
}

func TestIntRangeInclusive(t *testing.T) {
	g := NewGenerator(11)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := g.IntRange(6, 36)
		require.GreaterOrEqual(t, v, 6)
		require.LessOrEqual(t, v, 36)
		seen[v] = true
	}
	assert.True(t, seen[6], "lower bound never drawn")
	assert.True(t, seen[36], "upper bound never drawn")
	assert.Equal(t, 5, g.IntRange(5, 5))
}

func TestGeometric(t *testing.T) {
	tests := []struct {
		name string
		p    float64
	}{
		{"Payroll-like hazard", 0.002},
		{"Card-like hazard", 0.0125},
		{"High hazard", 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(99)
			const n = 20000
			sum := 0.0
			for i := 0; i < n; i++ {
				k := g.Geometric(tt.p)
				require.GreaterOrEqual(t, k, 1)
				sum += float64(k)
			}
			mean := sum / n
			assert.InEpsilon(t, 1/tt.p, mean, 0.05)
		})
	}

	g := NewGenerator(1)
	assert.Equal(t, 1, g.Geometric(1))
	assert.Equal(t, NoSuccess, g.Geometric(0))
	assert.Equal(t, NoSuccess, g.Geometric(-0.5))
	assert.Equal(t, NoSuccess, g.Geometric(1e-300), "vanishing hazards saturate at NoSuccess")
}

func TestCategorical(t *testing.T) {
	g := NewGenerator(5)
	weights := []float64{0.45, 0.35, 0.20}
	counts := make([]int, len(weights))
	const n = 50000
	for i := 0; i < n; i++ {
		counts[g.Categorical(weights)]++
	}
	for i, w := range weights {
		assert.InDelta(t, w, float64(counts[i])/n, 0.01, "weight %d", i)
	}
}
