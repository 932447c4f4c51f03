package simulator

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealsModelSample(t *testing.T) {
	src := rand.NewPCG(1, 2)
	meals := MealsModel{Mean: 3000, Std: 1000}.Sample(src, 1000)

	require.Len(t, meals, 1000)
	for _, m := range meals {
		assert.Equal(t, math.RoundToEven(m), m, "meals sold must be whole")
	}
}

func TestMealsModelZeroStd(t *testing.T) {
	meals := MealsModel{Mean: 41.5, Std: 0}.Sample(rand.NewPCG(1, 2), 5)
	assert.Equal(t, []float64{42, 42, 42, 42, 42}, meals)
}

func TestLaborModelSample(t *testing.T) {
	labor := LaborModel{Min: 5040, Max: 6860}.Sample(rand.NewPCG(3, 4), 10000)

	require.Len(t, labor, 10000)
	for _, l := range labor {
		assert.GreaterOrEqual(t, l, 5040.0)
		assert.Less(t, l, 6860.0)
	}
}

func TestSampleZeroMonths(t *testing.T) {
	src := rand.NewPCG(5, 6)
	market, err := NewMarketModel([]float64{10}, []float64{1})
	require.NoError(t, err)

	assert.Empty(t, MealsModel{Mean: 1, Std: 1}.Sample(src, 0))
	assert.Empty(t, LaborModel{Min: 1, Max: 2}.Sample(src, 0))
	assert.Empty(t, market.Sample(src, 0))
}

func TestNewMarketModel(t *testing.T) {
	tests := []struct {
		name          string
		prices        []float64
		probabilities []float64
		reason        string
	}{
		{
			name:          "valid",
			prices:        []float64{20, 18.5, 16.5, 15},
			probabilities: []float64{0.25, 0.35, 0.30, 0.10},
		},
		{
			name:          "sum below one is accepted",
			prices:        []float64{20, 15},
			probabilities: []float64{0.2, 0.2},
		},
		{
			name:          "length mismatch",
			prices:        []float64{20, 18.5},
			probabilities: []float64{1},
			reason:        "length mismatch",
		},
		{
			name:          "probability above one",
			prices:        []float64{20, 18.5},
			probabilities: []float64{1.5, 0},
			reason:        "probability out of range",
		},
		{
			name:          "negative probability",
			prices:        []float64{20, 18.5},
			probabilities: []float64{-0.1, 1},
			reason:        "probability out of range",
		},
		{
			name:          "NaN probability",
			prices:        []float64{20},
			probabilities: []float64{math.NaN()},
			reason:        "probability out of range",
		},
		{
			name:   "no prices",
			reason: "no prices",
		},
		{
			name:          "all zero",
			prices:        []float64{20, 18.5},
			probabilities: []float64{0, 0},
			reason:        "probabilities sum to zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMarketModel(tt.prices, tt.probabilities)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.prices, m.Prices())
				assert.Equal(t, tt.probabilities, m.Probabilities())
				return
			}
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
			assert.Nil(t, m)
		})
	}
}

func TestMarketModelCopiesInputs(t *testing.T) {
	prices := []float64{20, 15}
	m, err := NewMarketModel(prices, []float64{0.5, 0.5})
	require.NoError(t, err)

	prices[0] = 99
	assert.Equal(t, []float64{20, 15}, m.Prices())
}

func TestMarketModelSample(t *testing.T) {
	m, err := NewMarketModel([]float64{20, 18.5, 16.5, 15, 99}, []float64{0.25, 0.35, 0.30, 0.10, 0})
	require.NoError(t, err)

	const n = 100000
	counts := map[float64]int{}
	for _, p := range m.Sample(rand.NewPCG(7, 8), n) {
		counts[p]++
	}

	assert.Zero(t, counts[99], "zero-weight price must never be drawn")
	assert.InDelta(t, 0.25, float64(counts[20])/n, 0.01)
	assert.InDelta(t, 0.35, float64(counts[18.5])/n, 0.01)
	assert.InDelta(t, 0.30, float64(counts[16.5])/n, 0.01)
	assert.InDelta(t, 0.10, float64(counts[15])/n, 0.01)
}

func TestMarketModelExpectedPrice(t *testing.T) {
	m, err := NewMarketModel([]float64{20, 18.5, 16.5, 15}, []float64{0.25, 0.35, 0.30, 0.10})
	require.NoError(t, err)
	assert.InDelta(t, 17.925, m.ExpectedPrice(), 1e-9)

	unnormalized, err := NewMarketModel([]float64{10, 20}, []float64{0.1, 0.1})
	require.NoError(t, err)
	assert.InDelta(t, 15, unnormalized.ExpectedPrice(), 1e-9)
}
