package simulator

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// MealsModel is the number of meals sold per month, normally distributed.
type MealsModel struct {
	Mean float64
	Std  float64
}

// Sample returns n draws from Normal(Mean, Std), each rounded half to even.
// Std is not validated.
func (m MealsModel) Sample(src rand.Source, n int) []float64 {
	dist := distuv.Normal{Mu: m.Mean, Sigma: m.Std, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.RoundToEven(dist.Rand())
	}
	return out
}

// LaborModel is the monthly labor cost, uniform over [Min, Max).
type LaborModel struct {
	Min float64
	Max float64
}

func (l LaborModel) Sample(src rand.Source, n int) []float64 {
	dist := distuv.Uniform{Min: l.Min, Max: l.Max, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// MarketModel is the monthly market price of a meal, drawn from a fixed
// price list according to per-price probabilities.
type MarketModel struct {
	prices        []float64
	probabilities []float64
}

// NewMarketModel validates and copies the price list and its weights.
// Probabilities must be in [0, 1] and match prices in length. They are not
// required to sum to 1; sampling uses them as relative weights.
func NewMarketModel(prices, probabilities []float64) (*MarketModel, error) {
	if len(prices) != len(probabilities) {
		return nil, &ConfigurationError{Model: "market", Reason: "length mismatch"}
	}
	if len(prices) == 0 {
		return nil, &ConfigurationError{Model: "market", Reason: "no prices"}
	}
	for _, p := range probabilities {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return nil, &ConfigurationError{Model: "market", Reason: "probability out of range"}
		}
	}
	if floats.Sum(probabilities) == 0 {
		return nil, &ConfigurationError{Model: "market", Reason: "probabilities sum to zero"}
	}

	return &MarketModel{
		prices:        append([]float64(nil), prices...),
		probabilities: append([]float64(nil), probabilities...),
	}, nil
}

func (m *MarketModel) Prices() []float64 {
	return append([]float64(nil), m.prices...)
}

func (m *MarketModel) Probabilities() []float64 {
	return append([]float64(nil), m.probabilities...)
}

// ExpectedPrice is the weighted mean price with the weights normalized.
func (m *MarketModel) ExpectedPrice() float64 {
	return floats.Dot(m.prices, m.probabilities) / floats.Sum(m.probabilities)
}

// Sample draws n prices independently, with replacement.
func (m *MarketModel) Sample(src rand.Source, n int) []float64 {
	dist := distuv.NewCategorical(m.probabilities, src)
	out := make([]float64, n)
	for i := range out {
		out[i] = m.prices[int(dist.Rand())]
	}
	return out
}
