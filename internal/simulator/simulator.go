package simulator

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chrisdamba/restaurantsim/internal/models"
	"github.com/lucsky/cuid"
)

// second PCG word; runs are identified by their seed alone
const pcgStream = 0x5eed

// Restaurant holds every model of one simulated restaurant.
type Restaurant struct {
	Meals        MealsModel
	Labor        LaborModel
	Market       *MarketModel
	CostPerMeal  float64
	NonLaborCost float64
	Partnership  PartnershipPolicy
}

// NewRestaurant builds the restaurant described by config. Market validation
// errors are returned as *ConfigurationError.
func NewRestaurant(config *models.Config) (*Restaurant, error) {
	market, err := NewMarketModel(config.Market.Prices, config.Market.Probabilities)
	if err != nil {
		return nil, err
	}

	return &Restaurant{
		Meals:        MealsModel{Mean: config.Meals.Mean, Std: config.Meals.Std},
		Labor:        LaborModel{Min: config.Labor.Min, Max: config.Labor.Max},
		Market:       market,
		CostPerMeal:  config.CostPerMeal,
		NonLaborCost: config.NonLaborCost,
		Partnership: PartnershipPolicy{
			Floor:        config.Deal.Floor,
			CapThreshold: config.Deal.CapThreshold,
			CapShare:     config.Deal.CapShare,
		},
	}, nil
}

// Profit is the raw profit of one month before any partnership adjustment.
func (r *Restaurant) Profit(meals, price, labor float64) float64 {
	return meals*(price-r.CostPerMeal) - r.NonLaborCost - labor
}

// ProfitSeries holds one profit per simulated month, in month order.
type ProfitSeries []float64

// Simulator runs a restaurant against its own random stream. A Simulator is
// not safe for concurrent use.
type Simulator struct {
	Restaurant *Restaurant
	RunID      string
	seed       uint64
	rng        *rand.PCG
	logger     *log.Logger
}

// NewSimulator seeds a fresh generator for restaurant. A zero seed is replaced
// by one derived from the clock; Seed reports the value actually used.
func NewSimulator(restaurant *Restaurant, seed uint64, logger *log.Logger) *Simulator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{
		Restaurant: restaurant,
		RunID:      cuid.New(),
		seed:       seed,
		rng:        rand.NewPCG(seed, pcgStream),
		logger:     logger,
	}
}

func (s *Simulator) Seed() uint64 {
	return s.seed
}

// SimulateMonths draws every month of the run and returns one record per
// month. All meal draws happen first, then labor, then market prices, so a
// given seed always yields the same records.
func (s *Simulator) SimulateMonths(months int, usePartnership bool) ([]models.MonthRecord, error) {
	if months < 0 {
		return nil, &ValidationError{Field: "months", Reason: "must not be negative"}
	}

	r := s.Restaurant
	meals := r.Meals.Sample(s.rng, months)
	labor := r.Labor.Sample(s.rng, months)
	market := r.Market.Sample(s.rng, months)

	records := make([]models.MonthRecord, months)
	for i := 0; i < months; i++ {
		raw := r.Profit(meals[i], market[i], labor[i])
		profit := raw
		if usePartnership {
			profit = r.Partnership.Apply(raw)
		}
		records[i] = models.MonthRecord{
			RunID:       s.RunID,
			Month:       i + 1,
			MealsSold:   meals[i],
			MarketPrice: market[i],
			LaborCost:   labor[i],
			RawProfit:   raw,
			Profit:      profit,
			Partnership: usePartnership,
		}
	}

	s.logger.Debug("simulated months", "run", s.RunID, "seed", s.seed, "months", months, "partnership", usePartnership)
	return records, nil
}

// Simulate returns only the monthly profits of SimulateMonths.
func (s *Simulator) Simulate(months int, usePartnership bool) (ProfitSeries, error) {
	records, err := s.SimulateMonths(months, usePartnership)
	if err != nil {
		return nil, err
	}
	series := make(ProfitSeries, len(records))
	for i, rec := range records {
		series[i] = rec.Profit
	}
	return series, nil
}
