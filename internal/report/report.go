// Package report aggregates simulated months into the figures printed by the CLI.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/chrisdamba/restaurantsim/internal/models"
	"github.com/chrisdamba/restaurantsim/internal/simulator"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean is the arithmetic mean of series. An empty series is rejected rather
// than reported as NaN.
func Mean(series simulator.ProfitSeries) (float64, error) {
	if len(series) == 0 {
		return 0, &simulator.ValidationError{Field: "profit series", Reason: "empty profit series"}
	}
	return stat.Mean(series, nil), nil
}

type Summary struct {
	Months      int
	Partnership bool
	Mean        float64
	Expected    float64
	StdDev      float64
	Min         float64
	Max         float64
	P5          float64
	P50         float64
	P95         float64
	// months lifted to the floor / blended above the cap
	AtFloor  int
	AboveCap int
}

// ExpectedProfit is the analytic mean monthly profit of r without a
// partnership deal. The three draws are independent, so the expectation of
// meals*(price-cost) factors into E[meals]*(E[price]-cost).
func ExpectedProfit(r *simulator.Restaurant) float64 {
	labor := (r.Labor.Min + r.Labor.Max) / 2
	return r.Meals.Mean*(r.Market.ExpectedPrice()-r.CostPerMeal) - r.NonLaborCost - labor
}

// Summarize computes the distribution of profits over records simulated for r.
func Summarize(records []models.MonthRecord, usePartnership bool, r *simulator.Restaurant) (*Summary, error) {
	series := make(simulator.ProfitSeries, len(records))
	for i, rec := range records {
		series[i] = rec.Profit
	}
	mean, err := Mean(series)
	if err != nil {
		return nil, err
	}

	sorted := append([]float64(nil), series...)
	sort.Float64s(sorted)

	s := &Summary{
		Months:      len(series),
		Partnership: usePartnership,
		Mean:        mean,
		Expected:    ExpectedProfit(r),
		Min:         floats.Min(sorted),
		Max:         floats.Max(sorted),
		P5:          stat.Quantile(0.05, stat.Empirical, sorted, nil),
		P50:         stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:         stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(series) > 1 {
		s.StdDev = stat.StdDev(series, nil)
	}

	if usePartnership {
		policy := r.Partnership
		for _, rec := range records {
			switch {
			case rec.RawProfit < policy.Floor:
				s.AtFloor++
			case rec.RawProfit > policy.CapThreshold:
				s.AboveCap++
			}
		}
	}
	return s, nil
}

// FormatCurrency renders v as dollars with two decimals, e.g. "$9930.12".
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("$%.2f", v)
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Print writes the average profit line, followed by the distribution when
// verbose is set.
func Print(w io.Writer, s *Summary, verbose bool) error {
	if _, err := fmt.Fprintf(w, "Average profit: %s\n", FormatCurrency(s.Mean)); err != nil {
		return err
	}
	if !verbose {
		return nil
	}

	type line struct{ label, value string }
	lines := []line{
		{"Months simulated", strconv.Itoa(s.Months)},
		{"Expected without deal", FormatCurrency(s.Expected)},
		{"Std deviation", FormatCurrency(s.StdDev)},
		{"Minimum", FormatCurrency(s.Min)},
		{"5th percentile", FormatCurrency(s.P5)},
		{"Median", FormatCurrency(s.P50)},
		{"95th percentile", FormatCurrency(s.P95)},
		{"Maximum", FormatCurrency(s.Max)},
	}
	if s.Partnership {
		lines = append(lines,
			line{"Months at floor", strconv.Itoa(s.AtFloor)},
			line{"Months above cap", strconv.Itoa(s.AboveCap)},
		)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %s\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}

// PrintMonths writes one block per simulated month, the debug view of a run.
func PrintMonths(w io.Writer, records []models.MonthRecord) error {
	for _, rec := range records {
		_, err := fmt.Fprintf(w, "Month %d:\nMeals sold: %s\nMarket price: $%s\nLabor cost: $%s\nProfit: %s\n\n",
			rec.Month,
			strconv.FormatFloat(rec.MealsSold, 'f', -1, 64),
			strconv.FormatFloat(rec.MarketPrice, 'f', -1, 64),
			strconv.FormatFloat(rec.LaborCost, 'f', -1, 64),
			FormatCurrency(rec.Profit),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
