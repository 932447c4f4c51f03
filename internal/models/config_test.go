package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, MealsConfig{Mean: 3000, Std: 1000}, cfg.Meals)
	assert.Equal(t, LaborConfig{Min: 5040, Max: 6860}, cfg.Labor)
	assert.Equal(t, []float64{20, 18.5, 16.5, 15}, cfg.Market.Prices)
	assert.Equal(t, []float64{0.25, 0.35, 0.30, 0.10}, cfg.Market.Probabilities)
	assert.Equal(t, 11.0, cfg.CostPerMeal)
	assert.Equal(t, 3995.0, cfg.NonLaborCost)
	assert.Equal(t, PartnershipConfig{Floor: 3500, CapThreshold: 9000, CapShare: 0.9}, cfg.Deal)
	assert.Equal(t, "restaurant_months", cfg.KafkaTopic)
	assert.Zero(t, cfg.Months)
	assert.Zero(t, cfg.Seed)
	assert.False(t, cfg.UsePartnership)
}

func TestDecodeConfigEnvOverrides(t *testing.T) {
	t.Setenv("RESTAURANTSIM_MEALS_MEAN", "2500")
	t.Setenv("RESTAURANTSIM_PARTNERSHIP", "true")
	t.Setenv("RESTAURANTSIM_SEED", "99")
	t.Setenv("RESTAURANTSIM_MARKET_PRICES", "10,12.5")
	t.Setenv("RESTAURANTSIM_MARKET_PROBABILITIES", "0.4,0.6")

	cfg, err := DecodeConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, 2500.0, cfg.Meals.Mean)
	assert.True(t, cfg.UsePartnership)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, []float64{10, 12.5}, cfg.Market.Prices)
	assert.Equal(t, []float64{0.4, 0.6}, cfg.Market.Probabilities)
}

func TestDecodeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurant.yaml")
	content := `
months: 120
cost_per_meal: 9.5
labor:
  min: 4000
  max: 5000
deal:
  floor: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := DecodeConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 120, cfg.Months)
	assert.Equal(t, 9.5, cfg.CostPerMeal)
	assert.Equal(t, LaborConfig{Min: 4000, Max: 5000}, cfg.Labor)
	assert.Equal(t, 1000.0, cfg.Deal.Floor)
	assert.Equal(t, 9000.0, cfg.Deal.CapThreshold, "unset keys keep their default")
}
