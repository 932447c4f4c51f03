package models

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RESTAURANTSIM_MONTHS.
const EnvPrefix = "RESTAURANTSIM"

type MealsConfig struct {
	Mean float64 `mapstructure:"mean"`
	Std  float64 `mapstructure:"std"`
}

type LaborConfig struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

type MarketConfig struct {
	Prices        []float64 `mapstructure:"prices"`
	Probabilities []float64 `mapstructure:"probabilities"`
}

type PartnershipConfig struct {
	Floor        float64 `mapstructure:"floor"`
	CapThreshold float64 `mapstructure:"cap_threshold"`
	CapShare     float64 `mapstructure:"cap_share"`
}

type Config struct {
	Seed           uint64            `mapstructure:"seed"`
	Months         int               `mapstructure:"months"`
	Debug          bool              `mapstructure:"debug"`
	UsePartnership bool              `mapstructure:"partnership"`
	Summary        bool              `mapstructure:"summary"`
	Trace          bool              `mapstructure:"trace"`
	Meals          MealsConfig       `mapstructure:"meals"`
	Labor          LaborConfig       `mapstructure:"labor"`
	Market         MarketConfig      `mapstructure:"market"`
	CostPerMeal    float64           `mapstructure:"cost_per_meal"`
	NonLaborCost   float64           `mapstructure:"non_labor_cost"`
	Deal           PartnershipConfig `mapstructure:"deal"`

	// Kafka trace of simulated months
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`
}

// SetDefaults registers the reference restaurant on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("debug", false)
	v.SetDefault("partnership", false)
	v.SetDefault("summary", false)
	v.SetDefault("trace", false)
	v.SetDefault("meals.mean", 3000)
	v.SetDefault("meals.std", 1000)
	v.SetDefault("labor.min", 5040)
	v.SetDefault("labor.max", 6860)
	v.SetDefault("market.prices", []float64{20.00, 18.50, 16.50, 15.00})
	v.SetDefault("market.probabilities", []float64{0.25, 0.35, 0.30, 0.10})
	v.SetDefault("cost_per_meal", 11)
	v.SetDefault("non_labor_cost", 3995)
	v.SetDefault("deal.floor", 3500)
	v.SetDefault("deal.cap_threshold", 9000)
	v.SetDefault("deal.cap_share", 0.9)
	v.SetDefault("kafka_enabled", false)
	v.SetDefault("kafka_broker_list", "localhost:9092")
	v.SetDefault("kafka_topic", "restaurant_months")
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.GetViper()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return DecodeConfig(v)
}

// DecodeConfig binds environment overrides on v and decodes it into a Config.
func DecodeConfig(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.WeaklyTypedInput = true
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
