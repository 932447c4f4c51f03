package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/chrisdamba/restaurantsim/internal/models"
	"github.com/chrisdamba/restaurantsim/internal/prompt"
	"github.com/chrisdamba/restaurantsim/internal/report"
	"github.com/chrisdamba/restaurantsim/internal/simulator"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restaurantsim",
	Short: "Monte Carlo simulation of a restaurant's monthly profit",
	Long: `restaurantsim draws meals sold, labor cost and market price for every simulated
month of a small restaurant and reports the average monthly profit, optionally
under a partnership deal with a guaranteed floor and a shared ceiling.

Without --months the run options are asked on standard input.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		interactive := !viper.IsSet("months")
		return runSimulation(cfg, interactive, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.restaurantsim.yaml)")

	rootCmd.Flags().Uint64("seed", 0, "Random seed for simulation (0 derives one from the clock)")
	rootCmd.Flags().Int("months", 0, "Number of months to simulate (asked interactively when unset)")
	rootCmd.Flags().Bool("debug", false, "Print every simulated month")
	rootCmd.Flags().Bool("partnership", false, "Apply the partnership deal to monthly profits")
	rootCmd.Flags().Bool("summary", false, "Print the profit distribution after the average")
	rootCmd.Flags().Bool("trace", false, "Stream simulated months as JSON lines to stdout")
	rootCmd.Flags().Bool("kafka-enabled", false, "Stream simulated months to Kafka")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("kafka-topic", "restaurant_months", "Kafka topic for simulated months")

	// flag names use dashes, config keys use underscores
	for _, name := range []string{"seed", "months", "debug", "partnership", "summary", "trace"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
	_ = viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	_ = viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	_ = viper.BindPFlag("kafka_topic", rootCmd.Flags().Lookup("kafka-topic"))
}

func initConfig() {
	if cfgFile != "" {
		// read by models.LoadConfig, which reports a missing file
		return
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".restaurantsim")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "restaurantsim",
		ReportTimestamp: true,
	})
}

// askRunOptions asks the three interactive questions and stores the answers on cfg.
func askRunOptions(cfg *models.Config, p *prompt.Prompter) error {
	var err error
	if cfg.Debug, err = p.YesNo("Debug mode? (y/n): "); err != nil {
		return err
	}
	if cfg.UsePartnership, err = p.YesNo("Partnership? (y/n): "); err != nil {
		return err
	}
	if cfg.Months, err = p.Int("Enter number of simulations: "); err != nil {
		return fmt.Errorf("invalid number of simulations: %w", err)
	}
	return nil
}

func runSimulation(cfg *models.Config, interactive bool, in io.Reader, out, errOut io.Writer) error {
	if interactive {
		if err := askRunOptions(cfg, prompt.New(in, out)); err != nil {
			return err
		}
	}
	logger := newLogger(errOut, cfg.Debug)

	restaurant, err := simulator.NewRestaurant(cfg)
	if err != nil {
		return err
	}
	sim := simulator.NewSimulator(restaurant, cfg.Seed, logger)
	logger.Info("Simulation starts", "run", sim.RunID, "seed", sim.Seed(), "months", cfg.Months, "partnership", cfg.UsePartnership)

	records, err := sim.SimulateMonths(cfg.Months, cfg.UsePartnership)
	if err != nil {
		return err
	}
	if cfg.Debug {
		if err := report.PrintMonths(out, records); err != nil {
			return err
		}
	}

	output, err := simulator.DetermineOutputDestination(cfg, out, logger)
	if err != nil {
		return err
	}
	if output != nil {
		defer func() {
			if err := output.Close(); err != nil {
				logger.Warn("closing output", "err", err)
			}
		}()
		var bar *progressbar.ProgressBar
		if cfg.KafkaEnabled {
			bar = progressbar.NewOptions(len(records),
				progressbar.OptionSetWriter(errOut),
				progressbar.OptionSetDescription("publishing months"),
			)
		}
		if err := simulator.PublishMonths(output, cfg.KafkaTopic, records, bar); err != nil {
			return err
		}
	}

	summary, err := report.Summarize(records, cfg.UsePartnership, restaurant)
	if err != nil {
		return err
	}
	return report.Print(out, summary, cfg.Summary)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
