package simulator

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/chrisdamba/restaurantsim/internal/models"
	"github.com/chrisdamba/restaurantsim/internal/simulator/producers"
	"github.com/schollz/progressbar/v3"
)

// OutputDestination receives the simulated months as JSON messages.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct {
	w io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error {
	return nil
}

// DetermineOutputDestination picks where simulated months are streamed: kafka
// when enabled, console when tracing, nowhere otherwise (nil destination).
func DetermineOutputDestination(config *models.Config, console io.Writer, logger *log.Logger) (OutputDestination, error) {
	if !config.KafkaEnabled {
		if config.Trace {
			return NewConsoleOutput(console), nil
		}
		return nil, nil
	}
	producer, err := producers.NewSaramaProducer(config)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("streaming months to kafka", "brokers", config.KafkaBrokerList, "topic", config.KafkaTopic)
	}
	return producer, nil
}

// PublishMonths writes one message per record to out. bar may be nil.
func PublishMonths(out OutputDestination, topic string, records []models.MonthRecord, bar *progressbar.ProgressBar) error {
	for _, rec := range records {
		msg, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode month %d: %w", rec.Month, err)
		}
		if err := out.WriteMessage(topic, msg); err != nil {
			return fmt.Errorf("failed to publish month %d: %w", rec.Month, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}
