package simulator

import "fmt"

// ConfigurationError reports inconsistent or out-of-domain model parameters.
// It is returned at construction, before any sampling happens.
type ConfigurationError struct {
	Model  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s configuration: %s", e.Model, e.Reason)
}

// ValidationError reports a request the simulator or the report cannot serve,
// such as a negative month count or an empty profit series.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
