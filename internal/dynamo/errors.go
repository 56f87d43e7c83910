package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrBatchSize indicates a history batch whose length differs from the particle count.
	ErrBatchSize = errors.New("dynamo: batch size does not match particle count")

	// ErrInvalidConfig indicates a configuration value outside its valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid configuration")

	// ErrNonFinite indicates a particle whose position or velocity became NaN or Inf.
	ErrNonFinite = errors.New("dynamo: particle state is not finite")

	// ErrUnknownSink indicates a render sink name with no registered factory.
	ErrUnknownSink = errors.New("dynamo: unknown render sink")
)

// TickError wraps an error with the tick and particle slot it was observed at.
type TickError struct {
	Tick    int
	Time    float64
	Slot    int
	Wrapped error
}

func (e *TickError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f) slot %d: %v", e.Tick, e.Time, e.Slot, e.Wrapped)
}

func (e *TickError) Unwrap() error {
	return e.Wrapped
}
