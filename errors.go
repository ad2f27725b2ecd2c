package rectfit

import (
	"errors"
	"fmt"
)

// Search errors.
var (
	// ErrDimensionMismatch is returned when two images that must share a
	// size do not. It indicates a collaborator contract violation.
	ErrDimensionMismatch = errors.New("rectfit: image dimensions mismatch")

	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("rectfit: invalid config")

	// ErrEmptyTarget is returned when the target image has no pixels.
	ErrEmptyTarget = errors.New("rectfit: empty target image")
)

// ConfigError reports a configuration value outside its documented domain.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rectfit: invalid config: %s = %d: %s", e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// dimensionError wraps ErrDimensionMismatch with both sizes.
func dimensionError(aw, ah, bw, bh int) error {
	return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, aw, ah, bw, bh)
}
