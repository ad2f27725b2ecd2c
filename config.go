package rectfit

import "errors"

// Config holds the numeric parameters of a search. It is consumed once by
// NewSearch and held constant for the run.
type Config struct {
	// Steps is the number of outer iterations. Zero runs no steps.
	Steps int

	// ClimbSteps is the number of hill-climbing trials per phase.
	// Zero turns every phase into a no-op.
	ClimbSteps int

	// ColorMaxChange bounds the per-channel color mutation delta.
	ColorMaxChange int

	// PositionMaxChange bounds the per-coordinate position mutation delta.
	PositionMaxChange int

	// AlphaMin and AlphaMax bound the shape alpha for sampling and clamping.
	AlphaMin int
	AlphaMax int

	// Background is the color of the initial canvas. Its alpha is forced
	// to 255.
	Background Color

	// Seed seeds the default random source when no WithRand option is given.
	Seed uint64
}

// DefaultConfig returns the default search parameters.
func DefaultConfig() Config {
	return Config{
		Steps:             1000,
		ClimbSteps:        100,
		ColorMaxChange:    20,
		PositionMaxChange: 10,
		AlphaMin:          100,
		AlphaMax:          255,
		Background:        White,
		Seed:              1,
	}
}

// Validate reports every field outside its domain. Values are never
// clamped; the returned error joins one *ConfigError per violation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, value int, reason string) {
		if !ok {
			errs = append(errs, &ConfigError{Field: field, Value: value, Reason: reason})
		}
	}

	check(c.Steps >= 0, "Steps", c.Steps, "must be >= 0")
	check(c.ClimbSteps >= 0, "ClimbSteps", c.ClimbSteps, "must be >= 0")
	check(c.ColorMaxChange >= 0, "ColorMaxChange", c.ColorMaxChange, "must be >= 0")
	check(c.PositionMaxChange >= 0, "PositionMaxChange", c.PositionMaxChange, "must be >= 0")
	check(c.AlphaMin >= 0 && c.AlphaMin <= 255, "AlphaMin", c.AlphaMin, "must be in [0, 255]")
	check(c.AlphaMax >= 0 && c.AlphaMax <= 255, "AlphaMax", c.AlphaMax, "must be in [0, 255]")
	check(c.AlphaMin <= c.AlphaMax, "AlphaMin", c.AlphaMin, "must not exceed AlphaMax")

	return errors.Join(errs...)
}
