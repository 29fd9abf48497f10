package physics

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and LoadConfig for out-of-range
// tunables.
var ErrInvalidConfig = errors.New("physics: invalid config")

// Config holds the integrator tunables. The defaults are empirical; tune
// them to the scale of the game's world units.
type Config struct {
	// StepLimit is the largest displacement allowed in one substep. Walls at
	// least this thick cannot be tunneled through.
	StepLimit float64 `yaml:"step_limit"`
	// ExitTolerance is the margin used to re-test a contact before reporting
	// that it ended.
	ExitTolerance float64 `yaml:"exit_tolerance"`
	// ContactEpsilon grows box-box tests so edge-touching boxes collide.
	ContactEpsilon float64 `yaml:"contact_epsilon"`
	// MaxDeltaTime caps the frame delta fed to a tick. Zero disables the cap.
	MaxDeltaTime float64 `yaml:"max_delta_time"`
	// MaxSubsteps caps substeps per body per tick. Zero leaves only a fixed
	// ceiling of about a million; with a cap, substeps may exceed StepLimit.
	MaxSubsteps int `yaml:"max_substeps"`
}

// DefaultConfig returns the stock tunables.
func DefaultConfig() Config {
	return Config{
		StepLimit:      0.25,
		ExitTolerance:  2.5,
		ContactEpsilon: 0.01,
		MaxDeltaTime:   0.1,
	}
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case !(c.StepLimit > 0):
		return fmt.Errorf("%w: step_limit must be positive, got %v", ErrInvalidConfig, c.StepLimit)
	case c.ExitTolerance < 0:
		return fmt.Errorf("%w: exit_tolerance must not be negative, got %v", ErrInvalidConfig, c.ExitTolerance)
	case c.ContactEpsilon < 0:
		return fmt.Errorf("%w: contact_epsilon must not be negative, got %v", ErrInvalidConfig, c.ContactEpsilon)
	case c.MaxDeltaTime < 0:
		return fmt.Errorf("%w: max_delta_time must not be negative, got %v", ErrInvalidConfig, c.MaxDeltaTime)
	case c.MaxSubsteps < 0:
		return fmt.Errorf("%w: max_substeps must not be negative, got %d", ErrInvalidConfig, c.MaxSubsteps)
	}
	return nil
}

// LoadConfig parses YAML tunables on top of DefaultConfig. Keys missing from
// data keep their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("physics: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ClampDelta limits dt to [0, MaxDeltaTime].
func (c Config) ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if c.MaxDeltaTime > 0 && dt > c.MaxDeltaTime {
		return c.MaxDeltaTime
	}
	return dt
}
