package physics

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("step_limit: 0.5\nmax_substeps: 64\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StepLimit != 0.5 {
		t.Errorf("StepLimit = %v, want 0.5", cfg.StepLimit)
	}
	if cfg.MaxSubsteps != 64 {
		t.Errorf("MaxSubsteps = %v, want 64", cfg.MaxSubsteps)
	}
	def := DefaultConfig()
	if cfg.ExitTolerance != def.ExitTolerance || cfg.ContactEpsilon != def.ContactEpsilon {
		t.Errorf("unset keys changed: %+v", cfg)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	_, err := LoadConfig([]byte("step_limit: 0\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
	_, err = LoadConfig([]byte("exit_tolerance: -1\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig([]byte("step_limit: [1, 2\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("parse error should not be ErrInvalidConfig")
	}
}

func TestClampDelta(t *testing.T) {
	cfg := DefaultConfig()
	assertNear(t, "negative", cfg.ClampDelta(-1), 0)
	assertNear(t, "small", cfg.ClampDelta(0.016), 0.016)
	assertNear(t, "large", cfg.ClampDelta(5), 0.1)

	cfg.MaxDeltaTime = 0
	assertNear(t, "uncapped", cfg.ClampDelta(5), 5)
}
