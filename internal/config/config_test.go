package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadPlannerConfig(t *testing.T) {
	path := writeConfig(t, `
version: 1
endpoints:
  oracle: oracle:50051
  motion: motion:50052
  actuator: arm:50053
planner:
  motion_budget: 8s
  oracle_timeout: 15s
  stall_retries: 3
  stall_budget_growth: 1.5
  seed: 42
checkpoint:
  dir: /var/lib/tamp
metrics:
  addr: ":9100"
logging:
  level: debug
  format: json
`)

	cfg, err := LoadPlannerConfig(path)
	if err != nil {
		t.Fatalf("LoadPlannerConfig: %v", err)
	}

	if got, want := cfg.OracleEndpoint(), "oracle:50051"; got != want {
		t.Errorf("OracleEndpoint = %q, want %q", got, want)
	}
	if got, want := cfg.Planner.MotionBudget, 8*time.Second; got != want {
		t.Errorf("MotionBudget = %v, want %v", got, want)
	}
	if got, want := cfg.Planner.StallRetries, 3; got != want {
		t.Errorf("StallRetries = %d, want %d", got, want)
	}
	if got, want := cfg.Planner.Seed, int64(42); got != want {
		t.Errorf("Seed = %d, want %d", got, want)
	}
	if got, want := cfg.MetricsAddr(), ":9100"; got != want {
		t.Errorf("MetricsAddr = %q, want %q", got, want)
	}
	if got, want := cfg.Checkpoint.Dir, "/var/lib/tamp"; got != want {
		t.Errorf("Checkpoint.Dir = %q, want %q", got, want)
	}
}

func TestLoadPlannerConfigDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\n")

	cfg, err := LoadPlannerConfig(path)
	if err != nil {
		t.Fatalf("LoadPlannerConfig: %v", err)
	}

	if got, want := cfg.OracleEndpoint(), "localhost:50051"; got != want {
		t.Errorf("OracleEndpoint = %q, want %q", got, want)
	}
	if got, want := cfg.MotionEndpoint(), "localhost:50052"; got != want {
		t.Errorf("MotionEndpoint = %q, want %q", got, want)
	}
	if got, want := cfg.ActuatorEndpoint(), "localhost:50053"; got != want {
		t.Errorf("ActuatorEndpoint = %q, want %q", got, want)
	}
	if got, want := cfg.MetricsAddr(), ":9090"; got != want {
		t.Errorf("MetricsAddr = %q, want %q", got, want)
	}
}

func TestLoadPlannerConfigRejectsVersion(t *testing.T) {
	path := writeConfig(t, "version: 2\n")
	if _, err := LoadPlannerConfig(path); err == nil {
		t.Fatal("expected version error, got nil")
	}
}

func TestLoadPlannerConfigRejectsBadGrowth(t *testing.T) {
	path := writeConfig(t, "version: 1\nplanner:\n  stall_budget_growth: 0.5\n")
	if _, err := LoadPlannerConfig(path); err == nil {
		t.Fatal("expected growth validation error, got nil")
	}
}
