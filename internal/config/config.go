package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PlannerConfig is the planner.yaml file layout.
type PlannerConfig struct {
	Version int `yaml:"version"`

	Endpoints struct {
		Oracle   string `yaml:"oracle"`
		Motion   string `yaml:"motion"`
		Actuator string `yaml:"actuator"`
	} `yaml:"endpoints"`

	Planner struct {
		MotionBudget      time.Duration `yaml:"motion_budget"`
		OracleTimeout     time.Duration `yaml:"oracle_timeout"`
		ExecTimeout       time.Duration `yaml:"exec_timeout"`
		StallRetries      int           `yaml:"stall_retries"`
		StallBudgetGrowth float64       `yaml:"stall_budget_growth"`
		PoseTolerance     float64       `yaml:"pose_tolerance"`
		Seed              int64         `yaml:"seed"`
	} `yaml:"planner"`

	Checkpoint struct {
		Dir      string `yaml:"dir"`
		InMemory bool   `yaml:"in_memory"`
	} `yaml:"checkpoint"`

	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// OracleEndpoint returns the oracle address, defaulting to localhost.
func (c *PlannerConfig) OracleEndpoint() string {
	if c.Endpoints.Oracle == "" {
		return "localhost:50051"
	}
	return c.Endpoints.Oracle
}

// MotionEndpoint returns the motion synthesis address, defaulting to localhost.
func (c *PlannerConfig) MotionEndpoint() string {
	if c.Endpoints.Motion == "" {
		return "localhost:50052"
	}
	return c.Endpoints.Motion
}

// ActuatorEndpoint returns the actuator address, defaulting to localhost.
func (c *PlannerConfig) ActuatorEndpoint() string {
	if c.Endpoints.Actuator == "" {
		return "localhost:50053"
	}
	return c.Endpoints.Actuator
}

// MetricsAddr returns the metrics listen address, defaulting to :9090.
func (c *PlannerConfig) MetricsAddr() string {
	if c.Metrics.Addr == "" {
		return ":9090"
	}
	return c.Metrics.Addr
}

// LoadPlannerConfig reads and validates a planner.yaml file.
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg PlannerConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported planner.yaml version: %d", cfg.Version)
	}
	if cfg.Planner.StallBudgetGrowth != 0 && cfg.Planner.StallBudgetGrowth < 1 {
		return nil, fmt.Errorf("stall_budget_growth must be >= 1, got %v", cfg.Planner.StallBudgetGrowth)
	}

	return &cfg, nil
}
