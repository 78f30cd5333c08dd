package bayesian

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a configuration for the Bayesian agent. A Config
// is fixed once an agent has been created from it.
type Config struct {
	// LearningRate is the weight given to a newly observed target over
	// the previous estimate
	LearningRate float64 `yaml:"learning_rate" json:"learning_rate"`

	// DiscountFactor is the weight given to the estimated future value
	// over the immediate reward
	DiscountFactor float64 `yaml:"discount_factor" json:"discount_factor"`

	// PrimingThreshold is the prior confidence in a state's mean
	// value: roughly the number of updates an action needs before its
	// own estimate outweighs the mean of its siblings
	PrimingThreshold int `yaml:"priming_threshold" json:"priming_threshold"`

	// FutureValueFloor is the lowest value the estimated future value
	// of a state can take in an update
	FutureValueFloor float64 `yaml:"future_value_floor" json:"future_value_floor"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		LearningRate:     0.1,
		DiscountFactor:   0.9,
		PrimingThreshold: 10,
		FutureValueFloor: 0.0,
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the
// file keep their default values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, config.Validate()
}

// CreateAgent creates the agent that the Config describes, using the
// default statistics record and a random tie-breaker seeded by seed
func (c Config) CreateAgent(seed uint64) (*Bayesian, error) {
	return New(c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !inUnitInterval(c.LearningRate) {
		return fmt.Errorf("learning rate must be in [0, 1], have %v",
			c.LearningRate)
	}
	if !inUnitInterval(c.DiscountFactor) {
		return fmt.Errorf("discount factor must be in [0, 1], have %v",
			c.DiscountFactor)
	}
	if c.PrimingThreshold < 0 {
		return fmt.Errorf("priming threshold cannot be negative, have %v",
			c.PrimingThreshold)
	}
	if math.IsNaN(c.FutureValueFloor) || math.IsInf(c.FutureValueFloor, 0) {
		return fmt.Errorf("future value floor must be finite, have %v",
			c.FutureValueFloor)
	}
	return nil
}

// inUnitInterval returns whether x is in [0, 1]. NaN is not.
func inUnitInterval(x float64) bool {
	return x >= 0 && x <= 1
}
