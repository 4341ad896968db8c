package sim

import "fmt"

// MLFQConfig groups construction parameters for the MLFQ engine.
// Zero-length Quantum/Allotment lists are filled with defaults by
// ApplyDefaults; explicitly provided lists must match Levels exactly.
type MLFQConfig struct {
	Levels        int     `yaml:"levels"`         // number of priority levels (must be > 0)
	Quantum       []int64 `yaml:"quantum"`        // per-level time quantum (len must equal Levels)
	Allotment     []int64 `yaml:"allotment"`      // per-level time allotment before demotion (defaults to 2x quantum)
	BoostInterval int64   `yaml:"boost_interval"` // ticks between priority boosts; 0 disables boosting
}

// DefaultMLFQConfig returns the baseline 3-level configuration with doubling
// quanta [1, 2, 4] and allotments at twice the quantum.
func DefaultMLFQConfig() MLFQConfig {
	cfg := MLFQConfig{Levels: 3}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset Quantum/Allotment lists: quantum doubles per
// level starting at 1, allotment is twice the quantum. Provided lists are
// left untouched for Validate to check.
func (c *MLFQConfig) ApplyDefaults() {
	if len(c.Quantum) == 0 && c.Levels > 0 {
		c.Quantum = make([]int64, c.Levels)
		q := int64(1)
		for i := range c.Quantum {
			c.Quantum[i] = q
			q *= 2
		}
	}
	if len(c.Allotment) == 0 {
		c.Allotment = make([]int64, len(c.Quantum))
		for i, q := range c.Quantum {
			c.Allotment[i] = 2 * q
		}
	}
}

// Validate checks the configuration at construction time. Invalid
// configuration is fatal to the run and never silently coerced.
func (c *MLFQConfig) Validate() error {
	if c.Levels <= 0 {
		return fmt.Errorf("mlfq: levels must be > 0, got %d", c.Levels)
	}
	if len(c.Quantum) != c.Levels {
		return fmt.Errorf("mlfq: quantum list length %d does not match %d levels", len(c.Quantum), c.Levels)
	}
	if len(c.Allotment) != c.Levels {
		return fmt.Errorf("mlfq: allotment list length %d does not match %d levels", len(c.Allotment), c.Levels)
	}
	for i, q := range c.Quantum {
		if q <= 0 {
			return fmt.Errorf("mlfq: quantum[%d] must be > 0, got %d", i, q)
		}
	}
	for i, a := range c.Allotment {
		if a <= 0 {
			return fmt.Errorf("mlfq: allotment[%d] must be > 0, got %d", i, a)
		}
	}
	if c.BoostInterval < 0 {
		return fmt.Errorf("mlfq: boost interval must be >= 0, got %d", c.BoostInterval)
	}
	return nil
}

// RoundRobinConfig groups construction parameters for the Round Robin engine.
type RoundRobinConfig struct {
	Quantum int64 `yaml:"quantum"` // ticks per dispatch (must be > 0)
}

// Validate checks the configuration at construction time.
func (c *RoundRobinConfig) Validate() error {
	if c.Quantum <= 0 {
		return fmt.Errorf("round robin: quantum must be > 0, got %d", c.Quantum)
	}
	return nil
}

// CFSConfig groups construction parameters for the CFS engine.
// MinGranularity is accepted and validated but governs nothing in the tick
// loop; it is carried for interface parity with real CFS.
type CFSConfig struct {
	MinGranularity int64 `yaml:"min_granularity"` // accepted, currently inert
}

// Validate checks the configuration at construction time.
func (c *CFSConfig) Validate() error {
	if c.MinGranularity < 0 {
		return fmt.Errorf("cfs: min granularity must be >= 0, got %d", c.MinGranularity)
	}
	return nil
}
