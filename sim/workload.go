// YAML workload specifications: the job sets a simulation run schedules.
// Loaded from file, validated before any engine sees them.

package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Name string    `yaml:"name,omitempty"`
	Jobs []JobSpec `yaml:"jobs"`
}

// JobSpec defines a single job's fixed parameters.
type JobSpec struct {
	ID           int     `yaml:"id"`
	ArrivalTime  int64   `yaml:"arrival_time"`
	BurstTime    int64   `yaml:"burst_time"`
	Priority     int     `yaml:"priority,omitempty"` // initial queue level; MLFQ admits at level 0 regardless

	IOOperations []int64 `yaml:"io_operations,omitempty"` // ascending cumulative-CPU-time offsets
	IODuration   int64   `yaml:"io_duration,omitempty"`   // ticks blocked per I/O (default 5)
}

// LoadWorkloadSpec reads, parses, and validates a YAML workload file.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks every job spec. A zero or negative burst time, a duplicate
// ID, or an out-of-range I/O offset is a configuration error, fatal before
// the run starts.
func (s *WorkloadSpec) Validate() error {
	if len(s.Jobs) == 0 {
		return fmt.Errorf("workload %q has no jobs", s.Name)
	}
	seen := make(map[int]bool, len(s.Jobs))
	for _, js := range s.Jobs {
		if seen[js.ID] {
			return fmt.Errorf("duplicate job id %d", js.ID)
		}
		seen[js.ID] = true
		if js.ArrivalTime < 0 {
			return fmt.Errorf("job %d: arrival time must be >= 0, got %d", js.ID, js.ArrivalTime)
		}
		if js.BurstTime <= 0 {
			return fmt.Errorf("job %d: burst time must be > 0, got %d", js.ID, js.BurstTime)
		}
		if js.Priority < 0 {
			return fmt.Errorf("job %d: priority must be >= 0, got %d", js.ID, js.Priority)
		}
		if len(js.IOOperations) > 0 && js.IODuration < 0 {
			return fmt.Errorf("job %d: io duration must be >= 0, got %d", js.ID, js.IODuration)
		}
		prev := int64(-1)
		for _, off := range js.IOOperations {
			if off < 0 || off >= js.BurstTime {
				return fmt.Errorf("job %d: io offset %d out of range [0, %d)", js.ID, off, js.BurstTime)
			}
			if off <= prev {
				return fmt.Errorf("job %d: io offsets must be strictly increasing", js.ID)
			}
			prev = off
		}
	}
	return nil
}

// Build materializes the spec into Job instances, in spec order.
func (s *WorkloadSpec) Build() []*Job {
	jobs := make([]*Job, len(s.Jobs))
	for i, js := range s.Jobs {
		j := NewJob(js.ID, js.ArrivalTime, js.BurstTime)
		j.Priority = js.Priority
		if len(js.IOOperations) > 0 {
			j.WithIO(js.IOOperations, js.IODuration)
		}
		jobs[i] = j
	}
	return jobs
}

// CannedWorkloads are the stock comparison scenarios, by name.
var CannedWorkloads = map[string]*WorkloadSpec{
	"same-arrival": {
		Name: "Jobs arriving at same time",
		Jobs: []JobSpec{
			{ID: 1, ArrivalTime: 0, BurstTime: 10},
			{ID: 2, ArrivalTime: 0, BurstTime: 5},
			{ID: 3, ArrivalTime: 0, BurstTime: 8},
		},
	},
	"staggered": {
		Name: "Staggered arrivals",
		Jobs: []JobSpec{
			{ID: 1, ArrivalTime: 0, BurstTime: 15},
			{ID: 2, ArrivalTime: 5, BurstTime: 3},
			{ID: 3, ArrivalTime: 7, BurstTime: 4},
			{ID: 4, ArrivalTime: 10, BurstTime: 2},
		},
	},
	"long-vs-short": {
		Name: "One long job with many short jobs",
		Jobs: []JobSpec{
			{ID: 1, ArrivalTime: 0, BurstTime: 100},
			{ID: 2, ArrivalTime: 10, BurstTime: 5},
			{ID: 3, ArrivalTime: 15, BurstTime: 5},
			{ID: 4, ArrivalTime: 20, BurstTime: 5},
			{ID: 5, ArrivalTime: 25, BurstTime: 5},
			{ID: 6, ArrivalTime: 30, BurstTime: 5},
		},
	},
}
