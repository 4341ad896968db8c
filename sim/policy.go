package sim

import "fmt"

// Policy is the interface every scheduling engine implements.
// Schedule deep-copies its input before touching it, runs the policy's tick
// loop to exhaustion, and returns the completed jobs in completion event
// order together with the run's metrics. Implementations own all of their
// mutable state per run; nothing is shared across invocations.
type Policy interface {
	Name() string
	Schedule(jobs []*Job) ([]*Job, *Metrics, error)
}

// PolicyOptions carries the construction parameters a named policy may need.
// Fields irrelevant to the requested policy are ignored.
type PolicyOptions struct {
	MLFQ       MLFQConfig
	RoundRobin RoundRobinConfig
	CFS        CFSConfig
}

// DefaultPolicyOptions returns options matching the simulator's stock
// configuration: 3-level MLFQ with doubling quanta, RR quantum 2.
func DefaultPolicyOptions() PolicyOptions {
	return PolicyOptions{
		MLFQ:       DefaultMLFQConfig(),
		RoundRobin: RoundRobinConfig{Quantum: 2},
		CFS:        CFSConfig{MinGranularity: 1},
	}
}

// ValidPolicies is the set of recognized policy names.
// Shared by IsValidPolicy and NewPolicy to avoid duplication.
var ValidPolicies = map[string]bool{
	"fifo":        true,
	"sjf":         true,
	"stcf":        true,
	"round-robin": true,
	"mlfq":        true,
	"cfs":         true,
}

// PolicyNames lists the recognized policy names in comparison-report order.
var PolicyNames = []string{"mlfq", "stcf", "round-robin", "fifo", "sjf", "cfs"}

// IsValidPolicy returns true if name is a recognized policy name.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// NewPolicy creates a Policy by name, validating the relevant options at
// construction time. Valid names are defined in ValidPolicies.
func NewPolicy(name string, opts PolicyOptions) (Policy, error) {
	switch name {
	case "fifo":
		return &FIFOPolicy{}, nil
	case "sjf":
		return &SJFPolicy{}, nil
	case "stcf":
		return &STCFPolicy{}, nil
	case "round-robin":
		return NewRoundRobinPolicy(opts.RoundRobin)
	case "mlfq":
		return NewMLFQPolicy(opts.MLFQ)
	case "cfs":
		return NewCFSPolicy(opts.CFS)
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
