// Runs several policies over the same workload and reports their statistics
// side by side. Each policy schedules its own deep copy of the jobs, so the
// comparison never leaks state between runs.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ComparisonResult holds one policy's outcome within a comparison run.
type ComparisonResult struct {
	Policy    string
	Completed []*Job
	Metrics   *Metrics
}

// Compare runs each named policy over the job set and collects results in
// the given policy order. A failing policy construction or run aborts the
// comparison.
func Compare(jobs []*Job, policyNames []string, opts PolicyOptions) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(policyNames))
	for _, name := range policyNames {
		p, err := NewPolicy(name, opts)
		if err != nil {
			return nil, err
		}
		logrus.Infof("running policy %s over %d jobs", name, len(jobs))
		completed, m, err := p.Schedule(jobs)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		results = append(results, ComparisonResult{Policy: name, Completed: completed, Metrics: m})
	}
	return results, nil
}

// PrintComparison displays the comparison report for one workload.
func PrintComparison(workload string, results []ComparisonResult) {
	fmt.Println("================================================================================")
	fmt.Println("SCHEDULER COMPARISON")
	if workload != "" {
		fmt.Printf("Workload: %s\n", workload)
	}
	fmt.Println("================================================================================")
	for _, r := range results {
		r.Metrics.Print(r.Policy)
	}
}
