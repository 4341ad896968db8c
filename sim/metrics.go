// Tracks per-run scheduling statistics derived from completed jobs:
// turnaround (completion - arrival) and response (start - arrival).

package sim

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrNoCompletedJobs is returned when metrics are requested over an empty
// completed set; the mean of zero elements is undefined, so this is surfaced
// to the caller instead of silently reporting zero.
var ErrNoCompletedJobs = errors.New("no completed jobs to compute metrics over")

// Metrics aggregates statistics about one policy run for final reporting.
// The per-job slices are parallel and aligned to the completed-jobs order
// (completion event order, not completion-time sort).
type Metrics struct {
	AvgTurnaround float64
	AvgResponse   float64

	TurnaroundTimes []float64 // per job: completion - arrival
	ResponseTimes   []float64 // per job: start - arrival

	// Timeline holds one entry per simulated tick. Populated by the MLFQ
	// engine only; nil for every other policy.
	Timeline []TimelineEntry
}

// ComputeMetrics derives turnaround/response statistics from completed jobs,
// in the order the jobs appear in the completed collection.
// Returns ErrNoCompletedJobs on an empty collection, and an error if any job
// in the collection is missing a recorded start or completion stamp.
func ComputeMetrics(completed []*Job) (*Metrics, error) {
	if len(completed) == 0 {
		return nil, ErrNoCompletedJobs
	}

	m := &Metrics{
		TurnaroundTimes: make([]float64, len(completed)),
		ResponseTimes:   make([]float64, len(completed)),
	}
	for i, j := range completed {
		if !j.StartSet || !j.CompletionSet {
			return nil, fmt.Errorf("job %d in completed set without recorded start/completion", j.ID)
		}
		m.TurnaroundTimes[i] = float64(j.CompletionTime - j.ArrivalTime)
		m.ResponseTimes[i] = float64(j.StartTime - j.ArrivalTime)
	}
	m.AvgTurnaround = stat.Mean(m.TurnaroundTimes, nil)
	m.AvgResponse = stat.Mean(m.ResponseTimes, nil)
	return m, nil
}

// Print displays one run's aggregated metrics.
func (m *Metrics) Print(policy string) {
	fmt.Printf("\n%s:\n", policy)
	fmt.Printf("  Average Turnaround Time: %.2f\n", m.AvgTurnaround)
	fmt.Printf("  Average Response Time: %.2f\n", m.AvgResponse)
	fmt.Printf("  Jain's Fairness Index (turnaround): %.4f\n", JainsFairnessIndex(m.TurnaroundTimes))
	fmt.Printf("  Jain's Fairness Index (response): %.4f\n", JainsFairnessIndex(m.ResponseTimes))
}
