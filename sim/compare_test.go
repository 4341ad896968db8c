package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare_RunsEveryPolicyOverIndependentCopies(t *testing.T) {
	// GIVEN a shared workload
	jobs := CannedWorkloads["same-arrival"].Build()

	results, err := Compare(jobs, PolicyNames, DefaultPolicyOptions())
	require.NoError(t, err)
	require.Len(t, results, len(PolicyNames))

	// THEN every policy completed every job
	for _, r := range results {
		if len(r.Completed) != len(jobs) {
			t.Errorf("policy %s completed %d of %d jobs", r.Policy, len(r.Completed), len(jobs))
		}
		assertLifecycleInvariants(t, r.Completed)
	}

	// AND the caller's jobs were never touched by any run
	for _, j := range jobs {
		if j.RemainingTime != j.BurstTime || j.StartSet || j.CompletionSet {
			t.Errorf("input job %d mutated by comparison: %+v", j.ID, j)
		}
	}
}

func TestCompare_NonPreemptiveAndPreemptiveAgreeOnTotals(t *testing.T) {
	// every policy schedules the same total CPU demand, so the last
	// completion of any work-conserving run over a zero-gap workload is the
	// demand sum
	jobs := CannedWorkloads["same-arrival"].Build() // bursts 10 + 5 + 8 arriving at 0

	results, err := Compare(jobs, PolicyNames, DefaultPolicyOptions())
	require.NoError(t, err)

	for _, r := range results {
		var last int64
		for _, j := range r.Completed {
			if j.CompletionTime > last {
				last = j.CompletionTime
			}
		}
		if last != 23 {
			t.Errorf("policy %s: last completion = %d, want 23", r.Policy, last)
		}
	}
}

func TestCompare_UnknownPolicy_Aborts(t *testing.T) {
	jobs := CannedWorkloads["staggered"].Build()
	_, err := Compare(jobs, []string{"fifo", "lottery"}, DefaultPolicyOptions())
	require.Error(t, err)
}
