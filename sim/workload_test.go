package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkloadSpec_Validate_RejectsBadJobs(t *testing.T) {
	cases := []struct {
		name string
		spec WorkloadSpec
	}{
		{"no jobs", WorkloadSpec{}},
		{"zero burst", WorkloadSpec{Jobs: []JobSpec{{ID: 1, BurstTime: 0}}}},
		{"negative arrival", WorkloadSpec{Jobs: []JobSpec{{ID: 1, ArrivalTime: -1, BurstTime: 5}}}},
		{"duplicate id", WorkloadSpec{Jobs: []JobSpec{{ID: 1, BurstTime: 5}, {ID: 1, BurstTime: 3}}}},
		{"io offset at burst", WorkloadSpec{Jobs: []JobSpec{{ID: 1, BurstTime: 5, IOOperations: []int64{5}}}}},
		{"io offsets not increasing", WorkloadSpec{Jobs: []JobSpec{{ID: 1, BurstTime: 5, IOOperations: []int64{2, 2}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.spec.Validate())
		})
	}
}

func TestWorkloadSpec_Build_MaterializesJobs(t *testing.T) {
	spec := WorkloadSpec{Jobs: []JobSpec{
		{ID: 1, ArrivalTime: 0, BurstTime: 10, IOOperations: []int64{3, 6}, IODuration: 2},
		{ID: 2, ArrivalTime: 5, BurstTime: 3},
	}}
	require.NoError(t, spec.Validate())

	jobs := spec.Build()

	require.Len(t, jobs, 2)
	assert.Equal(t, int64(10), jobs[0].RemainingTime)
	assert.Equal(t, []int64{3, 6}, jobs[0].IOOperations)
	assert.Equal(t, int64(2), jobs[0].IODuration)
	assert.Empty(t, jobs[1].IOOperations)
}

func TestLoadWorkloadSpec_RoundTrip(t *testing.T) {
	// GIVEN a workload YAML on disk
	path := filepath.Join(t.TempDir(), "workload.yaml")
	y := `name: io test
jobs:
  - id: 1
    arrival_time: 0
    burst_time: 10
    io_operations: [3, 6]
    io_duration: 2
  - id: 2
    arrival_time: 1
    burst_time: 8
`
	require.NoError(t, os.WriteFile(path, []byte(y), 0o644))

	spec, err := LoadWorkloadSpec(path)

	require.NoError(t, err)
	assert.Equal(t, "io test", spec.Name)
	require.Len(t, spec.Jobs, 2)
	assert.Equal(t, []int64{3, 6}, spec.Jobs[0].IOOperations)
}

func TestLoadWorkloadSpec_InvalidSpec_Fails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - id: 1\n    burst_time: 0\n"), 0o644))

	_, err := LoadWorkloadSpec(path)
	assert.Error(t, err)
}

func TestCannedWorkloads_AllValid(t *testing.T) {
	for name, spec := range CannedWorkloads {
		if err := spec.Validate(); err != nil {
			t.Errorf("canned workload %q invalid: %v", name, err)
		}
	}
}
