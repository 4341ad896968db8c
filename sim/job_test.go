package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJob_InitializesRemainingToBurst(t *testing.T) {
	// GIVEN a job with burst 10
	j := NewJob(1, 5, 10)

	// THEN remaining time starts at the full burst and no stamps are recorded
	if j.RemainingTime != 10 {
		t.Errorf("RemainingTime = %d, want 10", j.RemainingTime)
	}
	if j.StartSet || j.CompletionSet {
		t.Errorf("fresh job has recorded stamps: start=%v completion=%v", j.StartSet, j.CompletionSet)
	}
	if j.State != StateWaiting {
		t.Errorf("State = %q, want %q", j.State, StateWaiting)
	}
}

func TestJob_WithIO_SortsOffsets(t *testing.T) {
	// GIVEN offsets supplied out of order
	j := NewJob(1, 0, 10).WithIO([]int64{6, 3}, 2)

	// THEN they are kept ascending
	assert.Equal(t, []int64{3, 6}, j.IOOperations)
	assert.Equal(t, int64(2), j.IODuration)
}

func TestJob_NeedsIO_ExactMatchConsumesOffset(t *testing.T) {
	j := NewJob(1, 0, 10).WithIO([]int64{3, 6}, 2)

	// WHEN the consumed CPU time does not match the next offset
	if j.NeedsIO(2) {
		t.Error("NeedsIO(2) = true, want false (no partial matches)")
	}
	if len(j.IOOperations) != 2 {
		t.Errorf("offset consumed on non-match: %v", j.IOOperations)
	}

	// WHEN the consumed CPU time matches exactly
	if !j.NeedsIO(3) {
		t.Error("NeedsIO(3) = false, want true")
	}
	// THEN the offset is consumed and never re-triggers
	if j.NeedsIO(3) {
		t.Error("NeedsIO(3) re-triggered a consumed offset")
	}
	assert.Equal(t, []int64{6}, j.IOOperations)
}

func TestJob_RecordStart_SetsOnlyOnce(t *testing.T) {
	j := NewJob(1, 0, 5)
	j.RecordStart(3)
	j.RecordStart(7)
	assert.True(t, j.StartSet)
	assert.Equal(t, int64(3), j.StartTime)
}

func TestJob_RecordCompletion_SetsOnlyOnce(t *testing.T) {
	j := NewJob(1, 0, 5)
	j.RecordCompletion(5)
	j.RecordCompletion(9)
	assert.True(t, j.CompletionSet)
	assert.Equal(t, int64(5), j.CompletionTime)
}

func TestJob_Clone_IsIndependent(t *testing.T) {
	// GIVEN a job with an I/O schedule
	orig := NewJob(1, 0, 10).WithIO([]int64{3}, 2)

	// WHEN the clone mutates
	c := orig.Clone()
	c.RemainingTime = 1
	c.NeedsIO(3)

	// THEN the original is untouched
	if orig.RemainingTime != 10 {
		t.Errorf("clone mutation leaked into original: RemainingTime = %d", orig.RemainingTime)
	}
	if len(orig.IOOperations) != 1 {
		t.Errorf("clone consumed the original's I/O offset: %v", orig.IOOperations)
	}
}

func TestCloneAll_PreservesOrder(t *testing.T) {
	jobs := []*Job{NewJob(3, 0, 1), NewJob(1, 0, 1), NewJob(2, 0, 1)}
	copies := CloneAll(jobs)
	for i := range jobs {
		if copies[i].ID != jobs[i].ID {
			t.Errorf("order changed at %d: got %d, want %d", i, copies[i].ID, jobs[i].ID)
		}
		if copies[i] == jobs[i] {
			t.Errorf("CloneAll returned an aliased job at %d", i)
		}
	}
}
