// Defines the Job struct that models a single task competing for the CPU.
// Tracks arrival time, CPU demand, progress, and timestamps for
// turnaround/response calculations.

package sim

import (
	"fmt"
	"sort"
)

// JobState represents the lifecycle state of a job.
type JobState string

const (
	StateWaiting JobState = "waiting" // not yet arrived
	StateReady   JobState = "ready"   // queued, eligible to run
	StateRunning JobState = "running" // occupies the CPU this tick
	StateIOWait  JobState = "io_wait" // blocked on simulated I/O
	StateDone    JobState = "done"    // remaining time reached zero
)

// Job models a single task's lifecycle in the simulation.
// Identity fields (ID, ArrivalTime, BurstTime, IODuration, IOOperations) are
// fixed at construction; the rest is engine-owned state, mutated only by the
// policy running the job's copy.
type Job struct {
	ID          int   // Unique identifier, stable for the job's lifetime
	ArrivalTime int64 // Tick at which the job becomes eligible to run
	BurstTime   int64 // Total CPU ticks required to finish

	RemainingTime int64    // CPU ticks still required; reaches exactly 0 at completion
	State         JobState // waiting, ready, running, io_wait, done
	Priority      int      // Current queue level (0 = highest); MLFQ only
	TimeInQueue   int64    // CPU ticks accumulated at the current level since last demotion/boost

	// StartTime/CompletionTime are meaningful only when the matching
	// recorded flag is set; never do arithmetic on an unrecorded stamp.
	StartSet       bool
	StartTime      int64
	CompletionSet  bool
	CompletionTime int64

	WaitingForIO bool
	IOReturnTime int64 // valid only while WaitingForIO
	IODuration   int64 // ticks the job stays blocked once it yields

	// IOOperations holds ascending cumulative-CPU-time offsets at which the
	// job yields for I/O. Each offset is consumed exactly once, in order.
	IOOperations []int64
}

// NewJob constructs a job with fixed identity and CPU demand.
// RemainingTime starts at burstTime and ioOperations are kept in ascending
// order regardless of the order the caller supplied them in.
func NewJob(id int, arrivalTime, burstTime int64) *Job {
	return &Job{
		ID:            id,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		RemainingTime: burstTime,
		State:         StateWaiting,
		IODuration:    5,
	}
}

// WithIO attaches I/O yield points to the job: offsets are cumulative CPU
// ticks at which the job yields, duration is how long each wait lasts.
func (j *Job) WithIO(offsets []int64, duration int64) *Job {
	ops := make([]int64, len(offsets))
	copy(ops, offsets)
	sort.Slice(ops, func(a, b int) bool { return ops[a] < ops[b] })
	j.IOOperations = ops
	if duration > 0 {
		j.IODuration = duration
	}
	return j
}

// NeedsIO reports whether the job must yield for I/O after having consumed
// cpuTimeUsed ticks of CPU, and consumes the triggering offset. Offsets only
// match exactly; a skipped offset never re-triggers later.
func (j *Job) NeedsIO(cpuTimeUsed int64) bool {
	if len(j.IOOperations) > 0 && cpuTimeUsed == j.IOOperations[0] {
		j.IOOperations = j.IOOperations[1:]
		return true
	}
	return false
}

// CPUTimeConsumed returns the cumulative CPU ticks the job has executed.
func (j *Job) CPUTimeConsumed() int64 {
	return j.BurstTime - j.RemainingTime
}

// RecordStart sets the first-dispatch stamp. Only the first call takes effect.
func (j *Job) RecordStart(now int64) {
	if !j.StartSet {
		j.StartSet = true
		j.StartTime = now
	}
}

// RecordCompletion sets the completion stamp. Only the first call takes effect.
func (j *Job) RecordCompletion(now int64) {
	if !j.CompletionSet {
		j.CompletionSet = true
		j.CompletionTime = now
	}
}

// Clone returns an independent copy of the job, including its remaining I/O
// schedule. Engines clone their whole input up front so concurrent or
// sequential runs of different policies never share mutable job state.
func (j *Job) Clone() *Job {
	c := *j
	c.IOOperations = make([]int64, len(j.IOOperations))
	copy(c.IOOperations, j.IOOperations)
	return &c
}

// CloneAll deep-copies a job collection, preserving order.
func CloneAll(jobs []*Job) []*Job {
	out := make([]*Job, len(jobs))
	for i, j := range jobs {
		out[i] = j.Clone()
	}
	return out
}

func (j *Job) String() string {
	return fmt.Sprintf("Job: (ID: %d, State: %s, Remaining: %d, Arrival: %d)", j.ID, j.State, j.RemainingTime, j.ArrivalTime)
}
