// Baseline scheduling policies: FIFO, SJF, STCF, and Round Robin.
// These share the Job model and engine shape with the MLFQ and CFS engines
// and serve as calibration references when comparing policies.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// FIFOPolicy runs jobs to completion in arrival order.
// Arrival ties preserve input order; non-preemptive.
type FIFOPolicy struct{}

func (p *FIFOPolicy) Name() string { return "fifo" }

// Schedule runs the FIFO policy over its own copy of the job set.
func (p *FIFOPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	jobs = CloneAll(jobs)
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].ArrivalTime < jobs[j].ArrivalTime })

	clock := int64(0)
	completed := make([]*Job, 0, len(jobs))
	for _, j := range jobs {
		if clock < j.ArrivalTime {
			// idle gap: fast-forward to the next arrival
			clock = j.ArrivalTime
		}
		j.State = StateRunning
		j.RecordStart(clock)
		clock += j.BurstTime
		j.RemainingTime = 0
		j.RecordCompletion(clock)
		j.State = StateDone
		completed = append(completed, j)
		logrus.Debugf("[fifo] job %d ran %d..%d", j.ID, j.StartTime, j.CompletionTime)
	}

	m, err := ComputeMetrics(completed)
	if err != nil {
		return nil, nil, err
	}
	return completed, m, nil
}

// SJFPolicy dispatches the arrived job with the smallest burst time.
// Ties resolve by earliest position in the ready collection (stable);
// non-preemptive once dispatched.
type SJFPolicy struct{}

func (p *SJFPolicy) Name() string { return "sjf" }

// Schedule runs the SJF policy over its own copy of the job set.
func (p *SJFPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	remaining := CloneAll(jobs)
	clock := int64(0)
	completed := make([]*Job, 0, len(remaining))

	for len(remaining) > 0 {
		// pick the shortest arrived job; strict < keeps the tie-break on
		// the first-encountered candidate
		best := -1
		for i, j := range remaining {
			if j.ArrivalTime > clock {
				continue
			}
			if best == -1 || j.BurstTime < remaining[best].BurstTime {
				best = i
			}
		}
		if best == -1 {
			clock = nextArrival(remaining)
			continue
		}

		j := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		j.State = StateRunning
		j.RecordStart(clock)
		clock += j.BurstTime
		j.RemainingTime = 0
		j.RecordCompletion(clock)
		j.State = StateDone
		completed = append(completed, j)
		logrus.Debugf("[sjf] job %d ran %d..%d", j.ID, j.StartTime, j.CompletionTime)
	}

	m, err := ComputeMetrics(completed)
	if err != nil {
		return nil, nil, err
	}
	return completed, m, nil
}

// STCFPolicy re-evaluates the shortest-remaining-time rule every tick, so a
// newly arrived shorter job preempts the current one.
type STCFPolicy struct{}

func (p *STCFPolicy) Name() string { return "stcf" }

// Schedule runs the STCF policy over its own copy of the job set.
func (p *STCFPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	remaining := CloneAll(jobs)
	clock := int64(0)
	completed := make([]*Job, 0, len(remaining))

	for len(remaining) > 0 {
		best := -1
		for i, j := range remaining {
			if j.ArrivalTime > clock {
				continue
			}
			if best == -1 || j.RemainingTime < remaining[best].RemainingTime {
				best = i
			}
		}
		if best == -1 {
			clock = nextArrival(remaining)
			continue
		}

		j := remaining[best]
		j.State = StateRunning
		j.RecordStart(clock)

		// execute for exactly one tick, then re-evaluate
		j.RemainingTime--
		clock++

		if j.RemainingTime == 0 {
			j.RecordCompletion(clock)
			j.State = StateDone
			remaining = append(remaining[:best], remaining[best+1:]...)
			completed = append(completed, j)
			logrus.Debugf("[stcf] job %d finished at %d", j.ID, clock)
		}
	}

	m, err := ComputeMetrics(completed)
	if err != nil {
		return nil, nil, err
	}
	return completed, m, nil
}

// RoundRobinPolicy cycles a FIFO ready queue, each dispatch running for
// min(quantum, remaining) ticks before re-enqueueing at the tail.
type RoundRobinPolicy struct {
	cfg RoundRobinConfig
}

// NewRoundRobinPolicy validates the configuration and constructs the engine.
func NewRoundRobinPolicy(cfg RoundRobinConfig) (*RoundRobinPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RoundRobinPolicy{cfg: cfg}, nil
}

func (p *RoundRobinPolicy) Name() string { return "round-robin" }

// Schedule runs the Round Robin policy over its own copy of the job set.
func (p *RoundRobinPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	waiting := CloneAll(jobs)
	sort.SliceStable(waiting, func(i, j int) bool { return waiting[i].ArrivalTime < waiting[j].ArrivalTime })

	clock := int64(0)
	ready := &ReadyQueue{}
	completed := make([]*Job, 0, len(waiting))

	admit := func() {
		for len(waiting) > 0 && waiting[0].ArrivalTime <= clock {
			waiting[0].State = StateReady
			ready.Enqueue(waiting[0])
			waiting = waiting[1:]
		}
	}

	for len(waiting) > 0 || ready.Len() > 0 {
		admit()
		if ready.Len() == 0 {
			clock = waiting[0].ArrivalTime
			continue
		}

		j := ready.Dequeue()
		j.State = StateRunning
		j.RecordStart(clock)

		execTime := min(p.cfg.Quantum, j.RemainingTime)
		j.RemainingTime -= execTime
		clock += execTime

		// jobs that arrived during the slice join the tail before the
		// preempted job is re-enqueued
		admit()

		if j.RemainingTime > 0 {
			j.State = StateReady
			ready.Enqueue(j)
		} else {
			j.RecordCompletion(clock)
			j.State = StateDone
			completed = append(completed, j)
			logrus.Debugf("[round-robin] job %d finished at %d", j.ID, clock)
		}
	}

	m, err := ComputeMetrics(completed)
	if err != nil {
		return nil, nil, err
	}
	return completed, m, nil
}

// nextArrival returns the earliest arrival time among pending jobs.
func nextArrival(pending []*Job) int64 {
	next := pending[0].ArrivalTime
	for _, j := range pending[1:] {
		if j.ArrivalTime < next {
			next = j.ArrivalTime
		}
	}
	return next
}
