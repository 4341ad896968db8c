// Completely Fair Scheduler analogue.
//
// Every ready job carries a virtual runtime counting the CPU ticks it has
// consumed; the engine always runs the job with the lowest vruntime, which
// naturally balances CPU time across competitors. Newcomers start at the
// minimum vruntime held by any ready job so they compete immediately instead
// of being penalized for time accrued before they existed.
//
// This is far simpler than Linux CFS: no red-black tree, no nice-value
// weights, and the minimum-granularity parameter is carried but inert.

package sim

import (
	"github.com/sirupsen/logrus"
)

// CFSPolicy is the single-ready-set, vruntime-ordered fairness engine.
type CFSPolicy struct {
	cfg CFSConfig
}

// NewCFSPolicy validates the configuration and constructs the engine.
func NewCFSPolicy(cfg CFSConfig) (*CFSPolicy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CFSPolicy{cfg: cfg}, nil
}

func (p *CFSPolicy) Name() string { return "cfs" }

// cfsRun holds all mutable state for one CFS invocation.
// The vruntime side-table is keyed by job ID and entries are dropped the
// moment a job completes; a finished job must not keep fairness state.
type cfsRun struct {
	clock     int64
	waiting   []*Job // not yet arrived, ascending arrival order (stable)
	ready     []*Job // insertion order is the tie-break order
	vruntime  map[int]int64
	completed []*Job
}

// Schedule runs the CFS engine over its own copy of the job set.
func (p *CFSPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	r := &cfsRun{
		waiting:  sortedByArrival(CloneAll(jobs)),
		vruntime: make(map[int]int64),
	}

	for len(r.waiting) > 0 || len(r.ready) > 0 {
		r.admitArrivals()

		if len(r.ready) == 0 {
			// idle gap: fast-forward to the next arrival
			r.clock = r.waiting[0].ArrivalTime
			continue
		}

		// pick the ready job with the smallest vruntime; strict < keeps the
		// tie-break on the earliest insertion into the ready set
		best := 0
		for i, j := range r.ready[1:] {
			if r.vruntime[j.ID] < r.vruntime[r.ready[best].ID] {
				best = i + 1
			}
		}
		j := r.ready[best]
		j.State = StateRunning
		j.RecordStart(r.clock)

		// execute for exactly one tick
		j.RemainingTime--
		r.clock++
		r.vruntime[j.ID]++

		// jobs arriving during the tick join before the completion check
		r.admitArrivals()

		if j.RemainingTime == 0 {
			j.RecordCompletion(r.clock)
			j.State = StateDone
			r.ready = append(r.ready[:best], r.ready[best+1:]...)
			delete(r.vruntime, j.ID)
			r.completed = append(r.completed, j)
			logrus.Debugf("[cfs] tick %d: job %d completed", r.clock, j.ID)
		} else {
			j.State = StateReady
		}
	}

	m, err := ComputeMetrics(r.completed)
	if err != nil {
		return nil, nil, err
	}
	return r.completed, m, nil
}

// admitArrivals moves newly arrived jobs into the ready set with the minimum
// vruntime currently held by any ready job (0 when the set is empty).
func (r *cfsRun) admitArrivals() {
	for len(r.waiting) > 0 && r.waiting[0].ArrivalTime <= r.clock {
		j := r.waiting[0]
		r.waiting = r.waiting[1:]
		j.State = StateReady
		r.vruntime[j.ID] = r.minVruntime()
		r.ready = append(r.ready, j)
		logrus.Debugf("[cfs] tick %d: job %d arrived with vruntime %d", r.clock, j.ID, r.vruntime[j.ID])
	}
}

// minVruntime returns the smallest vruntime over the ready set, or 0 when no
// job is ready. Iterates the ready slice, not the map, for determinism.
func (r *cfsRun) minVruntime() int64 {
	if len(r.ready) == 0 {
		return 0
	}
	m := r.vruntime[r.ready[0].ID]
	for _, j := range r.ready[1:] {
		if v := r.vruntime[j.ID]; v < m {
			m = v
		}
	}
	return m
}
