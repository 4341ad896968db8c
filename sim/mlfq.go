// Multi-Level Feedback Queue engine.
//
// Jobs enter at the highest priority level and are demoted as they burn
// through their per-level time allotment; a periodic priority boost moves
// everything back to the top level to prevent starvation; jobs that yield the
// CPU for I/O keep their level across the wait. The engine advances a virtual
// clock one tick at a time and records a timeline entry per tick.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// MLFQPolicy is the multi-queue, priority-feedback scheduling engine.
type MLFQPolicy struct {
	cfg MLFQConfig
}

// NewMLFQPolicy applies defaults, validates the configuration, and constructs
// the engine. Mismatched quantum/allotment lists are fatal here, not coerced.
func NewMLFQPolicy(cfg MLFQConfig) (*MLFQPolicy, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MLFQPolicy{cfg: cfg}, nil
}

func (p *MLFQPolicy) Name() string { return "mlfq" }

// mlfqRun holds all mutable state for one MLFQ invocation. It is created
// fresh per Schedule call so concurrent runs never share queues or clocks.
type mlfqRun struct {
	cfg    MLFQConfig
	queues []*ReadyQueue // one FIFO per priority level, index 0 = highest

	waiting []*Job // not yet arrived, ascending arrival order (stable)
	ioWait  []*Job // blocked on simulated I/O, insertion order

	running   *Job
	budget    int64 // quantum ticks left in the current dispatch
	pendingIO bool  // running job yielded during the previous execute phase

	clock      int64
	sinceBoost int64

	completed []*Job
	timeline  []TimelineEntry
}

// Schedule runs the MLFQ engine over its own copy of the job set and returns
// the completed jobs plus metrics including the per-tick timeline.
func (p *MLFQPolicy) Schedule(jobs []*Job) ([]*Job, *Metrics, error) {
	r := &mlfqRun{
		cfg:     p.cfg,
		queues:  make([]*ReadyQueue, p.cfg.Levels),
		waiting: sortedByArrival(CloneAll(jobs)),
	}
	for i := range r.queues {
		r.queues[i] = &ReadyQueue{}
	}

	for !r.done() {
		r.tick()
	}

	m, err := ComputeMetrics(r.completed)
	if err != nil {
		return nil, nil, err
	}
	m.Timeline = r.timeline
	return r.completed, m, nil
}

// done reports whether every job has reached the completed set.
func (r *mlfqRun) done() bool {
	if len(r.waiting) > 0 || len(r.ioWait) > 0 || r.running != nil {
		return false
	}
	for _, q := range r.queues {
		if q.Len() > 0 {
			return false
		}
	}
	return true
}

// tick advances the simulation by exactly one tick. The phase order is fixed:
// boost, I/O returns, arrivals, retire/requeue, select, execute, advance.
func (r *mlfqRun) tick() {
	if r.cfg.BoostInterval > 0 && r.sinceBoost >= r.cfg.BoostInterval {
		r.boost()
		r.sinceBoost = 0
	}
	r.returnFromIO()
	r.admitArrivals()
	r.retireRunning()
	if r.done() {
		// the retire phase moved the last job to the completed set;
		// no CPU tick is consumed
		return
	}
	r.selectNext()
	r.execute()
	r.clock++
	r.sinceBoost++
}

// boost moves every queued job and the running job to level 0 and resets
// their time-in-queue. Jobs in I/O wait are untouched; they come back at the
// level they left at.
func (r *mlfqRun) boost() {
	logrus.Debugf("[mlfq] tick %d: priority boost", r.clock)
	var boosted []*Job
	for _, q := range r.queues {
		boosted = append(boosted, q.Drain()...)
	}
	for _, j := range boosted {
		j.Priority = 0
		j.TimeInQueue = 0
		r.queues[0].Enqueue(j)
	}
	// a running job that yielded on the previous tick is logically already
	// in I/O wait; it keeps its level like every other I/O waiter
	if r.running != nil && !r.pendingIO {
		r.running.Priority = 0
		r.running.TimeInQueue = 0
	}
}

// returnFromIO re-enqueues jobs whose I/O wait has elapsed, at the priority
// level they held when they yielded.
func (r *mlfqRun) returnFromIO() {
	stillWaiting := r.ioWait[:0]
	for _, j := range r.ioWait {
		if r.clock >= j.IOReturnTime {
			j.WaitingForIO = false
			j.State = StateReady
			r.queues[j.Priority].Enqueue(j)
			logrus.Debugf("[mlfq] tick %d: job %d returned from I/O at level %d", r.clock, j.ID, j.Priority)
		} else {
			stillWaiting = append(stillWaiting, j)
		}
	}
	r.ioWait = stillWaiting
}

// admitArrivals moves newly arrived jobs into level 0.
func (r *mlfqRun) admitArrivals() {
	for len(r.waiting) > 0 && r.waiting[0].ArrivalTime <= r.clock {
		j := r.waiting[0]
		r.waiting = r.waiting[1:]
		j.Priority = 0
		j.TimeInQueue = 0
		j.State = StateReady
		r.queues[0].Enqueue(j)
		logrus.Debugf("[mlfq] tick %d: job %d arrived", r.clock, j.ID)
	}
}

// retireRunning handles the running job if its previous execute phase
// finished it, yielded it for I/O, or exhausted its quantum. A job that
// still holds budget keeps the CPU.
func (r *mlfqRun) retireRunning() {
	j := r.running
	if j == nil {
		return
	}

	switch {
	case j.RemainingTime == 0:
		j.RecordCompletion(r.clock)
		j.State = StateDone
		r.completed = append(r.completed, j)
		r.running = nil
		logrus.Debugf("[mlfq] tick %d: job %d completed", r.clock, j.ID)

	case r.pendingIO:
		j.WaitingForIO = true
		j.IOReturnTime = r.clock + j.IODuration
		j.State = StateIOWait
		r.ioWait = append(r.ioWait, j)
		r.pendingIO = false
		r.running = nil
		logrus.Debugf("[mlfq] tick %d: job %d yielded for I/O until %d", r.clock, j.ID, j.IOReturnTime)

	case r.budget == 0:
		// quantum exhausted: demote if the level allotment is used up,
		// then requeue at the (possibly new) level's tail
		if j.TimeInQueue >= r.cfg.Allotment[j.Priority] {
			j.Priority = min(j.Priority+1, r.cfg.Levels-1)
			j.TimeInQueue = 0
			logrus.Debugf("[mlfq] tick %d: job %d demoted to level %d", r.clock, j.ID, j.Priority)
		}
		j.State = StateReady
		r.queues[j.Priority].Enqueue(j)
		r.running = nil
	}
}

// selectNext dispatches the head of the first non-empty queue, scanning
// levels from 0 upward (strict level-major order).
func (r *mlfqRun) selectNext() {
	if r.running != nil {
		return
	}
	for _, q := range r.queues {
		if q.Len() == 0 {
			continue
		}
		j := q.Dequeue()
		j.State = StateRunning
		j.RecordStart(r.clock)
		r.running = j
		r.budget = r.cfg.Quantum[j.Priority]
		return
	}
}

// execute runs the dispatched job for exactly one tick and records the
// timeline entry. A tick on which the job hits its next I/O offset consumes
// the offset instead of CPU time.
func (r *mlfqRun) execute() {
	j := r.running
	if j == nil {
		r.timeline = append(r.timeline, TimelineEntry{Time: r.clock, JobID: -1, Priority: -1, Status: StatusIdle})
		return
	}

	if j.NeedsIO(j.CPUTimeConsumed()) {
		r.pendingIO = true
		r.timeline = append(r.timeline, TimelineEntry{Time: r.clock, JobID: j.ID, Priority: j.Priority, Status: StatusIO})
		return
	}

	j.RemainingTime--
	j.TimeInQueue++
	r.budget--
	r.timeline = append(r.timeline, TimelineEntry{Time: r.clock, JobID: j.ID, Priority: j.Priority, Status: StatusRunning})
}

// sortedByArrival sorts the jobs in ascending arrival order in place, input
// order preserved on ties, and returns the slice.
func sortedByArrival(jobs []*Job) []*Job {
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].ArrivalTime < jobs[j].ArrivalTime })
	return jobs
}
