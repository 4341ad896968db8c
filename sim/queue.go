// Implements the ReadyQueue, a FIFO of jobs eligible to run.
// The MLFQ engine holds one ReadyQueue per priority level.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of jobs waiting for the CPU.
// Enqueue order is the dispatch order; all engines that need FIFO discipline
// (Round Robin, MLFQ levels) share this container.
type ReadyQueue struct {
	queue []*Job
}

// Enqueue adds a job to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(j *Job) {
	if j == nil {
		panic("Enqueue: job must not be nil")
	}
	rq.queue = append(rq.queue, j)
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	j := rq.queue[0]
	rq.queue = rq.queue[1:]
	return j
}

// Peek returns the job at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Job {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of jobs in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Drain removes and returns all jobs in FIFO order, leaving the queue empty.
// The MLFQ boost uses this to move whole levels back to the top queue.
func (rq *ReadyQueue) Drain() []*Job {
	out := rq.queue
	rq.queue = nil
	return out
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Job {
	return rq.queue
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range rq.queue {
		sb.WriteString(fmt.Sprint(j.ID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
