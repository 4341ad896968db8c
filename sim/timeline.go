package sim

import "fmt"

// TickStatus records what the CPU did during one simulated tick.
type TickStatus string

const (
	StatusRunning TickStatus = "RUNNING" // a job executed for the tick
	StatusIO      TickStatus = "IO"      // the dispatched job yielded for I/O
	StatusIdle    TickStatus = "IDLE"    // no job was eligible to run
)

// TimelineEntry is one tick's worth of scheduling history.
// JobID and Priority are -1 on IDLE ticks.
type TimelineEntry struct {
	Time     int64
	JobID    int
	Priority int
	Status   TickStatus
}

func (e TimelineEntry) String() string {
	if e.Status == StatusIdle {
		return fmt.Sprintf("Time %d: CPU IDLE", e.Time)
	}
	return fmt.Sprintf("Time %d: Job %d at Priority %d - %s", e.Time, e.JobID, e.Priority, e.Status)
}
