// Package sim provides the tick-driven CPU scheduling simulator.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - job.go: Job lifecycle (waiting → ready → running → io_wait/done) and I/O triggers
//   - mlfq.go: the multi-level feedback queue engine and its per-tick protocol
//   - cfs.go: the vruntime-ordered fairness engine
//
// # Architecture
//
// Every policy implements the Policy interface: Schedule deep-copies its
// input jobs, runs its own virtual-clock loop to exhaustion, and returns the
// completed jobs plus a Metrics value. Policies are constructed by name
// through NewPolicy with validated option structs (config.go). The baseline
// policies (baselines.go) share the Job model and the idle fast-forward rule
// but carry no feedback state.
//
// Execution is single-threaded and fully deterministic: one virtual CPU, at
// most one job per tick, all state transitions for a tick applied before the
// clock advances. "I/O wait" is a simulated timer, not a suspension point.
package sim
