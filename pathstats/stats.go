package pathstats

import "time"

// Stats accumulates counters for a single pathfinder run. Fields are
// updated in place during the run (counters stay plain integer writes
// on the hot path) and read only after the call returns.
type Stats struct {
	Iterations         int
	NodesExplored      int
	LineOfSightChecks  int
	ParentUpdates      int
	DiagonalSteps      int
	CardinalSteps      int
	ExecutionTime      time.Duration
	Success            bool
	LastError          string
}

// Reset zeroes every counter, matching resetStats on the owning
// pathfinder instance.
func (s *Stats) Reset() {
	*s = Stats{}
}

// Timer starts an execution-time measurement; call Stop to record the
// elapsed duration into s.ExecutionTime.
type Timer struct {
	stats *Stats
	start time.Time
}

// StartTimer begins timing a run against s.
func StartTimer(s *Stats) Timer {
	return Timer{stats: s, start: time.Now()}
}

// Stop records the elapsed time since StartTimer into the bound Stats.
func (t Timer) Stop() {
	t.stats.ExecutionTime = time.Since(t.start)
}
