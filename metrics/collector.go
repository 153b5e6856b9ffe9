// Package metrics provides per-run counters for pipeline runs.
//
// The Collector accumulates counters during a run. It is a leaf package with
// no internal dependencies; callers feed it stage keys as strings.
package metrics

import "sync"

// StageGrowth records how one stage changed the fragment count.
type StageGrowth struct {
	Stage string `json:"stage" yaml:"stage"`
	In    int    `json:"in" yaml:"in"`
	Out   int    `json:"out" yaml:"out"`
}

// Snapshot is an immutable point-in-time view of all metrics.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Run lifecycle
	RunsStarted   int64 `json:"runs_started" yaml:"runs_started"`
	RunsCompleted int64 `json:"runs_completed" yaml:"runs_completed"`
	RunsFailed    int64 `json:"runs_failed" yaml:"runs_failed"`

	// Pipeline
	StagesApplied    int64         `json:"stages_applied" yaml:"stages_applied"`
	InitialIntervals int           `json:"initial_intervals" yaml:"initial_intervals"`
	FinalIntervals   int           `json:"final_intervals" yaml:"final_intervals"`
	PeakGeneration   int           `json:"peak_generation" yaml:"peak_generation"`
	ValuesCovered    int64         `json:"values_covered" yaml:"values_covered"`
	Stages           []StageGrowth `json:"stages" yaml:"stages"`

	// Dimensions (informational, set at construction)
	SeedMode string `json:"seed_mode" yaml:"seed_mode"`
	Coalesce bool   `json:"coalesce" yaml:"coalesce"`
	RunID    string `json:"run_id" yaml:"run_id"`
}

// Collector accumulates metrics during a run.
// Thread-safe via sync.Mutex. All record methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	runsStarted   int64
	runsCompleted int64
	runsFailed    int64

	stagesApplied    int64
	initialIntervals int
	finalIntervals   int
	peakGeneration   int
	valuesCovered    int64
	stages           []StageGrowth

	seedMode string
	coalesce bool
	runID    string
}

// NewCollector creates a Collector with dimension labels.
func NewCollector(seedMode string, coalesce bool, runID string) *Collector {
	return &Collector{
		seedMode: seedMode,
		coalesce: coalesce,
		runID:    runID,
	}
}

// --- Run lifecycle ---

// IncRunStarted records a run start.
func (c *Collector) IncRunStarted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsStarted++
	c.mu.Unlock()
}

// IncRunCompleted records a run that produced a result.
func (c *Collector) IncRunCompleted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsCompleted++
	c.mu.Unlock()
}

// IncRunFailed records a run that ended in an error.
func (c *Collector) IncRunFailed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsFailed++
	c.mu.Unlock()
}

// --- Pipeline ---

// RecordInitial records the size of the initial generation.
func (c *Collector) RecordInitial(intervals int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.initialIntervals = intervals
	c.peakGeneration = max(c.peakGeneration, intervals)
	c.mu.Unlock()
}

// RecordStage records one stage transition.
func (c *Collector) RecordStage(stage string, in, out int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.stagesApplied++
	c.stages = append(c.stages, StageGrowth{Stage: stage, In: in, Out: out})
	c.peakGeneration = max(c.peakGeneration, out)
	c.mu.Unlock()
}

// RecordFinal records the size and covered values of the final generation.
func (c *Collector) RecordFinal(intervals int, values int64) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.finalIntervals = intervals
	c.valuesCovered = values
	c.mu.Unlock()
}

// --- Snapshot ---

// Snapshot returns an immutable point-in-time view of all metrics.
// The returned Snapshot is safe to read concurrently; the Collector can
// continue to be mutated independently.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	stages := make([]StageGrowth, len(c.stages))
	copy(stages, c.stages)

	return Snapshot{
		RunsStarted:   c.runsStarted,
		RunsCompleted: c.runsCompleted,
		RunsFailed:    c.runsFailed,

		StagesApplied:    c.stagesApplied,
		InitialIntervals: c.initialIntervals,
		FinalIntervals:   c.finalIntervals,
		PeakGeneration:   c.peakGeneration,
		ValuesCovered:    c.valuesCovered,
		Stages:           stages,

		SeedMode: c.seedMode,
		Coalesce: c.coalesce,
		RunID:    c.runID,
	}
}
