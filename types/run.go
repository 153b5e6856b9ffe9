package types

import (
	"errors"

	"github.com/google/uuid"
)

// RunMeta identifies a single pipeline run in logs and reports.
type RunMeta struct {
	// RunID is unique per invocation.
	RunID string `json:"run_id" yaml:"run_id"`
	// Input is the almanac source ("-" for stdin).
	Input string `json:"input" yaml:"input"`
}

// NewRunMeta returns run metadata with a fresh random run id.
func NewRunMeta(input string) *RunMeta {
	return &RunMeta{RunID: uuid.NewString(), Input: input}
}

// Validate checks that the run id is a well-formed UUID.
func (m *RunMeta) Validate() error {
	if m.RunID == "" {
		return errors.New("run_id is required")
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return errors.New("run_id must be a UUID")
	}
	return nil
}
