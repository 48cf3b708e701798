package matcher

import (
	"errors"
	"fmt"
)

// Base error types of the scoring core. Structural errors abort the single
// match they occur in; they are never converted into a fabricated score.
var (
	// ErrDimensionMismatch is returned when two embeddings of differing
	// length reach the similarity calculator. Truncating or padding is
	// forbidden, so the comparison fails instead.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidWeights is returned when configured weights are negative or
	// do not sum to 1.0 within tolerance. Weights are rejected at
	// construction time, before any match runs.
	ErrInvalidWeights = errors.New("invalid score weights")

	// ErrIncompleteProfile marks required numeric fields that were missing.
	// Scoring recovers from this locally; the sentinel exists so callers can
	// classify notes and wrapped errors.
	ErrIncompleteProfile = errors.New("incomplete profile")
)

// MatchError carries the pair identifiers and the failing operation along
// with the base error, so batch logs stay attributable.
type MatchError struct {
	CandidateID string
	JobID       string
	Op          string
	BaseErr     error
	Detail      string
}

func (e *MatchError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (op:%s, candidate:%s, job:%s): %s", e.BaseErr, e.Op, e.CandidateID, e.JobID, e.Detail)
	}
	return fmt.Sprintf("%s (op:%s, candidate:%s, job:%s)", e.BaseErr, e.Op, e.CandidateID, e.JobID)
}

func (e *MatchError) Unwrap() error {
	return e.BaseErr
}

// Is lets errors.Is match against the base sentinel.
func (e *MatchError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewDimensionError builds the typed failure for mismatched embeddings.
func NewDimensionError(candidateID, jobID string, lenCandidate, lenJob int) error {
	return &MatchError{
		CandidateID: candidateID,
		JobID:       jobID,
		Op:          "similarity",
		BaseErr:     ErrDimensionMismatch,
		Detail:      fmt.Sprintf("candidate embedding has %d dimensions, job embedding has %d", lenCandidate, lenJob),
	}
}

// NewWeightsError builds the typed failure for a rejected weights table.
func NewWeightsError(detail string) error {
	return &MatchError{
		Op:      "configure",
		BaseErr: ErrInvalidWeights,
		Detail:  detail,
	}
}
