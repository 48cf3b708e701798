package processor

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"match-engine-go/internal/types"
)

func batchCandidates(n int) []types.Profile {
	candidates := make([]types.Profile, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, types.Profile{
			ID:              fmt.Sprintf("cand-%03d", i),
			TechnicalSkills: []string{"go", "python"},
			ExperienceYears: float64(i % 7),
			Education:       types.EducationBachelor,
		})
	}
	return candidates
}

func TestBatchMatchAllPairsAttributable(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	candidates := batchCandidates(9)
	job := types.Profile{
		ID:              "job-batch",
		TechnicalSkills: []string{"go", "python", "kubernetes"},
		ExperienceYears: 3,
		Education:       types.EducationBachelor,
	}

	requests := make([]MatchRequest, 0, len(candidates))
	for _, candidate := range candidates {
		requests = append(requests, MatchRequest{Candidate: candidate, Job: job})
	}

	results, err := o.BatchMatch(context.Background(), requests, 3)
	require.NoError(t, err)
	require.Len(t, results, len(candidates))

	// Completion order is unspecified, but every result names its pair.
	seen := map[string]bool{}
	for _, result := range results {
		assert.Equal(t, "job-batch", result.JobID)
		assert.False(t, seen[result.CandidateID], "duplicate result for %s", result.CandidateID)
		seen[result.CandidateID] = true
	}
	assert.Len(t, seen, len(candidates))
}

func TestBatchMatchDefaultConcurrency(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	requests := []MatchRequest{{
		Candidate: types.Profile{ID: "c1", TechnicalSkills: []string{"go"}},
		Job:       types.Profile{ID: "j1", TechnicalSkills: []string{"go"}},
	}}
	results, err := o.BatchMatch(context.Background(), requests, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestBatchMatchEmptyInput(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	results, err := o.BatchMatch(context.Background(), nil, 4)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestBatchMatchCancellation(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := batchCandidates(50)
	job := types.Profile{ID: "job-cancel", TechnicalSkills: []string{"go"}}
	requests := make([]MatchRequest, 0, len(candidates))
	for _, candidate := range candidates {
		requests = append(requests, MatchRequest{Candidate: candidate, Job: job})
	}

	results, err := o.BatchMatch(ctx, requests, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	// Pairs never started produce no results.
	assert.Empty(t, results)
}

func TestBatchMatchSurfacesPairErrors(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	good := MatchRequest{
		Candidate: types.Profile{ID: "c-ok", TechnicalSkills: []string{"go"}},
		Job:       types.Profile{ID: "j-ok", TechnicalSkills: []string{"go"}},
	}
	bad := MatchRequest{
		Candidate: types.Profile{ID: "c-bad", Embedding: []float64{1, 2}},
		Job:       types.Profile{ID: "j-bad", Embedding: []float64{1, 2, 3}},
	}

	results, err := o.BatchMatch(context.Background(), []MatchRequest{good, bad}, 1)
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "c-ok", results[0].CandidateID)
}

func TestRankCandidates(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	candidates := []types.Profile{
		{ID: "cand-weak", TechnicalSkills: []string{"go"}, ExperienceYears: 1},
		{ID: "cand-strong", TechnicalSkills: []string{"go", "python", "kubernetes"}, ExperienceYears: 6, Education: types.EducationMaster},
		{ID: "cand-mid", TechnicalSkills: []string{"go", "python"}, ExperienceYears: 3},
	}
	job := types.Profile{
		ID:              "job-rank",
		TechnicalSkills: []string{"go", "python", "kubernetes"},
		ExperienceYears: 5,
		Education:       types.EducationMaster,
	}

	results, err := o.RankCandidates(context.Background(), candidates, job, 2, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "cand-strong", results[0].CandidateID)
	assert.Equal(t, "cand-mid", results[1].CandidateID)
	assert.Equal(t, "cand-weak", results[2].CandidateID)

	top, err := o.RankCandidates(context.Background(), candidates, job, 2, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "cand-strong", top[0].CandidateID)
}

func TestRankCandidatesTieBreakOnID(t *testing.T) {
	o, err := NewMatchOrchestrator(WithDimensions(4))
	require.NoError(t, err)

	// Identical profiles, identical scores: ranking falls back to ID order.
	twin := func(id string) types.Profile {
		return types.Profile{ID: id, TechnicalSkills: []string{"go"}, ExperienceYears: 5}
	}
	job := types.Profile{ID: "job-tie", TechnicalSkills: []string{"go"}, ExperienceYears: 5}

	results, err := o.RankCandidates(context.Background(), []types.Profile{twin("b"), twin("a")}, job, 1, 0)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].CandidateID)
	assert.Equal(t, "b", results[1].CandidateID)
}
