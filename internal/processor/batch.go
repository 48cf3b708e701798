package processor

import (
	"context"
	"errors"
	"sort"
	"sync"

	"match-engine-go/internal/constants"
	"match-engine-go/internal/types"
)

// MatchRequest is one (candidate, job) pair queued for batch matching.
type MatchRequest struct {
	Candidate types.Profile
	Job       types.Profile
}

// pairOutcome travels from a worker back to the collector.
type pairOutcome struct {
	result *types.MatchResult
	err    error
}

// BatchMatch scores many independent pairs with a bounded worker fan-out.
// Every pair is pure and isolated, so no coordination beyond the worker pool
// is needed. Completion order is not guaranteed; results carry their own
// candidate and job identifiers, which keeps them attributable.
//
// Cancellation abandons pairs that have not started; pairs already in flight
// run to completion since they are short and side-effect-free. On
// cancellation the completed results are still returned, together with the
// context error. Per-pair structural failures do not stop the batch: they are
// logged, joined into the returned error, and the remaining pairs proceed.
func (o *MatchOrchestrator) BatchMatch(ctx context.Context, requests []MatchRequest, concurrency int) ([]*types.MatchResult, error) {
	if len(requests) == 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}
	if concurrency > len(requests) {
		concurrency = len(requests)
	}

	pending := make(chan MatchRequest)
	outcomes := make(chan pairOutcome, len(requests))

	// Feeder: stops handing out work as soon as the caller cancels.
	go func() {
		defer close(pending)
		for _, request := range requests {
			select {
			case <-ctx.Done():
				return
			case pending <- request:
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for request := range pending {
				candidate, job := request.Candidate, request.Job
				result, err := o.Match(ctx, &candidate, &job)
				if err != nil {
					o.logger.Error().
						Err(err).
						Str("candidate_id", candidate.ID).
						Str("job_id", job.ID).
						Msg("pair match failed")
				}
				outcomes <- pairOutcome{result: result, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var results []*types.MatchResult
	var errs []error
	for outcome := range outcomes {
		if outcome.err != nil {
			errs = append(errs, outcome.err)
			continue
		}
		results = append(results, outcome.result)
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return results, errors.Join(errs...)
}

// RankCandidates matches every candidate against one job and returns the
// results ordered best-first. Ties on the overall score break on candidate
// ID so rankings are reproducible. A topK of zero or less returns the full
// ranking.
func (o *MatchOrchestrator) RankCandidates(ctx context.Context, candidates []types.Profile, job types.Profile, concurrency, topK int) ([]*types.MatchResult, error) {
	requests := make([]MatchRequest, 0, len(candidates))
	for _, candidate := range candidates {
		requests = append(requests, MatchRequest{Candidate: candidate, Job: job})
	}

	results, err := o.BatchMatch(ctx, requests, concurrency)
	sort.Slice(results, func(i, j int) bool {
		if results[i].Breakdown.OverallScore != results[j].Breakdown.OverallScore {
			return results[i].Breakdown.OverallScore > results[j].Breakdown.OverallScore
		}
		return results[i].CandidateID < results[j].CandidateID
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, err
}
