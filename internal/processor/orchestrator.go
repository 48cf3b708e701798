package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"match-engine-go/internal/constants"
	"match-engine-go/internal/logger"
	"match-engine-go/internal/matcher"
	"match-engine-go/internal/types"
)

// MatchOrchestrator wires the scoring core together: normalization, semantic
// similarity, attribute scoring, composite scoring and explanation. One
// orchestrator serves any number of concurrent Match calls; every call reads
// only its two input profiles and the orchestrator's immutable configuration.
type MatchOrchestrator struct {
	normalizer *matcher.Normalizer
	scorer     *matcher.CompositeScorer
	dimensions int
	logger     zerolog.Logger
	clock      func() time.Time
	newID      func() string
}

// NewMatchOrchestrator builds an orchestrator. Weight validation happens
// here: a bad weights table is a configuration error and fails fast with
// matcher.ErrInvalidWeights instead of skewing scores later.
func NewMatchOrchestrator(opts ...Option) (*MatchOrchestrator, error) {
	settings := orchestratorSettings{
		dimensions: constants.DefaultEmbeddingDimensions,
		clock:      func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	scorer, err := matcher.NewCompositeScorer(settings.weights)
	if err != nil {
		return nil, err
	}

	log := logger.Logger
	if settings.logger != nil {
		log = *settings.logger
	}

	return &MatchOrchestrator{
		normalizer: matcher.NewNormalizer(settings.synonyms),
		scorer:     scorer,
		dimensions: settings.dimensions,
		logger:     log,
		clock:      settings.clock,
		newID:      settings.newID,
	}, nil
}

// Weights exposes the effective weights table, mainly for reporting.
func (o *MatchOrchestrator) Weights() map[string]float64 {
	return o.scorer.Weights()
}

// Match scores one candidate against one job and returns a fresh, immutable
// MatchResult. Structural errors (mismatched embedding dimensions) abort the
// match; incomplete attribute data degrades locally and is recorded in the
// breakdown notes. Deterministic apart from MatchID and ComputedAt.
func (o *MatchOrchestrator) Match(ctx context.Context, candidate, job *types.Profile) (*types.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if candidate == nil || job == nil {
		return nil, fmt.Errorf("match requires both a candidate and a job profile")
	}

	similarity, err := matcher.Similarity(candidate.Embedding, job.Embedding)
	if err != nil {
		if errors.Is(err, matcher.ErrDimensionMismatch) {
			return nil, matcher.NewDimensionError(candidate.ID, job.ID, len(candidate.Embedding), len(job.Embedding))
		}
		return nil, err
	}

	candTech := o.normalizer.NormalizeSet(candidate.TechnicalSkills)
	candSoft := o.normalizer.NormalizeSet(candidate.SoftSkills)
	jobTech := o.normalizer.NormalizeSet(job.TechnicalSkills)
	jobSoft := o.normalizer.NormalizeSet(job.SoftSkills)

	var notes []string
	if o.dimensions > 0 {
		if candidate.HasEmbedding() && len(candidate.Embedding) != o.dimensions {
			notes = append(notes, fmt.Sprintf("candidate embedding has %d dimensions, deployment declares %d", len(candidate.Embedding), o.dimensions))
		}
		if job.HasEmbedding() && len(job.Embedding) != o.dimensions {
			notes = append(notes, fmt.Sprintf("job embedding has %d dimensions, deployment declares %d", len(job.Embedding), o.dimensions))
		}
	}
	candidateYears := candidate.ExperienceYears
	if candidateYears < 0 {
		notes = append(notes, "candidate experience missing; scored as zero credit")
		candidateYears = 0
	}
	requiredYears := job.ExperienceYears
	if requiredYears < 0 {
		notes = append(notes, "required experience missing; treated as no constraint")
		requiredYears = 0
	}

	attributes := matcher.AttributeScores{
		TechnicalSkills: matcher.TechnicalSkillsScore(jobTech, candTech),
		Experience:      matcher.ExperienceScore(requiredYears, candidateYears),
		Education:       matcher.EducationScore(job.Education.Rank(), candidate.Education.Rank(), types.MaxEducationRank),
		SoftSkills:      matcher.SoftSkillsScore(jobSoft, candSoft),
	}

	breakdown := o.scorer.Score(matcher.CompositeInput{
		Attributes:      attributes,
		Similarity:      similarity,
		AttributeSignal: hasAttributeSignal(candTech, candSoft, jobTech, jobSoft, requiredYears, job.Education),
		Notes:           notes,
	})

	explanation := matcher.Explain(matcher.ExplainInput{
		Breakdown:           breakdown,
		RequiredSkills:      jobTech,
		CandidateSkills:     candTech,
		RequiredExperience:  requiredYears,
		CandidateExperience: candidateYears,
		RequiredEducation:   job.Education,
		CandidateEducation:  candidate.Education,
	})

	result := &types.MatchResult{
		MatchID:         o.newID(),
		CandidateID:     candidate.ID,
		JobID:           job.ID,
		Breakdown:       breakdown,
		Explanation:     explanation.Narrative,
		Strengths:       explanation.Strengths,
		Gaps:            explanation.Gaps,
		Recommendations: explanation.Recommendations,
		ComputedAt:      o.clock(),
	}

	o.logger.Debug().
		Str("candidate_id", candidate.ID).
		Str("job_id", job.ID).
		Float64("overall_score", breakdown.OverallScore).
		Bool("semantic_degraded", breakdown.SemanticDegraded).
		Bool("similarity_only", breakdown.SimilarityOnly).
		Msg("match computed")

	return result, nil
}

// hasAttributeSignal reports whether any structured attribute information
// exists on either side. When everything is blank the attribute sub-scores
// are policy defaults rather than evidence, and the composite scorer falls
// back to semantic similarity alone if it has a genuine value.
func hasAttributeSignal(candTech, candSoft, jobTech, jobSoft []string, requiredYears float64, requiredEducation types.EducationLevel) bool {
	if len(jobTech) > 0 || len(jobSoft) > 0 {
		return true
	}
	if requiredYears > 0 || requiredEducation.Rank() > types.EducationNone.Rank() {
		return true
	}
	// A candidate listing skills against a blank posting still triggers the
	// deliberate 0.5 partial-credit policy, which is attribute signal.
	return len(candTech) > 0 || len(candSoft) > 0
}
