package matcher

import (
	"fmt"
	"math"

	"match-engine-go/internal/constants"
	"match-engine-go/internal/types"
)

// DefaultWeights returns a fresh copy of the default category weights:
// technical skills 0.40, experience 0.30, education 0.20, soft skills 0.10,
// semantic similarity 0.00. Callers may mutate the copy freely.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		types.CategoryTechnicalSkills: constants.DefaultTechnicalSkillsWeight,
		types.CategoryExperience:      constants.DefaultExperienceWeight,
		types.CategoryEducation:       constants.DefaultEducationWeight,
		types.CategorySoftSkills:      constants.DefaultSoftSkillsWeight,
		types.CategorySemantic:        constants.DefaultSemanticWeight,
	}
}

// ValidateWeights checks a weights table: only known categories, nothing
// negative, sum equal to 1.0 within tolerance. Categories left out count as
// weight zero. Violations surface as ErrInvalidWeights.
func ValidateWeights(weights map[string]float64) error {
	known := make(map[string]struct{}, len(types.CategoryOrder))
	for _, c := range types.CategoryOrder {
		known[c] = struct{}{}
	}
	sum := 0.0
	for _, category := range types.CategoryOrder {
		w, ok := weights[category]
		if !ok {
			continue
		}
		if w < 0 {
			return NewWeightsError(fmt.Sprintf("category %q has negative weight %v", category, w))
		}
		sum += w
	}
	for category := range weights {
		if _, ok := known[category]; !ok {
			return NewWeightsError(fmt.Sprintf("unknown category %q", category))
		}
	}
	if math.Abs(sum-1.0) > constants.WeightSumTolerance {
		return NewWeightsError(fmt.Sprintf("weights sum to %v, want 1.0", sum))
	}
	return nil
}

// AttributeScores bundles the four attribute sub-scores, each in [0,1].
type AttributeScores struct {
	TechnicalSkills float64
	Experience      float64
	Education       float64
	SoftSkills      float64
}

// CompositeInput is everything the composite scorer needs for one pair.
type CompositeInput struct {
	Attributes AttributeScores
	Similarity SimilarityScore

	// AttributeSignal is false when neither the job nor the candidate
	// carries any attribute information, in which case the attribute
	// sub-scores are pure policy defaults rather than evidence.
	AttributeSignal bool

	// Notes carries degradation notes accumulated upstream; they are copied
	// into the breakdown verbatim.
	Notes []string
}

// CompositeScorer combines attribute and semantic sub-scores into one
// weighted overall score. Weights are injected at construction and validated
// there, so a bad deployment config fails before any match runs. The scorer
// is immutable and safe for concurrent use.
type CompositeScorer struct {
	weights map[string]float64
}

// NewCompositeScorer validates and captures the weights table. Passing nil
// selects the defaults.
func NewCompositeScorer(weights map[string]float64) (*CompositeScorer, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	captured := make(map[string]float64, len(types.CategoryOrder))
	for _, category := range types.CategoryOrder {
		captured[category] = weights[category]
	}
	return &CompositeScorer{weights: captured}, nil
}

// Weights returns a copy of the configured weights.
func (cs *CompositeScorer) Weights() map[string]float64 {
	out := make(map[string]float64, len(cs.weights))
	for k, v := range cs.weights {
		out[k] = v
	}
	return out
}

// Score computes the full breakdown for one pair. Deterministic: identical
// inputs always yield the identical breakdown.
//
// Two documented departures from the plain weighted sum:
//   - similarity-only: no attribute signal exists but a genuine similarity
//     does, so the overall score is the similarity alone and the breakdown
//     says so;
//   - degraded similarity: the semantic comparison never ran, so its weight
//     is redistributed proportionally over the attribute categories and the
//     breakdown carries the degraded flag.
func (cs *CompositeScorer) Score(in CompositeInput) types.ScoreBreakdown {
	scores := map[string]float64{
		types.CategoryTechnicalSkills: clamp01(in.Attributes.TechnicalSkills),
		types.CategoryExperience:      clamp01(in.Attributes.Experience),
		types.CategoryEducation:       clamp01(in.Attributes.Education),
		types.CategorySoftSkills:      clamp01(in.Attributes.SoftSkills),
		types.CategorySemantic:        0,
	}
	if !in.Similarity.Degraded {
		scores[types.CategorySemantic] = clamp01(in.Similarity.Score)
	}

	breakdown := types.ScoreBreakdown{
		Scores:           scores,
		SemanticDegraded: in.Similarity.Degraded,
		Notes:            append([]string(nil), in.Notes...),
	}

	if !in.AttributeSignal && !in.Similarity.Degraded {
		// Semantic similarity is the sole real signal.
		breakdown.SimilarityOnly = true
		breakdown.Weights = similarityOnlyWeights()
		breakdown.OverallScore = roundScore(scores[types.CategorySemantic] * 100)
		breakdown.Notes = append(breakdown.Notes, "no attribute data available; scored on semantic similarity alone")
		return breakdown
	}

	weights := cs.Weights()
	if in.Similarity.Degraded && weights[types.CategorySemantic] > 0 {
		weights = redistributeSemanticWeight(weights)
	}
	breakdown.Weights = weights
	if in.Similarity.Degraded {
		breakdown.Notes = append(breakdown.Notes, "semantic similarity unavailable; scored on attributes only")
	}

	total := 0.0
	for _, category := range types.CategoryOrder {
		total += weights[category] * scores[category]
	}
	breakdown.OverallScore = roundScore(total * 100)
	return breakdown
}

// similarityOnlyWeights is the effective table used when the overall score
// falls back to semantic similarity alone.
func similarityOnlyWeights() map[string]float64 {
	w := map[string]float64{}
	for _, category := range types.CategoryOrder {
		w[category] = 0
	}
	w[types.CategorySemantic] = 1
	return w
}

// redistributeSemanticWeight moves the semantic weight onto the attribute
// categories, proportionally to their configured weights, keeping the sum at
// 1.0. When every attribute weight is zero the semantic weight is split
// evenly instead.
func redistributeSemanticWeight(weights map[string]float64) map[string]float64 {
	semantic := weights[types.CategorySemantic]
	attrSum := 0.0
	for _, category := range types.CategoryOrder {
		if category == types.CategorySemantic {
			continue
		}
		attrSum += weights[category]
	}
	out := make(map[string]float64, len(weights))
	for _, category := range types.CategoryOrder {
		if category == types.CategorySemantic {
			out[category] = 0
			continue
		}
		if attrSum > 0 {
			out[category] = weights[category] + semantic*weights[category]/attrSum
		} else {
			out[category] = semantic / 4
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// roundScore rounds an overall score to two decimals so reports and stored
// results agree byte for byte.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
