package matcher

import (
	"math"

	"match-engine-go/internal/constants"
)

// SimilarityScore is the output of the semantic similarity calculator.
// Degraded marks that the comparison did not actually run (embedding missing,
// placeholder, or zero magnitude); Score is then 0 and must not be read as a
// genuine low similarity. Downstream consumers branch on Degraded, never on
// any sentinel value.
type SimilarityScore struct {
	Score    float64
	Degraded bool
}

// IsPlaceholder reports whether a vector looks like the historical mock
// embedding: a constant fill of 0.1. Only a prefix is probed, the same check
// the embedding repair tooling applied when hunting for mock vectors.
func IsPlaceholder(embedding []float64) bool {
	if len(embedding) == 0 {
		return false
	}
	probe := len(embedding)
	if probe > constants.PlaceholderProbeLength {
		probe = constants.PlaceholderProbeLength
	}
	for _, v := range embedding[:probe] {
		if math.Abs(v-constants.PlaceholderEmbeddingValue) > constants.PlaceholderEmbeddingEpsilon {
			return false
		}
	}
	return true
}

// Similarity computes the semantic similarity of two embeddings as cosine
// similarity rescaled from [-1,1] to [0,1]. Vectors of differing length fail
// with ErrDimensionMismatch; they are never truncated or padded. A missing or
// placeholder vector on either side yields a degraded score instead of a
// fabricated one.
func Similarity(a, b []float64) (SimilarityScore, error) {
	if len(a) == 0 || len(b) == 0 {
		return SimilarityScore{Degraded: true}, nil
	}
	if len(a) != len(b) {
		return SimilarityScore{}, NewDimensionError("", "", len(a), len(b))
	}
	if IsPlaceholder(a) || IsPlaceholder(b) {
		return SimilarityScore{Degraded: true}, nil
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		// Cosine is undefined for a zero vector.
		return SimilarityScore{Degraded: true}, nil
	}

	cos := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return SimilarityScore{Score: (cos + 1) / 2}, nil
}
