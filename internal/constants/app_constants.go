package constants

const (
	// DefaultEmbeddingDimensions is the vector length expected from the
	// embedding provider when the deployment does not configure one.
	DefaultEmbeddingDimensions = 768

	// DefaultBatchConcurrency bounds batch fan-out when the caller does not
	// supply a limit.
	DefaultBatchConcurrency = 4

	// Default category weights. Semantic similarity is carried as a fifth
	// category and is zero-weighted unless a deployment retunes it.
	DefaultTechnicalSkillsWeight = 0.40
	DefaultExperienceWeight      = 0.30
	DefaultEducationWeight       = 0.20
	DefaultSoftSkillsWeight      = 0.10
	DefaultSemanticWeight        = 0.00

	// WeightSumTolerance is the floating-point tolerance applied when
	// checking that weights sum to 1.0.
	WeightSumTolerance = 1e-6

	// Placeholder embedding detection. Deployments without a real embedding
	// model historically stored constant mock vectors (every component 0.1);
	// such a vector must surface as degraded, never as a genuine score.
	PlaceholderEmbeddingValue   = 0.1
	PlaceholderEmbeddingEpsilon = 1e-3
	PlaceholderProbeLength      = 10
)
