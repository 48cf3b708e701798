package processor

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a MatchOrchestrator at construction time. Configuration
// is captured once and never mutated afterwards, so orchestrators stay safe
// for concurrent batch use.
type Option func(*orchestratorSettings)

// orchestratorSettings collects everything an Option may touch.
type orchestratorSettings struct {
	weights    map[string]float64
	synonyms   map[string]string
	dimensions int
	logger     *zerolog.Logger
	clock      func() time.Time
	newID      func() string
}

// WithWeights injects the category weights table. Nil keeps the defaults.
// Invalid weights make NewMatchOrchestrator fail, before any match runs.
func WithWeights(weights map[string]float64) Option {
	return func(s *orchestratorSettings) {
		s.weights = weights
	}
}

// WithSynonyms extends the skill normalizer's synonym table.
func WithSynonyms(synonyms map[string]string) Option {
	return func(s *orchestratorSettings) {
		s.synonyms = synonyms
	}
}

// WithDimensions declares the embedding dimensionality of the deployment.
func WithDimensions(dims int) Option {
	return func(s *orchestratorSettings) {
		if dims > 0 {
			s.dimensions = dims
		}
	}
}

// WithLogger sets the structured logger used on match and batch paths.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *orchestratorSettings) {
		s.logger = &logger
	}
}

// WithClock overrides the timestamp source for MatchResult.ComputedAt.
// Tests use this to pin results to a fixed instant.
func WithClock(clock func() time.Time) Option {
	return func(s *orchestratorSettings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides the MatchID source.
func WithIDGenerator(newID func() string) Option {
	return func(s *orchestratorSettings) {
		if newID != nil {
			s.newID = newID
		}
	}
}
