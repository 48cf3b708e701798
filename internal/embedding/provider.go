// Package embedding defines the collaborator contract for embedding
// providers. The matching engine never computes embeddings itself; it only
// consumes fixed-length vectors produced upstream, and a provider that cannot
// serve a text must say so explicitly instead of inventing a vector.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnavailable is returned when a provider has no vector for the requested
// text. Callers treat the profile as having no embedding, which downstream
// surfaces as a degraded similarity rather than a fabricated score.
var ErrUnavailable = errors.New("embedding unavailable")

// Provider supplies a fixed-length vector for arbitrary text, or reports
// unavailability. Implementations must be safe for concurrent use.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	Dimensions() int
}

// StaticProvider serves precomputed vectors from an in-memory table, keyed by
// the exact text they were computed for. It backs the batch CLI and tests,
// where vectors arrive as fixtures rather than from a live model.
type StaticProvider struct {
	dims    int
	vectors map[string][]float64
}

// NewStaticProvider creates an empty provider for vectors of the given
// dimensionality.
func NewStaticProvider(dims int) *StaticProvider {
	return &StaticProvider{
		dims:    dims,
		vectors: make(map[string][]float64),
	}
}

// Add registers a vector. The vector must match the provider's declared
// dimensionality.
func (p *StaticProvider) Add(text string, vector []float64) error {
	if len(vector) != p.dims {
		return fmt.Errorf("vector for %q has %d dimensions, provider expects %d", text, len(vector), p.dims)
	}
	p.vectors[text] = vector
	return nil
}

// Embed implements Provider.
func (p *StaticProvider) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vector, ok := p.vectors[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q: %w", text, ErrUnavailable)
	}
	return vector, nil
}

// Dimensions implements Provider.
func (p *StaticProvider) Dimensions() int {
	return p.dims
}

// staticProviderFile is the YAML fixture layout consumed by
// LoadStaticProvider.
type staticProviderFile struct {
	Dimensions int                  `yaml:"dimensions"`
	Vectors    map[string][]float64 `yaml:"vectors"`
}

// LoadStaticProvider reads a vector fixture file:
//
//	dimensions: 768
//	vectors:
//	  cand-001: [0.12, -0.04, ...]
func LoadStaticProvider(path string) (*StaticProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read embeddings fixture: %w", err)
	}
	var file staticProviderFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse embeddings fixture: %w", err)
	}
	if file.Dimensions <= 0 {
		return nil, fmt.Errorf("embeddings fixture %s declares no dimensionality", path)
	}
	provider := NewStaticProvider(file.Dimensions)
	for text, vector := range file.Vectors {
		if err := provider.Add(text, vector); err != nil {
			return nil, err
		}
	}
	return provider, nil
}
