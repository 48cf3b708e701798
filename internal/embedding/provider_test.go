package embedding

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderAddRejectsWrongDimensions(t *testing.T) {
	p := NewStaticProvider(3)
	assert.Error(t, p.Add("cand-001", []float64{0.1, 0.2}))
	assert.NoError(t, p.Add("cand-001", []float64{0.1, 0.2, 0.3}))
}

func TestStaticProviderEmbed(t *testing.T) {
	p := NewStaticProvider(2)
	require.NoError(t, p.Add("cand-001", []float64{0.5, -0.5}))

	vector, err := p.Embed(context.Background(), "cand-001")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -0.5}, vector)

	_, err = p.Embed(context.Background(), "cand-404")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStaticProviderEmbedHonorsContext(t *testing.T) {
	p := NewStaticProvider(1)
	require.NoError(t, p.Add("cand-001", []float64{1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Embed(ctx, "cand-001")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadStaticProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.yaml")
	fixture := `
dimensions: 3
vectors:
  cand-001: [0.1, 0.2, 0.3]
  job-001: [0.3, 0.2, 0.1]
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

	p, err := LoadStaticProvider(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Dimensions())

	vector, err := p.Embed(context.Background(), "job-001")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.2, 0.1}, vector)
}

func TestLoadStaticProviderRejectsBadFixtures(t *testing.T) {
	dir := t.TempDir()

	noDims := filepath.Join(dir, "nodims.yaml")
	require.NoError(t, os.WriteFile(noDims, []byte("vectors:\n  a: [1.0]\n"), 0644))
	_, err := LoadStaticProvider(noDims)
	assert.Error(t, err)

	badVector := filepath.Join(dir, "badvec.yaml")
	require.NoError(t, os.WriteFile(badVector, []byte("dimensions: 2\nvectors:\n  a: [1.0]\n"), 0644))
	_, err = LoadStaticProvider(badVector)
	assert.Error(t, err)

	_, err = LoadStaticProvider(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
