package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkill(t *testing.T) {
	n := NewNormalizer(nil)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower cases and trims", "  Python ", "python"},
		{"collapses inner whitespace", "machine   learning", "machine learning"},
		{"synonym fold ml", "ML", "machine learning"},
		{"synonym fold js", "JS", "javascript"},
		{"synonym fold k8s", "K8s", "kubernetes"},
		{"near match with separators", "Node JS", "node.js"},
		{"unmapped passes through", "Rust", "rust"},
		{"empty input", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.NormalizeSkill(tt.in))
		})
	}
}

func TestNormalizeSkillCustomSynonyms(t *testing.T) {
	n := NewNormalizer(map[string]string{
		"  RoR ": "ruby on rails",
		"js":     "ecmascript", // overrides the built-in
	})

	assert.Equal(t, "ruby on rails", n.NormalizeSkill("ror"))
	assert.Equal(t, "ecmascript", n.NormalizeSkill("JS"))
}

func TestNormalizeSet(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.NormalizeSet([]string{"Python", "python ", "ML", "", "  ", "Docker"})
	require.Equal(t, []string{"docker", "machine learning", "python"}, got)
}

func TestNormalizeSetDeterministicOrder(t *testing.T) {
	n := NewNormalizer(nil)

	a := n.NormalizeSet([]string{"go", "python", "docker"})
	b := n.NormalizeSet([]string{"docker", "go", "python"})
	assert.Equal(t, a, b)
}
