package matcher

import (
	"regexp"
	"sort"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)
var reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// defaultSynonyms folds the most common skill aliases onto one canonical
// spelling. Deployments extend (or override) the table through the engine
// configuration; lookups always happen on the already lower-cased, collapsed
// form of the token.
var defaultSynonyms = map[string]string{
	"ml":       "machine learning",
	"ai":       "artificial intelligence",
	"nlp":      "natural language processing",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"golang":   "go",
	"py":       "python",
	"tf":       "tensorflow",
	"node":     "node.js",
	"nodejs":   "node.js",
	"postgres": "postgresql",
	"gcp":      "google cloud",
	"aws":      "amazon web services",
	"ci/cd":    "continuous integration",
}

// Normalizer canonicalizes free-form skill tokens so that set overlap is
// meaningful: "Python" and "python " compare equal, and "ML" folds onto
// "machine learning". It is immutable after construction and safe for
// concurrent use.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer builds a normalizer from the built-in synonym table merged
// with the supplied extra entries. Extra entries win on key collision; both
// keys and values are themselves canonicalized so a sloppy config still
// folds correctly.
func NewNormalizer(extra map[string]string) *Normalizer {
	merged := make(map[string]string, len(defaultSynonyms)+len(extra))
	for k, v := range defaultSynonyms {
		merged[k] = v
	}
	for k, v := range extra {
		key := collapse(k)
		val := collapse(v)
		if key == "" || val == "" {
			continue
		}
		merged[key] = val
	}
	return &Normalizer{synonyms: merged}
}

// NormalizeSkill returns the canonical form of one token: trimmed,
// lower-cased, inner whitespace collapsed, then folded through the synonym
// table. Unmapped tokens pass through in their collapsed form. The empty
// string is returned for empty or whitespace-only input; callers drop it.
func (n *Normalizer) NormalizeSkill(raw string) string {
	token := collapse(raw)
	if token == "" {
		return ""
	}
	if canonical, ok := n.synonyms[token]; ok {
		return canonical
	}
	// Near match: retry with separators stripped, so "Node JS" and
	// "node.js" land on the same table entry as "nodejs".
	if canonical, ok := n.synonyms[stripSeparators(token)]; ok {
		return canonical
	}
	return token
}

// NormalizeSet canonicalizes a whole skill list into a deduplicated, sorted
// set. Sorting keeps every downstream consumer (scoring, explanations,
// tests) deterministic regardless of input order.
func (n *Normalizer) NormalizeSet(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		token := n.NormalizeSkill(item)
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// collapse lower-cases, trims and squeezes inner whitespace.
func collapse(s string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(strings.ToLower(s)), " ")
}

// stripSeparators removes everything that is not a letter or digit, turning
// "node.js" and "node js" into "nodejs" for near-match lookups.
func stripSeparators(s string) string {
	return reNonWord.ReplaceAllString(s, "")
}
