package types

import (
	"strings"
	"time"
)

// Score category names. These keys are shared by the score breakdown, the
// weights configuration and the explanation generator.
const (
	CategoryTechnicalSkills = "technical_skills"
	CategoryExperience      = "experience"
	CategoryEducation       = "education"
	CategorySoftSkills      = "soft_skills"
	CategorySemantic        = "semantic_similarity"
)

// CategoryOrder is the canonical iteration order for score categories.
// Map iteration order is random in Go, so everything that must be
// deterministic (explanations, reports, tie-breaks) walks this slice instead.
var CategoryOrder = []string{
	CategoryTechnicalSkills,
	CategoryExperience,
	CategoryEducation,
	CategorySoftSkills,
	CategorySemantic,
}

// EducationLevel is an ordered education ranking. The zero value means the
// level is unknown or was never supplied.
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationHighSchool
	EducationBachelor
	EducationMaster
	EducationPhD
)

// MaxEducationRank is the ordinal distance used when scoring education gaps.
const MaxEducationRank = int(EducationPhD)

// Rank returns the ordinal position of the level.
func (l EducationLevel) Rank() int {
	if l < EducationNone || l > EducationPhD {
		return int(EducationNone)
	}
	return int(l)
}

func (l EducationLevel) String() string {
	switch l {
	case EducationHighSchool:
		return "HighSchool"
	case EducationBachelor:
		return "Bachelor"
	case EducationMaster:
		return "Master"
	case EducationPhD:
		return "PhD"
	default:
		return "None"
	}
}

// ParseEducationLevel maps free-form level strings (as they arrive from CV
// extraction or job postings) onto the ordered enum. The second return value
// reports whether the input was recognized; unrecognized input degrades to
// EducationNone so a sloppy profile lowers credit instead of failing a match.
func ParseEducationLevel(s string) (EducationLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EducationNone, true
	case "highschool", "high school", "high-school", "secondary":
		return EducationHighSchool, true
	case "bachelor", "bachelors", "bachelor's", "licence", "bsc", "b.sc", "undergraduate":
		return EducationBachelor, true
	case "master", "masters", "master's", "msc", "m.sc", "engineering degree":
		return EducationMaster, true
	case "phd", "ph.d", "doctorate", "doctoral":
		return EducationPhD, true
	default:
		return EducationNone, false
	}
}

// Profile is the structured side of a candidate or a job posting as consumed
// by the matching engine. Skill lists may arrive raw; the orchestrator runs
// them through the normalizer before any comparison. ExperienceYears holds
// the candidate's total experience, or the job's required experience when the
// profile describes a posting. A nil or empty Embedding means the vector was
// never computed.
type Profile struct {
	ID              string
	TechnicalSkills []string
	SoftSkills      []string
	ExperienceYears float64
	Education       EducationLevel
	Embedding       []float64
}

// HasEmbedding reports whether a vector is attached at all. It says nothing
// about the vector being genuine; placeholder detection lives in the
// similarity calculator.
func (p *Profile) HasEmbedding() bool {
	return len(p.Embedding) > 0
}

// ScoreBreakdown is the full output of the composite scorer. Sub-scores are
// kept on the [0,1] scale of the individual scorers; OverallScore is the one
// externally visible number and is expressed as a percentage on [0,100],
// matching how results are banded and reported.
type ScoreBreakdown struct {
	// Scores maps category name to its sub-score in [0,1].
	Scores map[string]float64 `json:"scores"`

	// Weights holds the effective weights the overall score was computed
	// with. They always sum to 1.0 within tolerance.
	Weights map[string]float64 `json:"weights"`

	// OverallScore is the weighted total on a 0-100 scale.
	OverallScore float64 `json:"overall_score"`

	// SemanticDegraded marks that semantic similarity could not actually be
	// computed (missing or placeholder embedding) and its weight was
	// redistributed. A low genuine similarity never sets this.
	SemanticDegraded bool `json:"semantic_degraded,omitempty"`

	// SimilarityOnly marks that no attribute data was available and the
	// overall score is the semantic similarity alone.
	SimilarityOnly bool `json:"similarity_only,omitempty"`

	// Notes records every local degradation applied while scoring, such as
	// a missing numeric field falling back to zero credit.
	Notes []string `json:"notes,omitempty"`
}

// SubScore returns the sub-score for a category, or 0 when absent.
func (b *ScoreBreakdown) SubScore(category string) float64 {
	if b.Scores == nil {
		return 0
	}
	return b.Scores[category]
}

// MatchResult is the engine's one output value per (candidate, job) pair.
// It is created by the orchestrator and never mutated afterwards;
// re-matching the same pair produces a fresh result with a new MatchID.
type MatchResult struct {
	MatchID     string         `json:"match_id"`
	CandidateID string         `json:"candidate_id"`
	JobID       string         `json:"job_id"`
	Breakdown   ScoreBreakdown `json:"breakdown"`

	Explanation     string   `json:"explanation"`
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`

	ComputedAt time.Time `json:"computed_at"`
}
