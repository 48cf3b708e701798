package matcher

import (
	"fmt"
	"strconv"

	"match-engine-go/internal/types"
)

// categoryDisplayNames turns breakdown keys into words fit for narrative
// text.
var categoryDisplayNames = map[string]string{
	types.CategoryTechnicalSkills: "technical skills",
	types.CategoryExperience:      "experience",
	types.CategoryEducation:       "education",
	types.CategorySoftSkills:      "soft skills",
	types.CategorySemantic:        "semantic similarity",
}

// ExplainInput is the normalized comparison the explanation is derived from.
// It is the exact same data the scorers consumed, which guarantees that no
// strength or gap can contradict the numeric breakdown.
type ExplainInput struct {
	Breakdown types.ScoreBreakdown

	RequiredSkills  []string
	CandidateSkills []string

	RequiredExperience  float64
	CandidateExperience float64

	RequiredEducation  types.EducationLevel
	CandidateEducation types.EducationLevel
}

// Explanation is the human-readable half of a match result.
type Explanation struct {
	Strengths       []string
	Gaps            []string
	Recommendations []string
	Narrative       string
}

// Explain derives strengths, gaps, recommendations and the one-sentence
// narrative from a breakdown and the normalized profiles. Pure and
// reproducible: identical input yields identical output, which both tests
// and result caching rely on.
func Explain(in ExplainInput) Explanation {
	var out Explanation
	gapCategories := map[string]bool{}

	// Skills first, then experience, then education. Skill sets are already
	// sorted by the normalizer, so the entry order is stable.
	candidateSet := make(map[string]struct{}, len(in.CandidateSkills))
	for _, s := range in.CandidateSkills {
		candidateSet[s] = struct{}{}
	}
	for _, skill := range in.RequiredSkills {
		if _, ok := candidateSet[skill]; ok {
			out.Strengths = append(out.Strengths, "Has required skill: "+skill)
		} else {
			out.Gaps = append(out.Gaps, "Missing required skill: "+skill)
			gapCategories[types.CategoryTechnicalSkills] = true
		}
	}

	if in.RequiredExperience > 0 {
		if in.CandidateExperience >= in.RequiredExperience {
			out.Strengths = append(out.Strengths,
				fmt.Sprintf("Meets experience requirement: %s years (%s required)",
					formatYears(in.CandidateExperience), formatYears(in.RequiredExperience)))
		} else {
			have := in.CandidateExperience
			if have < 0 {
				have = 0
			}
			out.Gaps = append(out.Gaps,
				fmt.Sprintf("Experience shortfall: %s of %s required years (%s years short)",
					formatYears(have), formatYears(in.RequiredExperience), formatYears(in.RequiredExperience-have)))
			gapCategories[types.CategoryExperience] = true
		}
	}

	if in.RequiredEducation.Rank() > types.EducationNone.Rank() {
		if in.CandidateEducation.Rank() >= in.RequiredEducation.Rank() {
			out.Strengths = append(out.Strengths,
				fmt.Sprintf("Meets education requirement: %s", in.CandidateEducation))
		} else {
			out.Gaps = append(out.Gaps,
				fmt.Sprintf("Education below requirement: %s (%s required)",
					in.CandidateEducation, in.RequiredEducation))
			gapCategories[types.CategoryEducation] = true
		}
	}

	// Recommendations: band lead first, then a pointer at the heaviest gap.
	out.Recommendations = append(out.Recommendations, BandRecommendation(in.Breakdown.OverallScore))
	if len(out.Gaps) > 0 {
		if category := largestGapCategory(in.Breakdown, gapCategories); category != "" {
			out.Recommendations = append(out.Recommendations,
				fmt.Sprintf("Focus screening on the %s gap", categoryDisplayNames[category]))
		}
	}

	out.Narrative = narrative(in.Breakdown)
	return out
}

// largestGapCategory picks, among the categories that actually produced gap
// entries, the one with the largest weighted deviation from a perfect score.
// Ties resolve in canonical category order.
func largestGapCategory(b types.ScoreBreakdown, gapCategories map[string]bool) string {
	best := ""
	bestDeviation := -1.0
	for _, category := range types.CategoryOrder {
		if !gapCategories[category] {
			continue
		}
		deviation := b.Weights[category] * (1 - b.SubScore(category))
		if deviation > bestDeviation {
			best = category
			bestDeviation = deviation
		}
	}
	return best
}

// narrative renders the single formatted sentence embedding the overall
// score, its band, and the dominant contributing and detracting categories.
func narrative(b types.ScoreBreakdown) string {
	band := Band(b.OverallScore)
	if b.SimilarityOnly {
		return fmt.Sprintf("Overall match score %.2f%% (%s), based on semantic similarity alone.",
			b.OverallScore, band)
	}

	dominant, detracting := "", ""
	bestContribution, bestDeviation := -1.0, -1.0
	for _, category := range types.CategoryOrder {
		w := b.Weights[category]
		if w <= 0 {
			continue
		}
		if contribution := w * b.SubScore(category); contribution > bestContribution {
			dominant = category
			bestContribution = contribution
		}
		if deviation := w * (1 - b.SubScore(category)); deviation > bestDeviation {
			detracting = category
			bestDeviation = deviation
		}
	}
	return fmt.Sprintf("Overall match score %.2f%% (%s): strongest factor is %s, weakest factor is %s.",
		b.OverallScore, band, categoryDisplayNames[dominant], categoryDisplayNames[detracting])
}

// formatYears renders a year count without trailing zeros ("5", "2.5").
func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
