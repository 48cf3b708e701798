package matcher

// Score bands over the overall score (0-100 scale). Inclusive lower bound,
// exclusive upper bound. This table is the single source of truth for
// severity wording; nothing else in the repo hard-codes these thresholds.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandFair      = "Fair"
	BandPoor      = "Poor"
)

// Band returns the band name for an overall score on the 0-100 scale.
func Band(overall float64) string {
	switch {
	case overall >= 80:
		return BandExcellent
	case overall >= 60:
		return BandGood
	case overall >= 40:
		return BandFair
	default:
		return BandPoor
	}
}

// bandRecommendations maps each band to the lead recommendation line.
var bandRecommendations = map[string]string{
	BandExcellent: "Highly recommended candidate",
	BandGood:      "Good candidate with potential",
	BandFair:      "Possible fit, review the gaps before advancing",
	BandPoor:      "Consider alternative candidates",
}

// BandRecommendation returns the recommendation lead sentence for a score.
func BandRecommendation(overall float64) string {
	return bandRecommendations[Band(overall)]
}
