package matcher

// Attribute scorers. Each is a pure function over already-normalized profile
// fields and returns a score in [0,1].

// overlapScore is the shared required-vs-offered set comparison:
// |required AND offered| / |required|. Extra unrequested skills earn
// nothing, so the score caps at 1.0 by construction. The empty-requirements
// policy is asymmetric: a blank requirements list yields 0.5 partial credit
// when the candidate lists anything at all ("requirements unspecified"), and
// 0.0 when neither side carries information. A blank posting must not look
// identical to "nothing matched".
func overlapScore(required, offered []string) float64 {
	if len(required) == 0 {
		if len(offered) > 0 {
			return 0.5
		}
		return 0.0
	}
	offeredSet := make(map[string]struct{}, len(offered))
	for _, s := range offered {
		offeredSet[s] = struct{}{}
	}
	matched := 0
	for _, s := range required {
		if _, ok := offeredSet[s]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(required))
}

// TechnicalSkillsScore scores the candidate's normalized technical skills
// against the job's normalized required set.
func TechnicalSkillsScore(required, candidate []string) float64 {
	return overlapScore(required, candidate)
}

// SoftSkillsScore applies the same overlap formula to the job's desired soft
// skills.
func SoftSkillsScore(desired, candidate []string) float64 {
	return overlapScore(desired, candidate)
}

// ExperienceScore gives linear credit up to full credit at or above the
// requirement. No requirement (zero or below) means no constraint and full
// credit. Exceeding the requirement earns no bonus.
func ExperienceScore(requiredYears, candidateYears float64) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	if candidateYears <= 0 {
		return 0.0
	}
	ratio := candidateYears / requiredYears
	if ratio > 1 {
		return 1.0
	}
	return ratio
}

// EducationScore compares ordinal education ranks. Meeting or exceeding the
// requirement is full credit; falling short earns a fraction proportional to
// how close the candidate rank is, never going negative.
func EducationScore(requiredRank, candidateRank, maxRank int) float64 {
	if candidateRank >= requiredRank {
		return 1.0
	}
	if maxRank <= 0 {
		return 0.0
	}
	score := 1.0 - float64(requiredRank-candidateRank)/float64(maxRank)
	if score < 0 {
		return 0.0
	}
	return score
}
