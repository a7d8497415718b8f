package moderation

// Scoring constants. Match density is a weak proxy for severity in short
// texts, so per-rule weight is capped: a single category can move confidence
// within [0,1] but cannot dominate from keyword density alone.
const (
	// matchWeight is the confidence contributed by each matching rule.
	matchWeight = 0.2

	// matchCeiling caps the density-derived portion of the score.
	matchCeiling = 0.8

	// shortTextLimit / shortTextBonus: matches in very short texts are a
	// stronger signal.
	shortTextLimit = 100
	shortTextBonus = 0.2

	// longTextLimit / longTextPenalty: matches diluted across long texts
	// are a weaker signal.
	longTextLimit   = 1000
	longTextPenalty = 0.1

	// repeatOffenderThreshold / repeatOffenderBonus: prior flags above the
	// threshold nudge every per-category score up.
	repeatOffenderThreshold = 3
	repeatOffenderBonus     = 0.1

	// piiConfidence is the fixed contribution of a personal-information
	// hit. It bypasses the density formula entirely and is added directly
	// to the running total.
	piiConfidence = 0.9
)

// categoryConfidence converts a hit category's match count and the combined
// text length (plus prior-offense context) into a confidence value in [0,1].
func categoryConfidence(matchCount, textLen int, actx *AnalysisContext) float64 {
	base := float64(matchCount) * matchWeight
	if base > matchCeiling {
		base = matchCeiling
	}
	if textLen < shortTextLimit {
		base += shortTextBonus
	}
	if textLen > longTextLimit {
		base -= longTextPenalty
	}
	if actx != nil && actx.PreviousFlags > repeatOffenderThreshold {
		base += repeatOffenderBonus
	}
	return clamp01(base)
}

// clamp01 clamps v to the closed interval [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
