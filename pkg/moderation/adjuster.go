package moderation

import "math"

// Context adjustment constants.
const (
	// multiHitBonus is added for every hit category beyond the first.
	multiHitBonus = 0.1

	// repeatOffenderBoost and repeatOffenderFloor apply to users whose
	// previous flag count exceeds repeatOffenderThreshold: their aggregate
	// confidence is boosted and floored.
	repeatOffenderBoost = 0.2
	repeatOffenderFloor = 0.4

	// platformTwitter gets a small additive nudge.
	platformTwitter     = "twitter"
	twitterPlatformBump = 0.05

	// audienceChildren gets a larger additive nudge.
	audienceChildren     = "children"
	childrenAudienceBump = 0.1
)

// adjustConfidence combines the summed per-category confidences (including
// any personal-information contribution) into the final aggregate confidence.
//
// Order matters: the repeat-offender floor-and-boost is applied after the
// multiplicity bonus but before the platform and audience nudges.
func adjustConfidence(sum float64, hitCount int, actx *AnalysisContext) float64 {
	adjusted := sum

	if hitCount > 1 {
		adjusted += multiHitBonus * float64(hitCount-1)
	}

	if actx != nil {
		if actx.PreviousFlags > repeatOffenderThreshold {
			adjusted = math.Max(adjusted+repeatOffenderBoost, repeatOffenderFloor)
		}
		if actx.Platform == platformTwitter {
			adjusted += twitterPlatformBump
		}
		if actx.Audience == audienceChildren {
			adjusted += childrenAudienceBump
		}
	}

	return clamp01(adjusted)
}
