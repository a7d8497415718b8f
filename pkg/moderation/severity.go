package moderation

// Severity is the harm tier of a detected violation, ordered
// low < medium < high < critical. The order is total and is used to fold
// per-category severities into one overall severity (max wins).
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank defines the total order on severities.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// Rank returns the position of s in the severity order, with low at 0.
// Unknown severities rank below low.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return -1
}

// escalate raises a severity by one tier. Critical stays critical.
func (s Severity) escalate() Severity {
	switch s {
	case SeverityLow:
		return SeverityMedium
	case SeverityMedium:
		return SeverityHigh
	case SeverityHigh:
		return SeverityCritical
	default:
		return s
	}
}

// maxSeverity returns the higher of two severities by tier order.
func maxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// baseSeverity is the fixed base severity tier for each category.
var baseSeverity = map[Category]Severity{
	CategorySpam:                  SeverityLow,
	CategoryInappropriateLanguage: SeverityLow,
	CategoryAdultContent:          SeverityMedium,
	CategoryMisinformation:        SeverityMedium,
	CategoryCopyrightViolation:    SeverityMedium,
	CategoryHateSpeech:            SeverityHigh,
	CategoryHarassment:            SeverityHigh,
	CategoryPhishing:              SeverityHigh,
	CategoryPersonalInformation:   SeverityHigh,
	CategoryViolence:              SeverityCritical,
	CategoryMalware:               SeverityCritical,
}

// BaseSeverity returns the fixed base severity for a category, defaulting to
// low for unknown categories.
func BaseSeverity(c Category) Severity {
	if s, ok := baseSeverity[c]; ok {
		return s
	}
	return SeverityLow
}

// escalationThreshold is the per-category confidence above which a category's
// severity is raised one tier.
const escalationThreshold = 0.8

// categorySeverity returns the (possibly escalated) severity for a single hit
// category given its own confidence.
//
// Harassment is an explicit carve-out: it stays pinned at high regardless of
// confidence. The exception is named here rather than inferred from data so it
// stays visible and testable.
func categorySeverity(c Category, confidence float64) Severity {
	sev := BaseSeverity(c)
	if c == CategoryHarassment {
		return sev
	}
	if confidence > escalationThreshold {
		sev = sev.escalate()
	}
	return sev
}

// overallSeverity folds the per-category severities of all hit categories into
// one overall severity by taking the maximum tier. With no hit categories the
// overall severity is low.
func overallSeverity(reasons []Category, confidences map[Category]float64) Severity {
	overall := SeverityLow
	for _, c := range reasons {
		overall = maxSeverity(overall, categorySeverity(c, confidences[c]))
	}
	return overall
}
