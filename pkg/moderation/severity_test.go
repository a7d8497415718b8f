package moderation

import "testing"

func TestSeverityOrder(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Errorf("%v should rank above %v", ordered[i], ordered[i-1])
		}
	}

	if got := maxSeverity(SeverityMedium, SeverityCritical); got != SeverityCritical {
		t.Errorf("maxSeverity(medium, critical) = %v", got)
	}
	if got := maxSeverity(SeverityHigh, SeverityLow); got != SeverityHigh {
		t.Errorf("maxSeverity(high, low) = %v", got)
	}
}

func TestCategorySeverity(t *testing.T) {
	tests := []struct {
		name       string
		category   Category
		confidence float64
		want       Severity
	}{
		{name: "spam base", category: CategorySpam, confidence: 0.5, want: SeverityLow},
		{name: "spam escalated", category: CategorySpam, confidence: 0.9, want: SeverityMedium},
		{name: "spam at threshold not escalated", category: CategorySpam, confidence: 0.8, want: SeverityLow},
		{name: "misinformation escalated", category: CategoryMisinformation, confidence: 0.85, want: SeverityHigh},
		{name: "phishing escalated", category: CategoryPhishing, confidence: 0.9, want: SeverityCritical},
		{name: "violence already critical", category: CategoryViolence, confidence: 0.95, want: SeverityCritical},
		{name: "harassment pinned at high", category: CategoryHarassment, confidence: 0.99, want: SeverityHigh},
		{name: "harassment base", category: CategoryHarassment, confidence: 0.2, want: SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categorySeverity(tt.category, tt.confidence); got != tt.want {
				t.Errorf("categorySeverity(%v, %v) = %v, want %v",
					tt.category, tt.confidence, got, tt.want)
			}
		})
	}
}

func TestOverallSeverity(t *testing.T) {
	confidences := map[Category]float64{
		CategorySpam:       0.9,
		CategoryHarassment: 0.9,
	}

	got := overallSeverity([]Category{CategorySpam, CategoryHarassment}, confidences)
	if got != SeverityHigh {
		t.Errorf("overallSeverity = %v, want high", got)
	}

	if got := overallSeverity(nil, nil); got != SeverityLow {
		t.Errorf("overallSeverity with no hits = %v, want low", got)
	}
}

func TestBaseSeverityCoversAllCategories(t *testing.T) {
	for _, cat := range Categories() {
		if _, ok := baseSeverity[cat]; !ok {
			t.Errorf("category %v has no base severity", cat)
		}
	}
}
