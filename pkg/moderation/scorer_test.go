package moderation

import (
	"math"
	"testing"
)

func TestCategoryConfidence(t *testing.T) {
	tests := []struct {
		name       string
		matchCount int
		textLen    int
		actx       *AnalysisContext
		want       float64
	}{
		{name: "single match short text", matchCount: 1, textLen: 50, want: 0.4},
		{name: "single match medium text", matchCount: 1, textLen: 500, want: 0.2},
		{name: "single match long text", matchCount: 1, textLen: 1500, want: 0.1},
		{name: "density capped", matchCount: 6, textLen: 500, want: 0.8},
		{name: "cap plus short bonus clamps to one", matchCount: 6, textLen: 50, want: 1.0},
		{name: "repeat offender bonus", matchCount: 1, textLen: 500, actx: &AnalysisContext{PreviousFlags: 4}, want: 0.3},
		{name: "prior flags at threshold do not count", matchCount: 1, textLen: 500, actx: &AnalysisContext{PreviousFlags: 3}, want: 0.2},
		{name: "nil context", matchCount: 2, textLen: 500, actx: nil, want: 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categoryConfidence(tt.matchCount, tt.textLen, tt.actx)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("categoryConfidence(%d, %d) = %v, want %v",
					tt.matchCount, tt.textLen, got, tt.want)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.37, 0.37},
		{1, 1},
		{1.3, 1},
	}

	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
