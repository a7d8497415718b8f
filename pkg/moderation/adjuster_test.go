package moderation

import (
	"math"
	"testing"
)

func TestAdjustConfidence(t *testing.T) {
	tests := []struct {
		name     string
		sum      float64
		hitCount int
		actx     *AnalysisContext
		want     float64
	}{
		{name: "no hits no context", sum: 0, hitCount: 0, want: 0},
		{name: "single hit passes through", sum: 0.4, hitCount: 1, want: 0.4},
		{name: "multiplicity bonus", sum: 0.5, hitCount: 3, want: 0.7},
		{name: "repeat offender boost", sum: 0.5, hitCount: 1, actx: &AnalysisContext{PreviousFlags: 5}, want: 0.7},
		{name: "repeat offender floor", sum: 0.1, hitCount: 1, actx: &AnalysisContext{PreviousFlags: 5}, want: 0.4},
		{name: "floor applies with zero hits", sum: 0, hitCount: 0, actx: &AnalysisContext{PreviousFlags: 5}, want: 0.4},
		{name: "twitter nudge", sum: 0.4, hitCount: 1, actx: &AnalysisContext{Platform: "twitter"}, want: 0.45},
		{name: "children nudge", sum: 0.4, hitCount: 1, actx: &AnalysisContext{Audience: "children"}, want: 0.5},
		{name: "other platform ignored", sum: 0.4, hitCount: 1, actx: &AnalysisContext{Platform: "mastodon"}, want: 0.4},
		{
			// Floor before nudges: 0.1 -> floored to 0.4, then +0.05 and
			// +0.1 on top.
			name:     "floor applied before nudges",
			sum:      0.1,
			hitCount: 1,
			actx:     &AnalysisContext{PreviousFlags: 5, Platform: "twitter", Audience: "children"},
			want:     0.55,
		},
		{name: "clamped at one", sum: 0.9, hitCount: 4, actx: &AnalysisContext{Audience: "children"}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustConfidence(tt.sum, tt.hitCount, tt.actx)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("adjustConfidence(%v, %d, %+v) = %v, want %v",
					tt.sum, tt.hitCount, tt.actx, got, tt.want)
			}
		})
	}
}
