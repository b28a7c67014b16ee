package kpi

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		overall float64
		tier    Tier
	}{
		{100, TierExcellent},
		{90, TierExcellent},
		{89.99, TierGood},
		{75, TierGood},
		{74.99, TierSatisfactory},
		{60, TierSatisfactory},
		{59.99, TierNeedsImprovement},
		{40, TierNeedsImprovement},
		{39.99, TierPoor},
		{0.01, TierPoor},
		{0, TierUnknown},
	}

	for _, tc := range cases {
		if got := Classify(tc.overall); got.Tier != tc.tier {
			t.Fatalf("Classify(%v) = %s, expected %s", tc.overall, got.Tier, tc.tier)
		}
	}
}

func TestClassifyZeroIsUnknownNotPoor(t *testing.T) {
	// 0 doubles as the "not yet evaluated" sentinel in stored data.
	got := Classify(0)
	if got.Tier != TierUnknown {
		t.Fatalf("expected unknown for 0, got %s", got.Tier)
	}
	if got.Label != "Не оценено" {
		t.Fatalf("unexpected label %q", got.Label)
	}
}

func TestClassifyLabels(t *testing.T) {
	if got := Classify(92.5); got.Label != "Отлично" {
		t.Fatalf("unexpected label %q", got.Label)
	}
	if got := Classify(45); got.Label != "Требует улучшения" {
		t.Fatalf("unexpected label %q", got.Label)
	}
}
