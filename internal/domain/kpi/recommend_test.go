package kpi

import (
	"strings"
	"testing"
)

func TestRecommendEmptyWhenAllHealthy(t *testing.T) {
	// Every sub-metric at or above its threshold and overall in [60,85).
	m := Metrics{CompletedTasks: 80, FixTime: 70, TestCoverage: 60, Timeliness: 80, Overall: 75}
	if recs := Recommend(m); len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d: %+v", len(recs), recs)
	}
}

func TestRecommendEndToEndScenario(t *testing.T) {
	m := Metrics{
		CompletedTasks: 60,
		FixTime:        55,
		TestCoverage:   40,
		Timeliness:     70,
		Overall:        Overall(60, 55, 40, 70),
	}
	if m.Overall != 57.00 {
		t.Fatalf("expected overall 57.00, got %v", m.Overall)
	}

	// Every sub-metric is below its threshold and the overall lands under
	// 60, so all five low-score pairs fire plus the communication course:
	// eleven in total, in rule order with the overall pair before the
	// communication course.
	recs := Recommend(m)
	if len(recs) != 11 {
		t.Fatalf("expected 11 recommendations, got %d", len(recs))
	}

	wantOrder := []struct {
		contains string
		priority Priority
	}{
		{"Agile и Scrum", PriorityHigh},
		{"Тайм-менеджмент", PriorityMedium},
		{"Системное мышление", PriorityHigh},
		{"алгоритмов", PriorityMedium},
		{"Test-Driven Development", PriorityMedium},
		{"Автоматизация тестирования", PriorityMedium},
		{"методологии PMI", PriorityHigh},
		{"планирование в Jira", PriorityMedium},
		{"Комплексное развитие", PriorityHigh},
		{"Профессиональные навыки", PriorityMedium},
		{"коммуникация в команде", PriorityMedium},
	}
	for i, want := range wantOrder {
		if !strings.Contains(recs[i].CourseName, want.contains) {
			t.Fatalf("position %d: expected course containing %q, got %q", i, want.contains, recs[i].CourseName)
		}
		if recs[i].Priority != want.priority {
			t.Fatalf("position %d: expected priority %s, got %s", i, want.priority, recs[i].Priority)
		}
	}
}

func TestRecommendOverallBranchesExclusive(t *testing.T) {
	low := Recommend(Metrics{CompletedTasks: 100, FixTime: 100, TestCoverage: 100, Timeliness: 100, Overall: 59})
	for _, rec := range low {
		if strings.Contains(rec.CourseName, "Лидерство") {
			t.Fatal("low overall must not trigger leadership branch")
		}
	}

	high := Recommend(Metrics{CompletedTasks: 100, FixTime: 100, TestCoverage: 100, Timeliness: 100, Overall: 86})
	if len(high) != 2 {
		t.Fatalf("expected the two leadership courses, got %d", len(high))
	}
	for _, rec := range high {
		if rec.Priority != PriorityLow {
			t.Fatalf("leadership courses are low priority, got %s", rec.Priority)
		}
	}
}

func TestRecommendExcellentCoOccurrence(t *testing.T) {
	// >=90 triggers both the >=85 leadership pair and the soft-skills course.
	recs := Recommend(Metrics{CompletedTasks: 95, FixTime: 95, TestCoverage: 95, Timeliness: 95, Overall: 95})
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}
	if !strings.Contains(recs[2].CourseName, "Публичные выступления") {
		t.Fatalf("expected soft-skills course last, got %q", recs[2].CourseName)
	}
}

func TestRecommendMonotonicity(t *testing.T) {
	base := Metrics{CompletedTasks: 80, FixTime: 55, TestCoverage: 60, Timeliness: 80, Overall: 66}
	before := Recommend(base)

	// Drop a different metric below its threshold; previously triggered
	// rules must survive.
	lowered := base
	lowered.TestCoverage = 45
	after := Recommend(lowered)

	if len(after) <= len(before) {
		t.Fatalf("lowering a metric must add recommendations: before %d after %d", len(before), len(after))
	}
	for _, prev := range before {
		found := false
		for _, rec := range after {
			if rec.CourseName == prev.CourseName {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("recommendation %q disappeared after lowering another metric", prev.CourseName)
		}
	}
}

func TestRecommendCommunicationRule(t *testing.T) {
	// Rule 7 triggers on completedTasks < 65 even when timeliness is fine.
	recs := Recommend(Metrics{CompletedTasks: 64, FixTime: 100, TestCoverage: 100, Timeliness: 100, Overall: 75.6})
	last := recs[len(recs)-1]
	if !strings.Contains(last.CourseName, "коммуникация") {
		t.Fatalf("expected communication course last, got %q", last.CourseName)
	}

	// And on timeliness < 70 alone.
	recs = Recommend(Metrics{CompletedTasks: 100, FixTime: 100, TestCoverage: 100, Timeliness: 69, Overall: 93.8})
	found := false
	for _, rec := range recs {
		if strings.Contains(rec.CourseName, "коммуникация") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected communication course for late timeliness")
	}
}
