package kpi

import "strconv"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	CourseName string   `json:"courseName"`
	Reason     string   `json:"reason"`
	Priority   Priority `json:"priority"`
}

// Recommend maps one evaluation's metrics to an ordered course list. The
// caller passes the subject's most recent evaluation; a subject with no
// evaluations gets an empty list without calling here.
//
// The rule table is fixed: each threshold appends its courses in rule order,
// and the output is never re-sorted by priority. Course names and reasons are
// rendered verbatim by existing clients, so they stay exactly as the legacy
// catalog spelled them.
func Recommend(m Metrics) []Recommendation {
	recs := make([]Recommendation, 0, 8)

	if m.CompletedTasks < 70 {
		recs = append(recs,
			Recommendation{
				CourseName: "Agile и Scrum методологии (Coursera - 16 часов)",
				Reason:     "Низкий KPI выполненных задач (" + formatMetric(m.CompletedTasks) + "%)",
				Priority:   PriorityHigh,
			},
			Recommendation{
				CourseName: "Тайм-менеджмент по методу Pomodoro (LinkedIn Learning - 8 часов)",
				Reason:     "Для улучшения производительности",
				Priority:   PriorityMedium,
			})
	}

	if m.FixTime < 60 {
		recs = append(recs,
			Recommendation{
				CourseName: "Системное мышление и решение проблем (Stepik - 20 часов)",
				Reason:     "Низкий KPI времени исправлений (" + formatMetric(m.FixTime) + "%)",
				Priority:   PriorityHigh,
			},
			Recommendation{
				CourseName: "Основы алгоритмов и структур данных (Яндекс Практикум - 40 часов)",
				Reason:     "Для улучшения качества кода",
				Priority:   PriorityMedium,
			})
	}

	if m.TestCoverage < 50 {
		recs = append(recs,
			Recommendation{
				CourseName: "Test-Driven Development (Udemy - 24 часа)",
				Reason:     "Низкий KPI тестового покрытия (" + formatMetric(m.TestCoverage) + "%)",
				Priority:   PriorityMedium,
			},
			Recommendation{
				CourseName: "Автоматизация тестирования на Python (Stepik - 36 часов)",
				Reason:     "Для повышения качества тестирования",
				Priority:   PriorityMedium,
			})
	}

	if m.Timeliness < 75 {
		recs = append(recs,
			Recommendation{
				CourseName: "Управление проектами по методологии PMI (Coursera - 30 часов)",
				Reason:     "Низкий KPI соблюдения сроков (" + formatMetric(m.Timeliness) + "%)",
				Priority:   PriorityHigh,
			},
			Recommendation{
				CourseName: "Эффективное планирование в Jira (LinkedIn Learning - 12 часов)",
				Reason:     "Для лучшего контроля сроков",
				Priority:   PriorityMedium,
			})
	}

	if m.Overall < 60 {
		recs = append(recs,
			Recommendation{
				CourseName: "Комплексное развитие IT-специалиста (Нетология - 60 часов)",
				Reason:     "Низкий общий KPI (" + strconv.FormatFloat(m.Overall, 'f', 2, 64) + "%)",
				Priority:   PriorityHigh,
			},
			Recommendation{
				CourseName: "Профессиональные навыки разработчика (Skillbox - 45 часов)",
				Reason:     "Для всестороннего развития",
				Priority:   PriorityMedium,
			})
	} else if m.Overall >= 85 {
		recs = append(recs,
			Recommendation{
				CourseName: "Лидерство в IT-командах (Coursera - 25 часов)",
				Reason:     "Высокий потенциал для развития лидерских качеств",
				Priority:   PriorityLow,
			},
			Recommendation{
				CourseName: "Технический менеджмент и архитектура (Отус - 35 часов)",
				Reason:     "Для карьерного роста в управлении",
				Priority:   PriorityLow,
			})
	}

	if m.Overall >= 90 {
		recs = append(recs, Recommendation{
			CourseName: "Публичные выступления для IT-специалистов (Skillfactory - 15 часов)",
			Reason:     "Отличные результаты, развитие софт-скиллов",
			Priority:   PriorityLow,
		})
	}

	if m.CompletedTasks < 65 || m.Timeliness < 70 {
		recs = append(recs, Recommendation{
			CourseName: "Эффективная коммуникация в команде (Edureka - 18 часов)",
			Reason:     "Для улучшения взаимодействия с коллегами",
			Priority:   PriorityMedium,
		})
	}

	return recs
}

// formatMetric prints sub-metric values the way the legacy UI did: no
// trailing zeros, full precision otherwise.
func formatMetric(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
