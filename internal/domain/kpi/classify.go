package kpi

// Tier is an ordinal performance classification of the overall score.
type Tier string

const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierSatisfactory     Tier = "satisfactory"
	TierNeedsImprovement Tier = "needs_improvement"
	TierPoor             Tier = "poor"
	TierUnknown          Tier = "unknown"
)

type Level struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
}

var tierLabels = map[Tier]string{
	TierExcellent:        "Отлично",
	TierGood:             "Хорошо",
	TierSatisfactory:     "Удовлетворительно",
	TierNeedsImprovement: "Требует улучшения",
	TierPoor:             "Неудовлетворительно",
	TierUnknown:          "Не оценено",
}

// Classify maps an overall score to its tier using inclusive lower bounds,
// first match wins. A score of exactly 0 classifies as unknown, not poor:
// existing clients use 0 as the "not yet evaluated" sentinel and a genuine 0
// only occurs when every sub-metric is 0.
func Classify(overall float64) Level {
	tier := TierUnknown
	switch {
	case overall <= 0:
		tier = TierUnknown
	case overall >= 90:
		tier = TierExcellent
	case overall >= 75:
		tier = TierGood
	case overall >= 60:
		tier = TierSatisfactory
	case overall >= 40:
		tier = TierNeedsImprovement
	default:
		tier = TierPoor
	}
	return Level{Tier: tier, Label: tierLabels[tier]}
}
