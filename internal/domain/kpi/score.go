package kpi

import "math"

// Weights of the four sub-metrics in the overall score. Must sum to 1.
const (
	WeightCompletedTasks = 0.4
	WeightFixTime        = 0.2
	WeightTestCoverage   = 0.2
	WeightTimeliness     = 0.2
)

// Metrics holds one evaluation's sub-metrics and derived overall score.
// All values live in [0,100]; range validation is the caller's job.
type Metrics struct {
	CompletedTasks float64
	FixTime        float64
	TestCoverage   float64
	Timeliness     float64
	Overall        float64
}

// Overall returns the weighted composite score rounded half-up to two
// decimal places. The stored overall_kpi column is always this recomputation,
// never a client-supplied value.
func Overall(completedTasks, fixTime, testCoverage, timeliness float64) float64 {
	raw := completedTasks*WeightCompletedTasks +
		fixTime*WeightFixTime +
		testCoverage*WeightTestCoverage +
		timeliness*WeightTimeliness
	return math.Round(raw*100) / 100
}
