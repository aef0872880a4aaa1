package models

// Trend labels, in the order the classification ladder evaluates them.
const (
	TrendInsignificant  = "statistically insignificant"
	TrendStrongIncrease = "strong increase"
	TrendSlightIncrease = "slight increase"
	TrendStrongDecrease = "strong decrease"
	TrendSlightDecrease = "slight decrease"
	TrendStable         = "stable"
	TrendUnknown        = "unknown"
)

// TrendResult is the ordinary-least-squares fit of a subject's net score
// against exam order, plus its classification and one-step-ahead projection.
type TrendResult struct {
	Subject          string  `json:"subject"`
	Slope            float64 `json:"slope"`
	Intercept        float64 `json:"intercept"`
	RSquared         float64 `json:"r_squared"`
	PValue           float64 `json:"p_value"`
	StdError         float64 `json:"std_error"`
	Trend            string  `json:"trend"`
	NextPrediction   float64 `json:"next_prediction"`
	TotalImprovement float64 `json:"total_improvement"`
	ImprovementPct   float64 `json:"improvement_percentage"`
}

// Prediction is a confidence-bounded forecast for the next exam.
type Prediction struct {
	Subject      string  `json:"subject"`
	Prediction   float64 `json:"prediction"`
	LowerBound   float64 `json:"lower_bound"`
	UpperBound   float64 `json:"upper_bound"`
	Confidence   int     `json:"confidence"`
	BasedOnExams int     `json:"based_on_exams"`
	LatestNet    float64 `json:"latest_net"`
}

// Target-gap status buckets.
const (
	TargetExceeded  = "target exceeded"
	TargetVeryClose = "very close"
	TargetOnTrack   = "on track"
	TargetNeedsWork = "needs more work"
)

// TargetComparison projects the gap to a goal net at the current trend.
// ExamsNeeded is nil when the trend slope is not positive.
type TargetComparison struct {
	Subject       string  `json:"subject"`
	Target        float64 `json:"target"`
	Current       float64 `json:"current"`
	Gap           float64 `json:"gap"`
	GapPercentage float64 `json:"gap_percentage"`
	ExamsNeeded   *int    `json:"exams_needed,omitempty"`
	Achievable    bool    `json:"achievable"`
	Status        string  `json:"status"`
}
