package models

// SubjectRanking annotates a subject's mean with its latest value and the
// current trend label. Weak subjects sort ascending by mean, strong subjects
// descending.
type SubjectRanking struct {
	Subject string  `json:"subject"`
	Mean    float64 `json:"mean"`
	Latest  float64 `json:"latest"`
	Trend   string  `json:"trend"`
}

// Improvement-rate interpretation bands.
const (
	ImprovementStrong     = "strong improvement"
	ImprovementGood       = "good improvement"
	ImprovementStable     = "stable"
	ImprovementRegression = "regression warning"
)

// ImprovementRate compares the most recent window of exams with the window
// before it.
type ImprovementRate struct {
	Subject             string  `json:"subject"`
	RecentMean          float64 `json:"recent_mean"`
	PreviousMean        float64 `json:"previous_mean"`
	AbsoluteChange      float64 `json:"absolute_change"`
	PercentageChange    float64 `json:"percentage_change"`
	RecentStd           float64 `json:"recent_std"`
	PreviousStd         float64 `json:"previous_std"`
	ConsistencyImproved bool    `json:"consistency_improved"`
	Interpretation      string  `json:"interpretation"`
}
