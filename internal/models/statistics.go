package models

// SubjectStatistics is the descriptive summary of one subject's net scores.
// Skewness and kurtosis are present only when there are at least three
// observations (kurtosis needs four).
type SubjectStatistics struct {
	Subject  string   `json:"subject"`
	Count    int      `json:"count"`
	Mean     float64  `json:"mean"`
	Median   float64  `json:"median"`
	Std      float64  `json:"std"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Q25      float64  `json:"q25"`
	Q75      float64  `json:"q75"`
	IQR      float64  `json:"iqr"`
	CV       float64  `json:"cv"`
	Range    float64  `json:"range"`
	Latest   float64  `json:"latest"`
	First    float64  `json:"first"`
	Skewness *float64 `json:"skewness,omitempty"`
	Kurtosis *float64 `json:"kurtosis,omitempty"`
}

// Consistency labels mapped from the coefficient of variation.
const (
	ConsistencyVeryConsistent  = "very consistent"
	ConsistencyConsistent      = "consistent"
	ConsistencyMedium          = "medium"
	ConsistencyFluctuating     = "fluctuating"
	ConsistencyVeryFluctuating = "very fluctuating"
)

// ConsistencyScore maps a subject's coefficient of variation to a 5-level
// ordinal scale (5 = very consistent, 1 = very fluctuating).
type ConsistencyScore struct {
	Subject     string  `json:"subject"`
	CV          float64 `json:"cv"`
	Consistency string  `json:"consistency"`
	Score       int     `json:"score"`
	Std         float64 `json:"std"`
	Mean        float64 `json:"mean"`
}
