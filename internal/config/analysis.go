package config

// Analysis holds the thresholds the analytics engines are constructed with.
// Passing these explicitly (instead of reading package-level state) keeps the
// engines testable with varied thresholds.
type Analysis struct {
	// Linear trend classification.
	PValueThreshold float64
	StrongSlope     float64
	LightSlope      float64

	// Improvement-rate interpretation bands (absolute net change).
	ImprovementStrong float64
	ImprovementLight  float64
	ImprovementWindow int

	// Goal-gap projection: a gap is "achievable" when it can be closed within
	// this many more exams at the current slope.
	TargetHorizonExams int

	// Reporting.
	CompareLastN      int
	TopNTopics        int
	WeakAreaThreshold int

	// Column naming conventions of the cleaned table.
	NetMarker    string
	TotalSubject string
}

// DefaultAnalysis returns the thresholds the original tracker ships with.
func DefaultAnalysis() Analysis {
	return Analysis{
		PValueThreshold:    0.05,
		StrongSlope:        0.5,
		LightSlope:         0.1,
		ImprovementStrong:  5.0,
		ImprovementLight:   2.0,
		ImprovementWindow:  3,
		TargetHorizonExams: 10,
		CompareLastN:       5,
		TopNTopics:         10,
		WeakAreaThreshold:  3,
		NetMarker:          "Net",
		TotalSubject:       "Toplam Net",
	}
}
