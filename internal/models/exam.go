package models

import "time"

// ExamRecord is one attempted practice exam as produced by the cleaning
// stage. Records are immutable for the lifetime of an analysis run; the
// engines only derive new structures from them.
type ExamRecord struct {
	Name            string              `json:"exam_name"`
	Date            time.Time           `json:"date"`
	DurationMinutes *int                `json:"duration_minutes,omitempty"`
	NetScores       map[string]float64  `json:"net_scores"`
	WrongTopics     map[string][]string `json:"wrong_topics"`
}

// Net returns the net score for a subject column and whether it is present.
func (r ExamRecord) Net(subject string) (float64, bool) {
	v, ok := r.NetScores[subject]
	return v, ok
}
