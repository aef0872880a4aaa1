package models

import "time"

// DateRange is the first and last exam date covered by a report.
type DateRange struct {
	First *time.Time `json:"first,omitempty"`
	Last  *time.Time `json:"last,omitempty"`
}

// SummaryReport is the full per-student analysis handed to the reporting
// layer. Sections that could not be computed are empty, not errors.
type SummaryReport struct {
	ExamType          string                       `json:"exam_type"`
	TotalExams        int                          `json:"total_exams"`
	DateRange         DateRange                    `json:"date_range"`
	OverallStats      *SubjectStatistics           `json:"overall_stats,omitempty"`
	SubjectStats      map[string]SubjectStatistics `json:"subject_stats"`
	Trends            map[string]TrendResult       `json:"trends"`
	WeakSubjects      []SubjectRanking             `json:"weak_subjects"`
	StrongSubjects    []SubjectRanking             `json:"strong_subjects"`
	RecentImprovement *ImprovementRate             `json:"recent_improvement,omitempty"`
}

// ExamComparisonRow is one exam in a last-N comparison.
type ExamComparisonRow struct {
	Name      string             `json:"exam_name"`
	Date      time.Time          `json:"date"`
	NetScores map[string]float64 `json:"net_scores"`
}

// TimeAnalysis aggregates a subject's mean net by ISO week and by month.
type TimeAnalysis struct {
	Subject     string          `json:"subject"`
	WeeklyMean  map[int]float64 `json:"weekly_mean"`
	MonthlyMean map[int]float64 `json:"monthly_mean"`
}
