// Package analysis is the analytics core: per-subject descriptive
// statistics, linear-trend classification, weak/strong rankings, the
// precomputed topic-frequency index, and study-plan generation. Every
// method is a pure function of the immutable input table; methods guard
// their own preconditions and degrade to empty results with a logged
// warning instead of returning errors.
package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// StatisticsEngine computes descriptive statistics per subject.
type StatisticsEngine struct {
	cfg config.Analysis
	log *logger.Logger
}

// NewStatisticsEngine creates a StatisticsEngine with the given thresholds.
func NewStatisticsEngine(cfg config.Analysis) *StatisticsEngine {
	return &StatisticsEngine{cfg: cfg, log: logger.Default().WithPrefix("statistics")}
}

// Statistics summarizes one subject's net scores. It returns ok=false when
// the column is absent or has no usable values.
func (e *StatisticsEngine) Statistics(t *exam.Table, subject string) (models.SubjectStatistics, bool) {
	if !t.HasSubject(subject) {
		e.log.Warn("column not found: %s", subject)
		return models.SubjectStatistics{}, false
	}

	data := t.Series(subject)
	if len(data) == 0 {
		e.log.Warn("no data for %s", subject)
		return models.SubjectStatistics{}, false
	}

	sorted := sortedCopy(data)
	mean := stat.Mean(data, nil)
	std := sampleStd(data)
	q25 := quantile(sorted, 0.25)
	q75 := quantile(sorted, 0.75)
	min := floats.Min(sorted)
	max := floats.Max(sorted)

	cv := 0.0
	if mean != 0 {
		cv = std / mean * 100
	}

	s := models.SubjectStatistics{
		Subject: subject,
		Count:   len(data),
		Mean:    mean,
		Median:  quantile(sorted, 0.5),
		Std:     std,
		Min:     min,
		Max:     max,
		Q25:     q25,
		Q75:     q75,
		IQR:     q75 - q25,
		CV:      cv,
		Range:   max - min,
		Latest:  data[len(data)-1],
		First:   data[0],
	}

	if len(data) >= 3 {
		skew := stat.Skew(data, nil)
		s.Skewness = &skew
		// The bias-corrected excess kurtosis divides by n-3.
		if len(data) >= 4 {
			kurt := stat.ExKurtosis(data, nil)
			s.Kurtosis = &kurt
		} else {
			zero := 0.0
			s.Kurtosis = &zero
		}
	}

	return s, true
}

// AllSubjectsStatistics summarizes every column whose name contains the
// net-score marker, keyed by subject. Subjects with no usable data are
// omitted.
func (e *StatisticsEngine) AllSubjectsStatistics(t *exam.Table) map[string]models.SubjectStatistics {
	out := map[string]models.SubjectStatistics{}
	for _, subject := range t.NetSubjects(e.cfg.NetMarker) {
		if s, ok := e.Statistics(t, subject); ok {
			out[subject] = s
		}
	}
	return out
}
