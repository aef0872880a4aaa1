package analysis

import (
	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// Reporter assembles the structured summary handed to the reporting layer.
// Sections that cannot be computed stay empty; a partial table never fails
// the whole report.
type Reporter struct {
	stats   *StatisticsEngine
	trends  *TrendEngine
	ranking *RankingEngine
	topics  *TopicEngine
	cfg     config.Analysis
	exam    string
}

// NewReporter creates a Reporter over the four engines.
func NewReporter(stats *StatisticsEngine, trends *TrendEngine, ranking *RankingEngine, topics *TopicEngine, cfg config.Analysis, examType string) *Reporter {
	return &Reporter{
		stats:   stats,
		trends:  trends,
		ranking: ranking,
		topics:  topics,
		cfg:     cfg,
		exam:    examType,
	}
}

// SummaryReport builds the full net-score summary for the table.
func (r *Reporter) SummaryReport(t *exam.Table) models.SummaryReport {
	rep := models.SummaryReport{
		ExamType:       r.exam,
		TotalExams:     t.Len(),
		SubjectStats:   r.stats.AllSubjectsStatistics(t),
		Trends:         r.trends.AllSubjectsTrends(t),
		WeakSubjects:   r.ranking.IdentifyWeakSubjects(t),
		StrongSubjects: r.ranking.IdentifyStrongSubjects(t),
	}

	if t.Len() > 0 {
		sorted := t.SortedByDate()
		first := sorted.Records[0].Date
		last := sorted.Records[len(sorted.Records)-1].Date
		rep.DateRange = models.DateRange{First: &first, Last: &last}
	}

	if overall, ok := r.stats.Statistics(t, r.cfg.TotalSubject); ok {
		rep.OverallStats = &overall
	}
	if imp, ok := r.ranking.CalculateImprovementRate(t, r.cfg.TotalSubject, r.cfg.ImprovementWindow); ok {
		rep.RecentImprovement = &imp
	}

	return rep
}

// TopicReport builds the topic-level summary for the table.
func (r *Reporter) TopicReport(t *exam.Table) models.TopicSummary {
	return r.topics.TopicSummaryReport(t)
}

// ExamComparison returns the last n exams with their net scores, oldest
// first.
func (r *Reporter) ExamComparison(t *exam.Table, n int) []models.ExamComparisonRow {
	if n <= 0 {
		n = r.cfg.CompareLastN
	}

	sorted := t.SortedByDate()
	records := sorted.Records
	if len(records) > n {
		records = records[len(records)-n:]
	}

	rows := make([]models.ExamComparisonRow, len(records))
	for i, rec := range records {
		rows[i] = models.ExamComparisonRow{
			Name:      rec.Name,
			Date:      rec.Date,
			NetScores: rec.NetScores,
		}
	}
	return rows
}

// TimeBasedAnalysis aggregates the subject's mean net by ISO week and by
// month.
func (r *Reporter) TimeBasedAnalysis(t *exam.Table, subject string) (models.TimeAnalysis, bool) {
	if !t.HasSubject(subject) {
		return models.TimeAnalysis{}, false
	}

	weekSum := map[int]float64{}
	weekCount := map[int]int{}
	monthSum := map[int]float64{}
	monthCount := map[int]int{}

	for _, rec := range t.Records {
		v, ok := rec.Net(subject)
		if !ok {
			continue
		}
		_, week := rec.Date.ISOWeek()
		month := int(rec.Date.Month())
		weekSum[week] += v
		weekCount[week]++
		monthSum[month] += v
		monthCount[month]++
	}

	weekly := make(map[int]float64, len(weekSum))
	for w, sum := range weekSum {
		weekly[w] = sum / float64(weekCount[w])
	}
	monthly := make(map[int]float64, len(monthSum))
	for m, sum := range monthSum {
		monthly[m] = sum / float64(monthCount[m])
	}

	return models.TimeAnalysis{Subject: subject, WeeklyMean: weekly, MonthlyMean: monthly}, true
}
