package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
)

func newReporter() *analysis.Reporter {
	cfg := testCfg()
	stats := analysis.NewStatisticsEngine(cfg)
	trends := analysis.NewTrendEngine(cfg)
	ranking := analysis.NewRankingEngine(stats, trends, cfg)
	topics := analysis.NewTopicEngine(cfg, config.TYTProfile())
	return analysis.NewReporter(stats, trends, ranking, topics, cfg, "TYT")
}

func TestSummaryReport(t *testing.T) {
	reporter := newReporter()
	table := netTable(map[string][]float64{
		"Matematik Net": {10, 12, 14, 16},
		"Türkçe Net":    {30, 31, 32, 33},
		"Toplam Net":    {40, 43, 46, 49},
	})

	rep := reporter.SummaryReport(table)

	assert.Equal(t, "TYT", rep.ExamType)
	assert.Equal(t, 4, rep.TotalExams)
	require.NotNil(t, rep.DateRange.First)
	require.NotNil(t, rep.DateRange.Last)
	assert.True(t, rep.DateRange.First.Before(*rep.DateRange.Last))

	require.NotNil(t, rep.OverallStats)
	assert.InDelta(t, 44.5, rep.OverallStats.Mean, 1e-9)

	assert.Len(t, rep.SubjectStats, 3)
	assert.Len(t, rep.Trends, 3)
	require.NotNil(t, rep.RecentImprovement)
	assert.Equal(t, "Toplam Net", rep.RecentImprovement.Subject)
}

func TestSummaryReport_EmptyTable(t *testing.T) {
	reporter := newReporter()
	rep := reporter.SummaryReport(exam.New(nil, nil))

	assert.Equal(t, 0, rep.TotalExams)
	assert.Nil(t, rep.DateRange.First)
	assert.Nil(t, rep.OverallStats)
	assert.Nil(t, rep.RecentImprovement)
	assert.Empty(t, rep.SubjectStats)
	assert.Empty(t, rep.WeakSubjects)
}

func TestExamComparison(t *testing.T) {
	reporter := newReporter()
	table := netTable(map[string][]float64{
		"Toplam Net": {40, 43, 46, 49, 52, 55, 58},
	})

	rows := reporter.ExamComparison(table, 0) // default last 5

	require.Len(t, rows, 5)
	assert.InDelta(t, 46.0, rows[0].NetScores["Toplam Net"], 1e-9)
	assert.InDelta(t, 58.0, rows[4].NetScores["Toplam Net"], 1e-9)
	assert.True(t, rows[0].Date.Before(rows[4].Date))
}

func TestTimeBasedAnalysis(t *testing.T) {
	reporter := newReporter()
	// weekly exams starting 2025-01-04
	table := netTable(map[string][]float64{
		"Matematik Net": {10, 20, 30},
	})

	ta, ok := reporter.TimeBasedAnalysis(table, "Matematik Net")
	require.True(t, ok)

	assert.Equal(t, "Matematik Net", ta.Subject)
	assert.Len(t, ta.WeeklyMean, 3) // one exam per ISO week
	// all three exams fall in January
	require.Len(t, ta.MonthlyMean, 1)
	assert.InDelta(t, 20.0, ta.MonthlyMean[1], 1e-9)

	_, ok = reporter.TimeBasedAnalysis(table, "Fizik Net")
	assert.False(t, ok)
}
