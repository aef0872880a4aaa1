package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

func newRankingEngine() *analysis.RankingEngine {
	cfg := testCfg()
	stats := analysis.NewStatisticsEngine(cfg)
	trends := analysis.NewTrendEngine(cfg)
	return analysis.NewRankingEngine(stats, trends, cfg)
}

func fourSubjectTable() map[string][]float64 {
	return map[string][]float64{
		"Matematik Net": {10, 10, 10, 10},
		"Fen Net":       {20, 20, 20, 20},
		"Türkçe Net":    {30, 30, 30, 30},
		"Sosyal Net":    {40, 40, 40, 40},
		"Toplam Net":    {100, 100, 100, 100},
	}
}

func TestIdentifyWeakSubjects(t *testing.T) {
	engine := newRankingEngine()
	table := netTable(fourSubjectTable())

	weak := engine.IdentifyWeakSubjects(table)

	// median of means (10,20,30,40) is 25
	require.Len(t, weak, 2)
	assert.Equal(t, "Matematik Net", weak[0].Subject)
	assert.Equal(t, "Fen Net", weak[1].Subject)
	assert.InDelta(t, 10.0, weak[0].Mean, 1e-9)
}

func TestIdentifyStrongSubjects(t *testing.T) {
	engine := newRankingEngine()
	table := netTable(fourSubjectTable())

	strong := engine.IdentifyStrongSubjects(table)

	// p75 of means (10,20,30,40) is 32.5
	require.Len(t, strong, 1)
	assert.Equal(t, "Sosyal Net", strong[0].Subject)
	assert.InDelta(t, 40.0, strong[0].Mean, 1e-9)
}

func TestWeakAndStrongAreDisjoint(t *testing.T) {
	engine := newRankingEngine()
	table := netTable(fourSubjectTable())

	weak := engine.IdentifyWeakSubjects(table)
	strong := engine.IdentifyStrongSubjects(table)

	seen := map[string]bool{}
	for _, s := range weak {
		seen[s.Subject] = true
	}
	for _, s := range strong {
		assert.False(t, seen[s.Subject], "subject %s ranked both weak and strong", s.Subject)
	}
}

func TestRanking_ExcludesAggregateTotal(t *testing.T) {
	engine := newRankingEngine()
	table := netTable(fourSubjectTable())

	for _, s := range engine.IdentifyWeakSubjects(table) {
		assert.NotEqual(t, "Toplam Net", s.Subject)
	}
	for _, s := range engine.IdentifyStrongSubjects(table) {
		assert.NotEqual(t, "Toplam Net", s.Subject)
	}
}

func TestRanking_EmptyTable(t *testing.T) {
	engine := newRankingEngine()
	table := netTable(map[string][]float64{})

	assert.Empty(t, engine.IdentifyWeakSubjects(table))
	assert.Empty(t, engine.IdentifyStrongSubjects(table))
}

func TestCalculateImprovementRate(t *testing.T) {
	engine := newRankingEngine()

	t.Run("strong improvement over full windows", func(t *testing.T) {
		table := netTable(map[string][]float64{
			"Toplam Net": {50, 55, 60, 70, 80, 90},
		})

		rate, ok := engine.CalculateImprovementRate(table, "Toplam Net", 3)
		require.True(t, ok)

		assert.InDelta(t, 80.0, rate.RecentMean, 1e-9)
		assert.InDelta(t, 55.0, rate.PreviousMean, 1e-9)
		assert.InDelta(t, 25.0, rate.AbsoluteChange, 1e-9)
		assert.InDelta(t, 45.4545, rate.PercentageChange, 1e-3)
		assert.Equal(t, models.ImprovementStrong, rate.Interpretation)
	})

	t.Run("short history falls back to the first window", func(t *testing.T) {
		table := netTable(map[string][]float64{
			"Toplam Net": {50, 55, 60, 70},
		})

		rate, ok := engine.CalculateImprovementRate(table, "Toplam Net", 3)
		require.True(t, ok)

		// recent = last 3, previous = first 3
		assert.InDelta(t, (55.0+60+70)/3, rate.RecentMean, 1e-9)
		assert.InDelta(t, 55.0, rate.PreviousMean, 1e-9)
	})

	t.Run("stable interpretation", func(t *testing.T) {
		table := netTable(map[string][]float64{
			"Toplam Net": {60, 60, 60, 61, 60, 60},
		})

		rate, ok := engine.CalculateImprovementRate(table, "Toplam Net", 3)
		require.True(t, ok)
		assert.Equal(t, models.ImprovementStable, rate.Interpretation)
	})

	t.Run("regression warning", func(t *testing.T) {
		table := netTable(map[string][]float64{
			"Toplam Net": {80, 80, 80, 70, 70, 70},
		})

		rate, ok := engine.CalculateImprovementRate(table, "Toplam Net", 3)
		require.True(t, ok)
		assert.Equal(t, models.ImprovementRegression, rate.Interpretation)
	})

	t.Run("not enough data", func(t *testing.T) {
		table := netTable(map[string][]float64{
			"Toplam Net": {60, 60},
		})

		_, ok := engine.CalculateImprovementRate(table, "Toplam Net", 3)
		assert.False(t, ok)
	})
}

func TestCalculateConsistencyScore(t *testing.T) {
	engine := newRankingEngine()

	tests := []struct {
		name     string
		values   []float64
		expected string
		score    int
	}{
		{
			name:     "constant series is very consistent",
			values:   []float64{100, 100, 100},
			expected: models.ConsistencyVeryConsistent,
			score:    5,
		},
		{
			name:     "cv around 14 is consistent",
			values:   []float64{90, 110},
			expected: models.ConsistencyConsistent,
			score:    4,
		},
		{
			name:     "cv around 28 is medium",
			values:   []float64{80, 120},
			expected: models.ConsistencyMedium,
			score:    3,
		},
		{
			name:     "cv around 35 is fluctuating",
			values:   []float64{75, 125},
			expected: models.ConsistencyFluctuating,
			score:    2,
		},
		{
			name:     "cv above 40 is very fluctuating",
			values:   []float64{70, 130},
			expected: models.ConsistencyVeryFluctuating,
			score:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := netTable(map[string][]float64{"Toplam Net": tt.values})

			score, ok := engine.CalculateConsistencyScore(table, "Toplam Net")
			require.True(t, ok)
			assert.Equal(t, tt.expected, score.Consistency)
			assert.Equal(t, tt.score, score.Score)
		})
	}
}
