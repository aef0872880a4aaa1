package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// RankingEngine classifies subjects as weak or strong and scores
// consistency, built on top of the statistics and trend engines.
type RankingEngine struct {
	stats  *StatisticsEngine
	trends *TrendEngine
	cfg    config.Analysis
	log    *logger.Logger
}

// NewRankingEngine creates a RankingEngine over the given engines.
func NewRankingEngine(stats *StatisticsEngine, trends *TrendEngine, cfg config.Analysis) *RankingEngine {
	return &RankingEngine{
		stats:  stats,
		trends: trends,
		cfg:    cfg,
		log:    logger.Default().WithPrefix("ranking"),
	}
}

// IdentifyWeakSubjects returns the subjects whose mean net is below the
// median of per-subject means (the aggregate total excluded), worst first.
func (e *RankingEngine) IdentifyWeakSubjects(t *exam.Table) []models.SubjectRanking {
	allStats, allTrends := e.comparableSubjects(t)
	if len(allStats) == 0 {
		return nil
	}

	median := quantile(sortedMeans(allStats), 0.5)
	var weak []models.SubjectRanking
	for subject, s := range allStats {
		if s.Mean < median {
			weak = append(weak, rankingFor(subject, s, allTrends))
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].Mean == weak[j].Mean {
			return weak[i].Subject < weak[j].Subject
		}
		return weak[i].Mean < weak[j].Mean
	})
	return weak
}

// IdentifyStrongSubjects returns the subjects whose mean net is at or above
// the 75th percentile of per-subject means, best first. An empty statistics
// table yields an empty result.
func (e *RankingEngine) IdentifyStrongSubjects(t *exam.Table) []models.SubjectRanking {
	allStats, allTrends := e.comparableSubjects(t)
	if len(allStats) == 0 {
		return nil
	}

	threshold := quantile(sortedMeans(allStats), 0.75)
	var strong []models.SubjectRanking
	for subject, s := range allStats {
		if s.Mean >= threshold {
			strong = append(strong, rankingFor(subject, s, allTrends))
		}
	}
	sort.Slice(strong, func(i, j int) bool {
		if strong[i].Mean == strong[j].Mean {
			return strong[i].Subject < strong[j].Subject
		}
		return strong[i].Mean > strong[j].Mean
	})
	return strong
}

// CalculateImprovementRate compares the last `window` observations with the
// window before them (or the first window when fewer than 2*window exist).
// Needs at least `window` observations, else ok=false.
func (e *RankingEngine) CalculateImprovementRate(t *exam.Table, subject string, window int) (models.ImprovementRate, bool) {
	if window <= 0 {
		window = e.cfg.ImprovementWindow
	}
	if !t.HasSubject(subject) {
		e.log.Warn("column not found: %s", subject)
		return models.ImprovementRate{}, false
	}

	data := t.Series(subject)
	if len(data) < window {
		e.log.Warn("not enough data for %s: need %d, have %d", subject, window, len(data))
		return models.ImprovementRate{}, false
	}

	recent := data[len(data)-window:]
	var previous []float64
	if len(data) >= 2*window {
		previous = data[len(data)-2*window : len(data)-window]
	} else {
		previous = data[:window]
	}

	recentMean := stat.Mean(recent, nil)
	previousMean := stat.Mean(previous, nil)
	recentStd := sampleStd(recent)
	previousStd := sampleStd(previous)

	change := recentMean - previousMean
	pctChange := 0.0
	if previousMean != 0 {
		pctChange = change / previousMean * 100
	}

	rate := models.ImprovementRate{
		Subject:             subject,
		RecentMean:          recentMean,
		PreviousMean:        previousMean,
		AbsoluteChange:      change,
		PercentageChange:    pctChange,
		RecentStd:           recentStd,
		PreviousStd:         previousStd,
		ConsistencyImproved: recentStd < previousStd,
	}

	switch {
	case change > e.cfg.ImprovementStrong:
		rate.Interpretation = models.ImprovementStrong
	case change > e.cfg.ImprovementLight:
		rate.Interpretation = models.ImprovementGood
	case change > -e.cfg.ImprovementLight:
		rate.Interpretation = models.ImprovementStable
	default:
		rate.Interpretation = models.ImprovementRegression
	}

	return rate, true
}

// CalculateConsistencyScore maps the subject's coefficient of variation to a
// 5-level ordinal scale.
func (e *RankingEngine) CalculateConsistencyScore(t *exam.Table, subject string) (models.ConsistencyScore, bool) {
	s, ok := e.stats.Statistics(t, subject)
	if !ok {
		return models.ConsistencyScore{}, false
	}

	score := models.ConsistencyScore{
		Subject: subject,
		CV:      s.CV,
		Std:     s.Std,
		Mean:    s.Mean,
	}
	switch {
	case s.CV < 10:
		score.Consistency, score.Score = models.ConsistencyVeryConsistent, 5
	case s.CV < 20:
		score.Consistency, score.Score = models.ConsistencyConsistent, 4
	case s.CV < 30:
		score.Consistency, score.Score = models.ConsistencyMedium, 3
	case s.CV < 40:
		score.Consistency, score.Score = models.ConsistencyFluctuating, 2
	default:
		score.Consistency, score.Score = models.ConsistencyVeryFluctuating, 1
	}
	return score, true
}

// comparableSubjects gathers stats and trends for every subject except the
// aggregate total, which would dominate any mean comparison.
func (e *RankingEngine) comparableSubjects(t *exam.Table) (map[string]models.SubjectStatistics, map[string]models.TrendResult) {
	allStats := e.stats.AllSubjectsStatistics(t)
	delete(allStats, e.cfg.TotalSubject)
	allTrends := e.trends.AllSubjectsTrends(t)
	return allStats, allTrends
}

func sortedMeans(stats map[string]models.SubjectStatistics) []float64 {
	means := make([]float64, 0, len(stats))
	for _, s := range stats {
		means = append(means, s.Mean)
	}
	sort.Float64s(means)
	return means
}

func rankingFor(subject string, s models.SubjectStatistics, trends map[string]models.TrendResult) models.SubjectRanking {
	trend := models.TrendUnknown
	if tr, ok := trends[subject]; ok {
		trend = tr.Trend
	}
	return models.SubjectRanking{
		Subject: subject,
		Mean:    s.Mean,
		Latest:  s.Latest,
		Trend:   trend,
	}
}
