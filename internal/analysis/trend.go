package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// prediction interval multiplier for 95% confidence
const confidenceZ = 1.96

// TrendEngine fits a linear model of net score against exam order and
// classifies the trend.
type TrendEngine struct {
	cfg config.Analysis
	log *logger.Logger
}

// NewTrendEngine creates a TrendEngine with the given thresholds.
func NewTrendEngine(cfg config.Analysis) *TrendEngine {
	return &TrendEngine{cfg: cfg, log: logger.Default().WithPrefix("trend")}
}

// Trend fits score against sequential exam index (0..n-1 over the date-sorted
// non-missing observations) by ordinary least squares. Needs at least two
// observations, else ok=false.
func (e *TrendEngine) Trend(t *exam.Table, subject string) (models.TrendResult, bool) {
	if !t.HasSubject(subject) {
		e.log.Warn("column not found: %s", subject)
		return models.TrendResult{}, false
	}

	y := t.Series(subject)
	n := len(y)
	if n < 2 {
		e.log.Warn("not enough data for %s: need at least 2, have %d", subject, n)
		return models.TrendResult{}, false
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	rSquared := stat.RSquared(x, y, nil, intercept, slope)
	stdErr, pValue := slopeSignificance(x, y, intercept, slope)

	improvementPct := 0.0
	if y[0] != 0 {
		improvementPct = (y[n-1] - y[0]) / y[0] * 100
	}

	return models.TrendResult{
		Subject:          subject,
		Slope:            slope,
		Intercept:        intercept,
		RSquared:         rSquared,
		PValue:           pValue,
		StdError:         stdErr,
		Trend:            e.classify(slope, pValue),
		NextPrediction:   slope*float64(n) + intercept,
		TotalImprovement: y[n-1] - y[0],
		ImprovementPct:   improvementPct,
	}, true
}

// AllSubjectsTrends fits every net-score column, keyed by subject.
func (e *TrendEngine) AllSubjectsTrends(t *exam.Table) map[string]models.TrendResult {
	out := map[string]models.TrendResult{}
	for _, subject := range t.NetSubjects(e.cfg.NetMarker) {
		if tr, ok := e.Trend(t, subject); ok {
			out[subject] = tr
		}
	}
	return out
}

// PredictNext forecasts the next exam with a 95% interval around the
// one-step-ahead prediction.
func (e *TrendEngine) PredictNext(t *exam.Table, subject string) (models.Prediction, bool) {
	tr, ok := e.Trend(t, subject)
	if !ok {
		return models.Prediction{}, false
	}

	y := t.Series(subject)
	interval := confidenceZ * tr.StdError
	return models.Prediction{
		Subject:      subject,
		Prediction:   tr.NextPrediction,
		LowerBound:   tr.NextPrediction - interval,
		UpperBound:   tr.NextPrediction + interval,
		Confidence:   95,
		BasedOnExams: len(y),
		LatestNet:    y[len(y)-1],
	}, true
}

// CompareToTarget projects the gap between the latest value and a goal net.
// ExamsNeeded and achievability are only defined for a positive slope; the
// gap counts as achievable when it closes within the configured horizon.
func (e *TrendEngine) CompareToTarget(t *exam.Table, target float64, subject string) (models.TargetComparison, bool) {
	y := t.Series(subject)
	if len(y) == 0 {
		e.log.Warn("no data for %s", subject)
		return models.TargetComparison{}, false
	}

	current := y[len(y)-1]
	gap := target - current
	gapPct := 0.0
	if target != 0 {
		gapPct = gap / target * 100
	}

	cmp := models.TargetComparison{
		Subject:       subject,
		Target:        target,
		Current:       current,
		Gap:           gap,
		GapPercentage: gapPct,
	}

	if tr, ok := e.Trend(t, subject); ok && tr.Slope > 0 {
		needed := int(math.Ceil(gap / tr.Slope))
		cmp.ExamsNeeded = &needed
		cmp.Achievable = gap <= tr.Slope*float64(e.cfg.TargetHorizonExams)
	}

	switch {
	case gap <= 0:
		cmp.Status = models.TargetExceeded
	case gapPct < 10:
		cmp.Status = models.TargetVeryClose
	case gapPct < 25:
		cmp.Status = models.TargetOnTrack
	default:
		cmp.Status = models.TargetNeedsWork
	}

	return cmp, true
}

func (e *TrendEngine) classify(slope, pValue float64) string {
	switch {
	case pValue >= e.cfg.PValueThreshold:
		return models.TrendInsignificant
	case slope > e.cfg.StrongSlope:
		return models.TrendStrongIncrease
	case slope > e.cfg.LightSlope:
		return models.TrendSlightIncrease
	case slope < -e.cfg.StrongSlope:
		return models.TrendStrongDecrease
	case slope < -e.cfg.LightSlope:
		return models.TrendSlightDecrease
	default:
		return models.TrendStable
	}
}

// slopeSignificance computes the standard error of the slope and the
// two-sided p-value of the slope-is-zero hypothesis (Student-t, df = n-2).
// A noiseless fit yields stderr 0 and p 0 for a nonzero slope; with fewer
// than three points the test is undefined and p is 1.
func slopeSignificance(x, y []float64, intercept, slope float64) (stdErr, pValue float64) {
	df := float64(len(x)) - 2
	if df < 1 {
		return 0, 1
	}

	xMean := stat.Mean(x, nil)
	var sse, sxx float64
	for i := range x {
		resid := y[i] - (intercept + slope*x[i])
		sse += resid * resid
		dx := x[i] - xMean
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, 1
	}

	stdErr = math.Sqrt(sse / df / sxx)
	if stdErr < 1e-12 {
		if slope == 0 {
			return 0, 1
		}
		return 0, 0
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	tStat := math.Abs(slope / stdErr)
	return stdErr, 2 * dist.Survival(tStat)
}
