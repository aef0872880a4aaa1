package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// quantile computes the q-th quantile of sorted data using linear
// interpolation between order statistics (index h = (n-1)q). gonum's
// CumulantKind variants interpolate the empirical CDF instead, which does
// not reproduce the reference values, so this small helper stays local.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	h := q * float64(n-1)
	lo := int(math.Floor(h))
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}

// sampleStd is the bias-corrected (n-1) standard deviation, 0 for fewer than
// two observations.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
