package checker

import "math"

// percentile returns the q-th quantile (0 <= q <= 1) of sorted values
// using linear interpolation between closest ranks. The input must be
// sorted ascending and non-empty.
func percentile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * q
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

// mean returns the arithmetic mean of values. Zero for empty input.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd returns the sample standard deviation (n-1 divisor).
// It is undefined for fewer than two values; callers must skip the
// degenerate case rather than divide by zero.
func sampleStd(values []float64, m float64) float64 {
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
