package ta

import "math"

// SMA returns the mean of the last n values, or NaN when fewer than n
// values exist.
func SMA(vals []float64, n int) float64 {
	if len(vals) < n || n <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := len(vals) - n; i < len(vals); i++ {
		sum += vals[i]
	}
	return sum / float64(n)
}

// RollingSMA returns the n-window moving average at every index. The
// first n-1 entries are NaN because the window is not yet full there.
func RollingSMA(vals []float64, n int) []float64 {
	out := make([]float64, len(vals))
	if n <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= n {
			sum -= vals[i-n]
		}
		if i >= n-1 {
			out[i] = sum / float64(n)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// CountNaN returns how many entries of vals are NaN.
func CountNaN(vals []float64) int {
	c := 0
	for _, v := range vals {
		if math.IsNaN(v) {
			c++
		}
	}
	return c
}
