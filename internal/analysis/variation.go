// Package analysis implements the realtime voice-confidence engine: per-frame
// feature extraction over magnitude spectra, rolling metric histories, score
// fusion and session summaries.
package analysis

import "math"

// Variation returns the coefficient of variation (stdDev/mean*100) of data.
// It is used as an inverse stability measure: lower variation means a
// steadier signal. Sequences shorter than two samples and non-positive means
// yield 0.
func Variation(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}

	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))
	if mean <= 0 {
		return 0
	}

	var squares float64
	for _, v := range data {
		d := v - mean
		squares += d * d
	}
	stdDev := math.Sqrt(squares / float64(len(data)))

	return stdDev / mean * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
