package analysis

import "math"

const (
	// minStabilityHistory is how many pitch/volume readings must exist
	// before stability scores are judged; below that a neutral 50 is
	// reported for a voiced frame.
	minStabilityHistory = 10

	// consistencyTail is how many recent readings feed the consistency
	// variation.
	consistencyTail = 20
)

// volumeScore maps the mean bin magnitude (0-255 scale) to a 0-100 score.
// Near-silent frames are forced to exactly zero so idle periods do not bias
// the session average.
func (a *Analyzer) volumeScore(frame []float64) float64 {
	if len(frame) == 0 {
		a.volumeHist.push(0)
		return 0
	}

	var sum float64
	for _, mag := range frame {
		sum += mag
	}
	average := sum / float64(len(frame))

	score := math.Min(100, average/255*100)
	if average < a.cfg.SilenceFloor {
		score = 0
	}

	a.volumeHist.push(score)
	return score
}

// pitchScore finds the dominant frequency within the human voice fundamental
// range and scores how stable it has been over the rolling history. The raw
// frequency, not the score, is what the history records.
func (a *Analyzer) pitchScore(frame []float64) float64 {
	minBin := a.cfg.frequencyBin(a.cfg.PitchMinHz)
	maxBin := a.cfg.frequencyBin(a.cfg.PitchMaxHz)
	if maxBin >= len(frame) {
		maxBin = len(frame) - 1
	}

	var maxMag float64
	maxIdx := minBin
	for i := minBin; i <= maxBin; i++ {
		if frame[i] > maxMag {
			maxMag = frame[i]
			maxIdx = i
		}
	}

	var dominantFreq float64
	if maxMag >= a.cfg.PitchMagnitudeFloor {
		dominantFreq = a.cfg.binFrequency(maxIdx)
	}
	a.pitchHist.push(dominantFreq)

	// A silent frame never earns a stability score; this keeps the
	// all-silence confidence override reachable regardless of how much
	// history has accumulated.
	if dominantFreq == 0 {
		return 0
	}
	if a.pitchHist.len() < minStabilityHistory {
		return 50
	}

	stability := math.Max(0, 100-Variation(a.pitchHist.values))
	return math.Min(100, stability)
}

// clarityScore computes the spectral centroid and maps it onto the voice
// clarity bands: 1000-3000 Hz is optimal, the shoulders around it are good,
// everything else is muddy or shrill.
func (a *Analyzer) clarityScore(frame []float64) float64 {
	var total, weighted float64
	for i, mag := range frame {
		weighted += a.cfg.binFrequency(i) * mag
		total += mag
	}

	if total < a.cfg.CentroidEnergyFloor {
		return 0
	}
	centroid := weighted / total

	var score float64
	switch {
	case centroid >= 1000 && centroid <= 3000:
		score = 100
	case (centroid >= 500 && centroid < 1000) || (centroid > 3000 && centroid <= 4000):
		score = 80
	default:
		score = 60
	}

	a.clarityHist.push(score)
	return score
}
