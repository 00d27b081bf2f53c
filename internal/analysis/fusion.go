package analysis

import "math"

// consistencyScore blends volume and pitch variation over the recent history
// into one steadiness measure. Until enough volume readings exist it reports
// a neutral 50 for a voiced frame and 0 for silence.
func (a *Analyzer) consistencyScore(currentVolume float64) float64 {
	if a.volumeHist.len() < minStabilityHistory {
		score := 50.0
		if currentVolume == 0 {
			score = 0
		}
		a.consistencyHist.push(score)
		return score
	}

	volumeConsistency := 100 - Variation(a.volumeHist.tail(consistencyTail))
	pitchConsistency := 100 - Variation(a.pitchHist.tail(consistencyTail))

	score := clamp((volumeConsistency+pitchConsistency)/2, 0, 100)
	a.consistencyHist.push(score)
	return score
}

// confidenceScore fuses the four metrics with fixed weights. Pitch stability
// and volume carry the most weight since they are the most perceptible
// confidence cues. True silence overrides the weighted sum so a
// consistency-only signal cannot score during a quiet stretch.
func confidenceScore(volume, pitch, clarity, consistency float64, cfg Config) int {
	if volume == 0 && pitch == 0 && clarity == 0 {
		return 0
	}

	weightedSum := volume*cfg.VolumeWeight +
		pitch*cfg.PitchWeight +
		clarity*cfg.ClarityWeight +
		consistency*cfg.ConsistencyWeight

	return int(math.Round(clamp(weightedSum, 0, 100)))
}
