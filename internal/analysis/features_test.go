package analysis

import (
	"math"
	"testing"
	"time"
)

// uniformFrame fills every bin with the same magnitude.
func uniformFrame(bins int, value float64) []float64 {
	frame := make([]float64, bins)
	for i := range frame {
		frame[i] = value
	}
	return frame
}

// toneFrame places a single magnitude peak at the bin holding freq.
func toneFrame(cfg Config, freq, magnitude float64) []float64 {
	frame := make([]float64, cfg.FFTSize/2)
	frame[cfg.frequencyBin(freq)] = magnitude
	return frame
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a := New(DefaultConfig(), nil)
	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return a
}

func frameBins(cfg Config) int {
	return cfg.FFTSize / 2
}

func TestVolumeScore_UniformFrame(t *testing.T) {
	a := newTestAnalyzer(t)
	score := a.volumeScore(uniformFrame(frameBins(a.cfg), 150))
	expected := 150.0 / 255.0 * 100.0
	if math.Abs(score-expected) > 1e-9 {
		t.Errorf("expected %f, got %f", expected, score)
	}
}

func TestVolumeScore_FullScaleCapsAt100(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.volumeScore(uniformFrame(frameBins(a.cfg), 255)); score != 100 {
		t.Errorf("expected 100 at full scale, got %f", score)
	}
}

func TestVolumeScore_SilenceFloor(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.volumeScore(uniformFrame(frameBins(a.cfg), 1.5)); score != 0 {
		t.Errorf("expected 0 below the silence floor, got %f", score)
	}
}

func TestVolumeScore_EmptyFrame(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.volumeScore(nil); score != 0 {
		t.Errorf("expected 0 for empty frame, got %f", score)
	}
}

func TestVolumeScore_AppendsToHistory(t *testing.T) {
	a := newTestAnalyzer(t)
	a.volumeScore(uniformFrame(frameBins(a.cfg), 150))
	a.volumeScore(uniformFrame(frameBins(a.cfg), 100))
	if a.volumeHist.len() != 2 {
		t.Errorf("expected 2 history entries, got %d", a.volumeHist.len())
	}
}

func TestPitchScore_SilentFrame(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.pitchScore(uniformFrame(frameBins(a.cfg), 0)); score != 0 {
		t.Errorf("expected 0 for silent frame, got %f", score)
	}
	if a.pitchHist.len() != 1 {
		t.Fatalf("silent frame should still record a history entry")
	}
	if a.pitchHist.values[0] != 0 {
		t.Errorf("expected recorded frequency 0, got %f", a.pitchHist.values[0])
	}
}

func TestPitchScore_NeutralBeforeEnoughHistory(t *testing.T) {
	a := newTestAnalyzer(t)
	frame := toneFrame(a.cfg, 200, 100)
	if score := a.pitchScore(frame); score != 50 {
		t.Errorf("expected neutral 50 with short history, got %f", score)
	}
}

func TestPitchScore_RecordsFrequencyNotScore(t *testing.T) {
	a := newTestAnalyzer(t)
	a.pitchScore(toneFrame(a.cfg, 200, 100))
	recorded := a.pitchHist.values[0]
	expected := a.cfg.binFrequency(a.cfg.frequencyBin(200))
	if math.Abs(recorded-expected) > 1e-9 {
		t.Errorf("expected recorded frequency %f, got %f", expected, recorded)
	}
}

func TestPitchScore_StableToneScores100(t *testing.T) {
	a := newTestAnalyzer(t)
	frame := toneFrame(a.cfg, 200, 100)
	var score float64
	for i := 0; i < 15; i++ {
		score = a.pitchScore(frame)
	}
	if score != 100 {
		t.Errorf("expected 100 for a perfectly stable tone, got %f", score)
	}
}

func TestPitchScore_UnstableToneScoresLower(t *testing.T) {
	a := newTestAnalyzer(t)
	freqs := []float64{100, 900, 120, 850, 150, 800, 200, 700, 250, 600, 300, 500}
	var score float64
	for _, f := range freqs {
		score = a.pitchScore(toneFrame(a.cfg, f, 100))
	}
	if score >= 100 {
		t.Errorf("expected degraded stability for a wandering tone, got %f", score)
	}
	if score < 0 || score > 100 {
		t.Errorf("score out of range: %f", score)
	}
}

func TestPitchScore_IgnoresBinsOutsideVoiceRange(t *testing.T) {
	a := newTestAnalyzer(t)
	// A strong 2 kHz tone sits above the fundamental search range.
	if score := a.pitchScore(toneFrame(a.cfg, 2000, 200)); score != 0 {
		t.Errorf("expected 0 for out-of-range tone, got %f", score)
	}
}

func TestClarityScore_OptimalBand(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.clarityScore(toneFrame(a.cfg, 2000, 100)); score != 100 {
		t.Errorf("expected 100 for centroid in the optimal band, got %f", score)
	}
}

func TestClarityScore_ShoulderBands(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.clarityScore(toneFrame(a.cfg, 700, 100)); score != 80 {
		t.Errorf("expected 80 for low shoulder, got %f", score)
	}
	if score := a.clarityScore(toneFrame(a.cfg, 3500, 100)); score != 80 {
		t.Errorf("expected 80 for high shoulder, got %f", score)
	}
}

func TestClarityScore_OutsideBands(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.clarityScore(toneFrame(a.cfg, 200, 100)); score != 60 {
		t.Errorf("expected 60 for muddy centroid, got %f", score)
	}
	if score := a.clarityScore(toneFrame(a.cfg, 8000, 100)); score != 60 {
		t.Errorf("expected 60 for shrill centroid, got %f", score)
	}
}

func TestClarityScore_NearSilenceSkipsHistory(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.clarityScore(uniformFrame(frameBins(a.cfg), 0)); score != 0 {
		t.Errorf("expected 0 for silent frame, got %f", score)
	}
	if a.clarityHist.len() != 0 {
		t.Errorf("silent frame must not append to clarity history, got %d entries", a.clarityHist.len())
	}
}

func TestFeatureScores_AlwaysInRange(t *testing.T) {
	a := newTestAnalyzer(t)
	now := time.Now()
	values := []float64{0, 1, 2, 50, 150, 255, 300}
	for i, v := range values {
		m, err := a.ProcessFrame(uniformFrame(frameBins(a.cfg), v), now.Add(time.Duration(i)*16*time.Millisecond))
		if err != nil {
			t.Fatalf("ProcessFrame failed: %v", err)
		}
		for name, score := range map[string]float64{
			"volume":      m.Volume,
			"pitch":       m.Pitch,
			"clarity":     m.Clarity,
			"consistency": m.Consistency,
			"confidence":  float64(m.Confidence),
		} {
			if score < 0 || score > 100 {
				t.Errorf("frame %d: %s out of range: %f", i, name, score)
			}
		}
	}
}
