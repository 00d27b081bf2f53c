package analysis

import (
	"testing"
)

func TestConsistencyScore_ShortHistorySilent(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.consistencyScore(0); score != 0 {
		t.Errorf("expected 0 for silence with short history, got %f", score)
	}
}

func TestConsistencyScore_ShortHistoryVoiced(t *testing.T) {
	a := newTestAnalyzer(t)
	if score := a.consistencyScore(58.8); score != 50 {
		t.Errorf("expected neutral 50 with short history, got %f", score)
	}
}

func TestConsistencyScore_SteadySignalScoresHigh(t *testing.T) {
	a := newTestAnalyzer(t)
	frame := uniformFrame(frameBins(a.cfg), 150)
	for i := 0; i < 12; i++ {
		a.volumeScore(frame)
		a.pitchScore(frame)
	}
	score := a.consistencyScore(58.8)
	if score != 100 {
		t.Errorf("expected 100 for a perfectly steady signal, got %f", score)
	}
}

func TestConsistencyScore_AppendsOnEveryPath(t *testing.T) {
	a := newTestAnalyzer(t)
	a.consistencyScore(0)
	a.consistencyScore(58.8)
	if a.consistencyHist.len() != 2 {
		t.Errorf("expected 2 consistency entries, got %d", a.consistencyHist.len())
	}
}

func TestConsistencyScore_ClampedToRange(t *testing.T) {
	a := newTestAnalyzer(t)
	// A single loud spike over a quiet floor pushes the coefficient of
	// variation far above 100, which would drive the raw consistency
	// negative without the clamp.
	values := []float64{255, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5}
	for _, v := range values {
		a.volumeScore(uniformFrame(frameBins(a.cfg), v))
		a.pitchScore(uniformFrame(frameBins(a.cfg), v))
	}
	score := a.consistencyScore(100)
	if score < 0 || score > 100 {
		t.Errorf("consistency out of range: %f", score)
	}
}

func TestConfidenceScore_Weights(t *testing.T) {
	cfg := DefaultConfig()
	// 0.25*80 + 0.30*60 + 0.25*100 + 0.20*40 = 71
	if score := confidenceScore(80, 60, 100, 40, cfg); score != 71 {
		t.Errorf("expected 71, got %d", score)
	}
}

func TestConfidenceScore_SilenceOverride(t *testing.T) {
	cfg := DefaultConfig()
	if score := confidenceScore(0, 0, 0, 100, cfg); score != 0 {
		t.Errorf("expected 0 during true silence, got %d", score)
	}
}

func TestConfidenceScore_PartialSilenceNotOverridden(t *testing.T) {
	cfg := DefaultConfig()
	if score := confidenceScore(0, 0, 60, 50, cfg); score == 0 {
		t.Error("clarity alone should keep the score above 0")
	}
}

func TestConfidenceScore_Rounding(t *testing.T) {
	cfg := DefaultConfig()
	// 0.25*50 + 0.30*50 + 0.25*50 + 0.20*52 = 50.4 -> 50
	if score := confidenceScore(50, 50, 50, 52, cfg); score != 50 {
		t.Errorf("expected 50, got %d", score)
	}
	// 0.25*50 + 0.30*50 + 0.25*50 + 0.20*53 = 50.6 -> 51
	if score := confidenceScore(50, 50, 50, 53, cfg); score != 51 {
		t.Errorf("expected 51, got %d", score)
	}
}

func TestConfidenceScore_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	first := confidenceScore(58.8, 100, 60, 100, cfg)
	second := confidenceScore(58.8, 100, 60, 100, cfg)
	if first != second {
		t.Errorf("expected deterministic score, got %d and %d", first, second)
	}
}
