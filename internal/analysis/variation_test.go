package analysis

import (
	"math"
	"testing"
)

func TestVariation_Empty(t *testing.T) {
	if v := Variation(nil); v != 0 {
		t.Errorf("expected 0 for empty input, got %f", v)
	}
}

func TestVariation_SingleSample(t *testing.T) {
	if v := Variation([]float64{42}); v != 0 {
		t.Errorf("expected 0 for single sample, got %f", v)
	}
}

func TestVariation_IdenticalSamples(t *testing.T) {
	if v := Variation([]float64{5, 5, 5, 5}); v != 0 {
		t.Errorf("expected 0 for identical samples, got %f", v)
	}
}

func TestVariation_KnownValues(t *testing.T) {
	// mean 15, population stdDev 5 -> 5/15*100
	v := Variation([]float64{10, 20})
	expected := 5.0 / 15.0 * 100
	if math.Abs(v-expected) > 1e-9 {
		t.Errorf("expected %f, got %f", expected, v)
	}
}

func TestVariation_ZeroMean(t *testing.T) {
	if v := Variation([]float64{0, 0, 0}); v != 0 {
		t.Errorf("expected 0 for zero mean, got %f", v)
	}
}

func TestVariation_NegativeMean(t *testing.T) {
	if v := Variation([]float64{-10, -20}); v != 0 {
		t.Errorf("expected 0 for negative mean, got %f", v)
	}
}

func TestClamp(t *testing.T) {
	if c := clamp(-5, 0, 100); c != 0 {
		t.Errorf("expected 0, got %f", c)
	}
	if c := clamp(150, 0, 100); c != 100 {
		t.Errorf("expected 100, got %f", c)
	}
	if c := clamp(42, 0, 100); c != 42 {
		t.Errorf("expected 42, got %f", c)
	}
}
