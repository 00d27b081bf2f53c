package analysis

import "time"

type Config struct {
	SampleRate int
	FFTSize    int

	HistoryLimit int
	SessionLimit int
	RecentWindow time.Duration

	// Floors below which a frame counts as silence for the given feature.
	SilenceFloor        float64
	PitchMagnitudeFloor float64
	CentroidEnergyFloor float64

	PitchMinHz float64
	PitchMaxHz float64

	VolumeWeight      float64
	PitchWeight       float64
	ClarityWeight     float64
	ConsistencyWeight float64
}

func DefaultConfig() Config {
	return Config{
		SampleRate:          44100,
		FFTSize:             2048,
		HistoryLimit:        100,
		SessionLimit:        18000,
		RecentWindow:        5 * time.Second,
		SilenceFloor:        2,
		PitchMagnitudeFloor: 2,
		CentroidEnergyFloor: 1,
		PitchMinHz:          80,
		PitchMaxHz:          1000,
		VolumeWeight:        0.25,
		PitchWeight:         0.30,
		ClarityWeight:       0.25,
		ConsistencyWeight:   0.20,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.FFTSize <= 0 {
		c.FFTSize = def.FFTSize
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.SessionLimit <= 0 {
		c.SessionLimit = def.SessionLimit
	}
	if c.RecentWindow <= 0 {
		c.RecentWindow = def.RecentWindow
	}
	if c.PitchMinHz <= 0 {
		c.PitchMinHz = def.PitchMinHz
	}
	if c.PitchMaxHz <= 0 {
		c.PitchMaxHz = def.PitchMaxHz
	}
	if c.VolumeWeight == 0 && c.PitchWeight == 0 && c.ClarityWeight == 0 && c.ConsistencyWeight == 0 {
		c.VolumeWeight = def.VolumeWeight
		c.PitchWeight = def.PitchWeight
		c.ClarityWeight = def.ClarityWeight
		c.ConsistencyWeight = def.ConsistencyWeight
	}
	return c
}

// binFrequency returns the center frequency in Hz of an FFT bin index.
func (c Config) binFrequency(bin int) float64 {
	return float64(bin) * float64(c.SampleRate) / float64(c.FFTSize)
}

// frequencyBin returns the FFT bin index holding the given frequency.
func (c Config) frequencyBin(freq float64) int {
	return int(freq * float64(c.FFTSize) / float64(c.SampleRate))
}
