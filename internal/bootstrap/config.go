package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eleven-am/voice-confidence/internal/analysis"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	ServerAddr string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	Version    string

	SampleRate int `validate:"gt=0"`
	FFTSize    int `validate:"gt=0"`

	HistoryLimit    int     `validate:"gt=0"`
	SessionLimit    int     `validate:"gt=0"`
	RecentWindowSec float64 `validate:"gt=0"`

	SilenceFloor        float64 `validate:"gte=0"`
	PitchMagnitudeFloor float64 `validate:"gte=0"`
	CentroidEnergyFloor float64 `validate:"gte=0"`

	PitchMinHz float64 `validate:"gt=0"`
	PitchMaxHz float64 `validate:"gt=0,gtfield=PitchMinHz"`
}

func LoadConfig() (*Config, error) {
	def := analysis.DefaultConfig()

	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Version:    getEnv("VERSION", "dev"),

		SampleRate: getEnvInt("SAMPLE_RATE", def.SampleRate),
		FFTSize:    getEnvInt("FFT_SIZE", def.FFTSize),

		HistoryLimit:    getEnvInt("HISTORY_LIMIT", def.HistoryLimit),
		SessionLimit:    getEnvInt("SESSION_LIMIT", def.SessionLimit),
		RecentWindowSec: getEnvFloat("RECENT_WINDOW_SEC", def.RecentWindow.Seconds()),

		SilenceFloor:        getEnvFloat("SILENCE_FLOOR", def.SilenceFloor),
		PitchMagnitudeFloor: getEnvFloat("PITCH_MAGNITUDE_FLOOR", def.PitchMagnitudeFloor),
		CentroidEnergyFloor: getEnvFloat("CENTROID_ENERGY_FLOOR", def.CentroidEnergyFloor),

		PitchMinHz: getEnvFloat("PITCH_MIN_HZ", def.PitchMinHz),
		PitchMaxHz: getEnvFloat("PITCH_MAX_HZ", def.PitchMaxHz),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// AnalysisConfig maps the service configuration onto the engine settings.
func (c *Config) AnalysisConfig() analysis.Config {
	cfg := analysis.DefaultConfig()
	cfg.SampleRate = c.SampleRate
	cfg.FFTSize = c.FFTSize
	cfg.HistoryLimit = c.HistoryLimit
	cfg.SessionLimit = c.SessionLimit
	cfg.RecentWindow = time.Duration(c.RecentWindowSec * float64(time.Second))
	cfg.SilenceFloor = c.SilenceFloor
	cfg.PitchMagnitudeFloor = c.PitchMagnitudeFloor
	cfg.CentroidEnergyFloor = c.CentroidEnergyFloor
	cfg.PitchMinHz = c.PitchMinHz
	cfg.PitchMaxHz = c.PitchMaxHz
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
