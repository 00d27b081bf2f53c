package analysis

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"
)

var (
	ErrAlreadyRunning = errors.New("analysis already running")
	ErrNotRunning     = errors.New("analysis not running")
)

type State string

const (
	StateIdle      State = "idle"
	StateAnalyzing State = "analyzing"
)

// FrameMetrics is the immutable result of analyzing one frequency-domain
// frame. All scores are in [0,100].
type FrameMetrics struct {
	Timestamp   time.Time `json:"timestamp"`
	Volume      float64   `json:"volume"`
	Pitch       float64   `json:"pitch"`
	Clarity     float64   `json:"clarity"`
	Consistency float64   `json:"consistency"`
	Confidence  int       `json:"confidence_score"`
}

// Analyzer is the per-session voice-confidence engine. One instance is
// constructed per interview session. Frames arrive from a single producer;
// the mutex also covers score reads from other goroutines.
type Analyzer struct {
	mu    sync.Mutex
	cfg   Config
	state State
	log   *slog.Logger

	volumeHist      *history
	pitchHist       *history
	clarityHist     *history
	consistencyHist *history

	samples []sample
	window  []sample

	current    FrameMetrics
	hasCurrent bool
}

func New(cfg Config, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	cfg = cfg.withDefaults()

	return &Analyzer{
		cfg:             cfg,
		state:           StateIdle,
		log:             log.With("component", "analyzer"),
		volumeHist:      newHistory(cfg.HistoryLimit),
		pitchHist:       newHistory(cfg.HistoryLimit),
		clarityHist:     newHistory(cfg.HistoryLimit),
		consistencyHist: newHistory(cfg.HistoryLimit),
	}
}

func (a *Analyzer) Config() Config {
	return a.cfg
}

func (a *Analyzer) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Start transitions the analyzer into the analyzing state and discards any
// data from a previous session.
func (a *Analyzer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateAnalyzing {
		return ErrAlreadyRunning
	}

	a.clearLocked()
	a.state = StateAnalyzing
	return nil
}

// ProcessFrame analyzes one magnitude-spectrum frame stamped at now. The
// caller supplies the timestamp so replayed and simulated sessions stay
// deterministic.
func (a *Analyzer) ProcessFrame(frame []float64, now time.Time) (FrameMetrics, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateAnalyzing {
		return FrameMetrics{}, ErrNotRunning
	}

	volume := a.volumeScore(frame)
	pitch := a.pitchScore(frame)
	clarity := a.clarityScore(frame)
	consistency := a.consistencyScore(volume)
	confidence := confidenceScore(volume, pitch, clarity, consistency, a.cfg)

	metrics := FrameMetrics{
		Timestamp:   now,
		Volume:      volume,
		Pitch:       pitch,
		Clarity:     clarity,
		Consistency: consistency,
		Confidence:  confidence,
	}

	a.appendSample(sample{at: now, score: float64(confidence)})
	a.current = metrics
	a.hasCurrent = true

	return metrics, nil
}

// CurrentScore returns the responsive short-horizon score: the mean over the
// recent window when it has samples, otherwise the whole-session mean,
// otherwise 0.
func (a *Analyzer) CurrentScore() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.window) > 0 {
		return int(math.Round(meanScore(a.window)))
	}
	if len(a.samples) > 0 {
		return int(math.Round(meanScore(a.samples)))
	}
	return 0
}

// Current returns the metrics of the most recently processed frame.
func (a *Analyzer) Current() (FrameMetrics, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current, a.hasCurrent
}

// Stop halts frame acceptance and returns the session summary as the sample
// log stood at stop time. The log is kept until the next Start or Reset, so
// repeated calls return the same summary.
func (a *Analyzer) Stop() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateIdle
	return summarize(a.samples)
}

// Reset discards all histories, the sample log and the recent window without
// changing the lifecycle state.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearLocked()
}

func (a *Analyzer) appendSample(s sample) {
	a.samples = append(a.samples, s)
	if len(a.samples) > a.cfg.SessionLimit {
		a.samples = a.samples[1:]
	}

	a.window = append(a.window, s)
	cutoff := s.at.Add(-a.cfg.RecentWindow)
	trim := 0
	for trim < len(a.window) && a.window[trim].at.Before(cutoff) {
		trim++
	}
	if trim > 0 {
		a.window = a.window[trim:]
	}
}

func (a *Analyzer) clearLocked() {
	a.volumeHist.clear()
	a.pitchHist.clear()
	a.clarityHist.clear()
	a.consistencyHist.clear()
	a.samples = nil
	a.window = nil
	a.current = FrameMetrics{}
	a.hasCurrent = false
}
