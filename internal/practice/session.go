package practice

import (
	"log/slog"
	"sync"
	"time"

	"github.com/eleven-am/voice-confidence/internal/analysis"
	"github.com/eleven-am/voice-confidence/internal/shared"
)

// Session binds one analyzer instance to one connected client for the
// lifetime of a practice attempt. Each session owns its analyzer; no state
// is shared between sessions.
type Session struct {
	id        string
	analyzer  *analysis.Analyzer
	createdAt time.Time
	done      chan struct{}
	closeOnce sync.Once
	log       *slog.Logger
}

func NewSession(cfg analysis.Config, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}

	id := shared.NewID("ses_")
	return &Session{
		id:        id,
		analyzer:  analysis.New(cfg, log.With("session_id", id)),
		createdAt: time.Now(),
		done:      make(chan struct{}),
		log:       log.With("session_id", id),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Analyzer() *analysis.Analyzer {
	return s.analyzer
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close stops any running analysis and releases the session. Safe to call
// more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.analyzer.Stop()
		close(s.done)
	})
}
