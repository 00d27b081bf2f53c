package practice

import (
	"log/slog"
	"sync"

	"github.com/eleven-am/voice-confidence/internal/analysis"
)

type Manager struct {
	cfg      analysis.Config
	sessions map[string]*Session
	mu       sync.RWMutex
	log      *slog.Logger
}

func NewManager(cfg analysis.Config, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}

	return &Manager{
		cfg:      cfg,
		sessions: make(map[string]*Session),
		log:      log.With("component", "practice_manager"),
	}
}

func (m *Manager) CreateSession() *Session {
	session := NewSession(m.cfg, m.log)

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	m.log.Info("practice session created", "session_id", session.ID())
	return session
}

func (m *Manager) GetSession(sessionID string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[sessionID]
	return session, ok
}

func (m *Manager) RemoveSession(sessionID string) {
	m.mu.Lock()
	session, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}
	m.mu.Unlock()

	if session != nil {
		session.Close()
		m.log.Info("practice session removed", "session_id", sessionID)
	}
}

func (m *Manager) SessionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

type SessionInfo struct {
	SessionID    string `json:"session_id"`
	State        string `json:"state"`
	CurrentScore int    `json:"current_score"`
}

func (m *Manager) ListSessions() []SessionInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sessions := make([]SessionInfo, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, SessionInfo{
			SessionID:    s.ID(),
			State:        string(s.Analyzer().State()),
			CurrentScore: s.Analyzer().CurrentScore(),
		})
	}
	return sessions
}

func (m *Manager) Close() error {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	return nil
}
