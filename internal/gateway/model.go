package gateway

import (
	"github.com/eleven-am/voice-confidence/internal/analysis"
	"github.com/eleven-am/voice-confidence/internal/practice"
)

type MessageType string

const (
	// Client -> server.
	MessageTypeStart MessageType = "start"
	MessageTypeFrame MessageType = "frame"
	MessageTypeStop  MessageType = "stop"
	MessageTypeReset MessageType = "reset"

	// Server -> client.
	MessageTypeConnected MessageType = "connected"
	MessageTypeStarted   MessageType = "started"
	MessageTypeScore     MessageType = "score"
	MessageTypeSummary   MessageType = "summary"
	MessageTypeError     MessageType = "error"
)

// ClientMessage is the envelope a practice client sends over the analysis
// websocket. Frame carries one magnitude spectrum (fftSize/2 bins on the
// 0-255 byte-frequency scale) and is only set for frame messages.
type ClientMessage struct {
	Type  MessageType `json:"type"`
	Frame []float64   `json:"frame,omitempty"`
}

// ServerMessage is the envelope sent back to the client: a score update per
// frame, the session summary on stop, or an error that leaves the
// connection open.
type ServerMessage struct {
	Type      MessageType            `json:"type"`
	SessionID string                 `json:"session_id,omitempty"`
	Score     int                    `json:"score"`
	Metrics   *analysis.FrameMetrics `json:"metrics,omitempty"`
	Summary   *analysis.Summary      `json:"summary,omitempty"`
	Code      string                 `json:"code,omitempty"`
	Message   string                 `json:"message,omitempty"`
}

type SessionsResponse struct {
	Total    int                    `json:"total"`
	Sessions []practice.SessionInfo `json:"sessions"`
}
