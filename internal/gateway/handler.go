package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/eleven-am/voice-confidence/internal/analysis"
	"github.com/eleven-am/voice-confidence/internal/practice"
	"github.com/eleven-am/voice-confidence/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	manager *practice.Manager
	log     *slog.Logger
}

func NewHandler(manager *practice.Manager, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		manager: manager,
		log:     log.With("handler", "analysis"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/ws", h.HandleAnalysis)
	g.GET("/sessions", h.HandleSessions)
	g.GET("/sessions/:id", h.HandleSession)
}

func (h *Handler) HandleSessions(c echo.Context) error {
	sessions := h.manager.ListSessions()
	return c.JSON(http.StatusOK, SessionsResponse{
		Total:    len(sessions),
		Sessions: sessions,
	})
}

func (h *Handler) HandleSession(c echo.Context) error {
	session, ok := h.manager.GetSession(c.Param("id"))
	if !ok {
		return shared.NotFound("session_not_found", "session not found")
	}

	return c.JSON(http.StatusOK, practice.SessionInfo{
		SessionID:    session.ID(),
		State:        string(session.Analyzer().State()),
		CurrentScore: session.Analyzer().CurrentScore(),
	})
}

// HandleAnalysis upgrades the request and drives one practice session over
// the socket. The session and its analyzer live exactly as long as the
// connection.
func (h *Handler) HandleAnalysis(c echo.Context) error {
	ws, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("websocket upgrade failed", "error", err)
		return err
	}

	session := h.manager.CreateSession()
	conn := NewConn(ws, session.ID(), h.log)

	h.log.Info("analysis client connected", "session_id", session.ID())

	go conn.writePump()
	conn.Send(&ServerMessage{Type: MessageTypeConnected, SessionID: session.ID()})

	conn.readPump(func(msg *ClientMessage) {
		h.dispatch(session, conn, msg)
	})

	h.manager.RemoveSession(session.ID())
	h.log.Info("analysis client disconnected", "session_id", session.ID())
	return nil
}

type sender interface {
	Send(msg *ServerMessage)
}

// dispatch applies one client message to the session's analyzer. Lifecycle
// misuse (start while running, frames while idle) is reported back as an
// error envelope and never tears down the connection.
func (h *Handler) dispatch(session *practice.Session, out sender, msg *ClientMessage) {
	a := session.Analyzer()

	switch msg.Type {
	case MessageTypeStart:
		if err := a.Start(); err != nil {
			h.log.Warn("start ignored", "session_id", session.ID(), "error", err)
			out.Send(errorMessage("already_running", err))
			return
		}
		out.Send(&ServerMessage{Type: MessageTypeStarted, SessionID: session.ID()})

	case MessageTypeFrame:
		metrics, err := a.ProcessFrame(msg.Frame, time.Now())
		if err != nil {
			if errors.Is(err, analysis.ErrNotRunning) {
				h.log.Warn("frame ignored, analysis not running", "session_id", session.ID())
				out.Send(errorMessage("not_running", err))
				return
			}
			out.Send(errorMessage("frame_failed", err))
			return
		}
		out.Send(&ServerMessage{
			Type:    MessageTypeScore,
			Score:   a.CurrentScore(),
			Metrics: &metrics,
		})

	case MessageTypeStop:
		summary := a.Stop()
		out.Send(&ServerMessage{
			Type:    MessageTypeSummary,
			Score:   summary.AverageScore,
			Summary: &summary,
		})

	case MessageTypeReset:
		a.Reset()

	default:
		out.Send(errorMessage("unknown_type", errors.New("unsupported message type: "+string(msg.Type))))
	}
}

func errorMessage(code string, err error) *ServerMessage {
	return &ServerMessage{
		Type:    MessageTypeError,
		Code:    code,
		Message: err.Error(),
	}
}
