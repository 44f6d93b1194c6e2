package handler

import (
	"github.com/kliklance/kliklance/internal/pkg/middleware"
	"github.com/kliklance/kliklance/internal/pkg/models"
	wsHandler "github.com/kliklance/kliklance/services/realtime/handler/websocket"
	"github.com/labstack/echo/v4"
)

// Handler aggregates the realtime service handlers.
type Handler struct {
	ws  *wsHandler.Handler
	cfg *models.Config
}

// NewHandler creates the service handler
func NewHandler(ws *wsHandler.Handler, cfg *models.Config) *Handler {
	return &Handler{
		ws:  ws,
		cfg: cfg,
	}
}

// RegisterRoutes registers the websocket endpoints. The optional JWT
// middleware feeds the upstream-identity tier of the handshake; it
// never rejects on its own.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	ws := e.Group("/ws", middleware.OptionalJWTMiddleware(h.cfg.JWT))

	ws.GET("/chat/:job_id", h.ws.HandleChat)
	ws.GET("/chat/:job_id/", h.ws.HandleChat)

	ws.GET("/video-call/:job_id", h.ws.HandleVideoCall)
	ws.GET("/video-call/:job_id/", h.ws.HandleVideoCall)

	// Legacy signaling path; same protocol and rooms as video-call.
	ws.GET("/signaling/:job_id", h.ws.HandleVideoCall)
	ws.GET("/signaling/:job_id/", h.ws.HandleVideoCall)
}
