package websocket

import (
	"context"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kliklance/kliklance/internal/pkg/constants"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	wspkg "github.com/kliklance/kliklance/internal/pkg/websocket"
	"github.com/kliklance/kliklance/services/realtime"
	"github.com/labstack/echo/v4"
)

// Handler serves the chat and call-signaling websocket endpoints. Both
// run the same connect state machine (authenticate, authorize, join);
// only the per-frame protocol differs by room kind.
type Handler struct {
	uc       realtime.RealtimeUC
	hub      *wspkg.Hub
	upgrader websocket.Upgrader
}

// NewHandler creates the websocket handler over the shared hub.
func NewHandler(uc realtime.RealtimeUC, hub *wspkg.Hub) *Handler {
	return &Handler{
		uc:       uc,
		hub:      hub,
		upgrader: wspkg.NewUpgrader(),
	}
}

// HandleChat serves /ws/chat/:job_id/
func (h *Handler) HandleChat(c echo.Context) error {
	return h.serve(c, wspkg.KindChat)
}

// HandleVideoCall serves /ws/video-call/:job_id/ and its legacy
// /ws/signaling/ alias; both land in the same call room per job.
func (h *Handler) HandleVideoCall(c echo.Context) error {
	return h.serve(c, wspkg.KindCall)
}

func (h *Handler) serve(c echo.Context, kind wspkg.Kind) error {
	ctx := c.Request().Context()

	// Identity and job id are resolved before the upgrade; both may do
	// store I/O. Rejections still need the upgrade to have happened so
	// the close code reaches the client.
	principal := h.authenticate(c)
	jobID, jobErr := parseJobID(c.Param("job_id"))

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	if principal == nil {
		logger.Warn("Rejecting unauthenticated websocket connection",
			logger.String("path", c.Request().URL.Path))
		wspkg.Reject(ws, constants.CloseUnauthenticated, "unauthenticated")
		return nil
	}

	if jobErr != nil || !h.uc.AuthorizeJobAccess(ctx, jobID, principal.ID) {
		logger.Warn("Rejecting unauthorized websocket connection",
			logger.Int64("user_id", principal.ID),
			logger.String("job_id", c.Param("job_id")))
		wspkg.Reject(ws, constants.CloseUnauthorized, "unauthorized for this job")
		return nil
	}

	key := wspkg.RoomKey{JobID: jobID, Kind: kind}
	client := wspkg.NewClient(ws, principal)

	if err := h.join(ctx, key, client); err != nil {
		logger.Error("Websocket setup failed",
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", principal.ID),
			logger.Err(err))
		wspkg.Reject(ws, constants.CloseSetupFailure, "setup failure")
		return err
	}

	var callEndedPublished bool
	defer func() { h.leave(key, client, callEndedPublished) }()

	go client.WritePump()

	logger.Info("Websocket client joined room",
		logger.String("room", key.String()),
		logger.Int64("user_id", principal.ID),
		logger.String("user_role", principal.Role))

	switch kind {
	case wspkg.KindChat:
		h.chatLoop(ctx, key, client)
	default:
		callEndedPublished = h.signalLoop(ctx, key, client)
	}

	return nil
}

// join registers the member and announces it to the room. The presence
// event goes out after registration so the joining member receives its
// own announcement.
func (h *Handler) join(ctx context.Context, key wspkg.RoomKey, client *wspkg.Client) error {
	h.hub.Join(key, client)
	h.uc.TrackJoin(ctx, string(key.Kind), key.JobID, client.Principal)

	event := models.PresenceEvent{
		Event:     constants.EventUserJoined,
		UserID:    client.Principal.ID,
		UserName:  client.Principal.Name,
		UserRole:  client.Principal.Role,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.hub.Broadcast(key, event); err != nil {
		h.hub.Leave(key, client)
		return err
	}
	return nil
}

// leave announces the departure and removes the member. It runs for
// every connection that joined, no matter how the loop ended, and is
// harmless if invoked twice. callEndedPublished skips the bus publish
// when an explicit end_call frame already produced one for this
// connection.
func (h *Handler) leave(key wspkg.RoomKey, client *wspkg.Client, callEndedPublished bool) {
	// The connection may already be gone; departure bookkeeping gets
	// its own context.
	ctx := context.Background()

	switch key.Kind {
	case wspkg.KindChat:
		event := models.PresenceEvent{
			Event:     constants.EventUserLeft,
			UserID:    client.Principal.ID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.hub.Broadcast(key, event); err != nil {
			logger.Warn("Failed to broadcast departure",
				logger.String("room", key.String()),
				logger.Err(err))
		}
	default:
		event := models.CallEndedEvent{
			Type:     constants.TypeCallEnded,
			UserID:   client.Principal.ID,
			UserName: client.Principal.Name,
		}
		if err := h.hub.Broadcast(key, event); err != nil {
			logger.Warn("Failed to broadcast call end",
				logger.String("room", key.String()),
				logger.Err(err))
		}
		if !callEndedPublished {
			h.uc.NotifyCallEnded(ctx, key.JobID, client.Principal)
		}
	}

	h.hub.Leave(key, client)
	h.uc.TrackLeave(ctx, string(key.Kind), key.JobID, client.Principal)
	client.Close()

	logger.Info("Websocket client left room",
		logger.String("room", key.String()),
		logger.Int64("user_id", client.Principal.ID))
}

// sendProtocolError replies to the sender only; the connection stays
// open and no broadcast happens.
func (h *Handler) sendProtocolError(client *wspkg.Client, message string) {
	if err := client.SendJSON(models.WSError{Error: message}); err != nil {
		logger.Warn("Failed to send error to client",
			logger.Int64("user_id", client.Principal.ID),
			logger.Err(err))
	}
}

func (h *Handler) broadcast(key wspkg.RoomKey, event interface{}, opts ...wspkg.BroadcastOption) {
	if err := h.hub.Broadcast(key, event, opts...); err != nil {
		logger.Error("Broadcast failed",
			logger.String("room", key.String()),
			logger.Err(err))
	}
}

func parseJobID(raw string) (int64, error) {
	jobID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if jobID <= 0 {
		return 0, strconv.ErrRange
	}
	return jobID, nil
}
