package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	wspkg "github.com/kliklance/kliklance/internal/pkg/websocket"
)

// chatLoop processes inbound chat frames until the connection drops.
// Frames for one connection are handled strictly one at a time.
func (h *Handler) chatLoop(ctx context.Context, key wspkg.RoomKey, client *wspkg.Client) {
	for {
		data, err := client.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Chat connection read error",
					logger.String("room", key.String()),
					logger.Int64("user_id", client.Principal.ID),
					logger.Err(err))
			}
			return
		}

		h.handleChatFrame(ctx, key, client, data)
	}
}

// handleChatFrame validates, persists, then broadcasts one message.
// The broadcast only happens after the row exists, and it reaches every
// member including the sender.
func (h *Handler) handleChatFrame(ctx context.Context, key wspkg.RoomKey, client *wspkg.Client, data []byte) {
	var frame models.ChatFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		h.sendProtocolError(client, "Invalid message format")
		return
	}

	if frame.Message == nil {
		h.sendProtocolError(client, "Message content required")
		return
	}

	event, err := h.uc.SaveChatMessage(ctx, key.JobID, client.Principal, *frame.Message)
	if err != nil {
		logger.Error("Failed to save chat message",
			logger.Int64("job_id", key.JobID),
			logger.Int64("user_id", client.Principal.ID),
			logger.Err(err))
		h.sendProtocolError(client, "Failed to process message")
		return
	}

	h.broadcast(key, event)
}
