package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/kliklance/kliklance/internal/pkg/constants"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	wspkg "github.com/kliklance/kliklance/internal/pkg/websocket"
)

// signalLoop relays WebRTC control frames until the connection drops.
// Nothing is persisted; frames exist only for the duration of one
// broadcast. It reports whether an end_call frame already published the
// call-ended bus event, so the disconnect path does not publish it a
// second time.
func (h *Handler) signalLoop(ctx context.Context, key wspkg.RoomKey, client *wspkg.Client) bool {
	var callEndedPublished bool
	for {
		data, err := client.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Signaling connection read error",
					logger.String("room", key.String()),
					logger.Int64("user_id", client.Principal.ID),
					logger.Err(err))
			}
			return callEndedPublished
		}

		if h.handleSignalFrame(ctx, key, client, data) {
			callEndedPublished = true
		}
	}
}

// handleSignalFrame dispatches one signaling frame by type and reports
// whether it published the call-ended bus event. Sender identity is
// attached server-side on every relayed event. Suppression of the
// sender's own echo is per type: offers, pings, ready_to_call and
// testing_signal never come back to their origin; answers, ICE
// candidates and call endings reach everyone.
func (h *Handler) handleSignalFrame(ctx context.Context, key wspkg.RoomKey, client *wspkg.Client, data []byte) bool {
	var frame models.SignalFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		h.sendProtocolError(client, "Invalid message format")
		return false
	}

	var opts []wspkg.BroadcastOption
	if frame.To != 0 {
		opts = append(opts, wspkg.TargetUser(frame.To))
	}

	p := client.Principal

	switch normalizeSignalType(frame.Type) {
	case constants.TypeOffer:
		event := models.OfferEvent{
			Type:       constants.TypeOffer,
			Offer:      frame.Offer,
			CallerID:   p.ID,
			CallerName: p.Name,
			CallerRole: p.Role,
		}
		h.broadcast(key, event, append(opts, wspkg.ExcludeMarker(client.Marker))...)

	case constants.TypeAnswer:
		event := models.AnswerEvent{
			Type:       constants.TypeAnswer,
			Answer:     frame.Answer,
			AnswererID: p.ID,
		}
		h.broadcast(key, event, opts...)

	case constants.TypeICECandidate:
		event := models.ICECandidateEvent{
			Type:         constants.TypeICECandidate,
			ICECandidate: frame.ICECandidate,
			SenderID:     p.ID,
		}
		h.broadcast(key, event, opts...)

	case constants.TypeEndCall:
		event := models.CallEndedEvent{
			Type:     constants.TypeCallEnded,
			UserID:   p.ID,
			UserName: p.Name,
		}
		h.broadcast(key, event, opts...)
		h.uc.NotifyCallEnded(ctx, key.JobID, p)
		return true

	case constants.TypePing:
		event := models.PingEvent{
			Type:     constants.TypePing,
			Message:  frame.Message,
			SenderID: p.ID,
		}
		h.broadcast(key, event, append(opts, wspkg.ExcludeMarker(client.Marker))...)

	case constants.TypeReadyToCall:
		event := models.ReadyToCallEvent{
			Type:     constants.TypeReadyToCall,
			UserID:   p.ID,
			UserName: p.Name,
		}
		h.broadcast(key, event, append(opts, wspkg.ExcludeMarker(client.Marker))...)

	case constants.TypeTestingSignal:
		event := models.TestSignalEvent{
			Type:       constants.TypeTestingSignal,
			Message:    frame.Message,
			SenderID:   p.ID,
			SenderName: p.Name,
		}
		h.broadcast(key, event, append(opts, wspkg.ExcludeMarker(client.Marker))...)

	case "":
		h.sendProtocolError(client, "Message type required")

	default:
		h.sendProtocolError(client, fmt.Sprintf("Unknown message type: %s", frame.Type))
	}

	return false
}

// normalizeSignalType folds legacy spellings onto the canonical
// vocabulary.
func normalizeSignalType(t string) string {
	switch t {
	case constants.TypeICECandidateAlt:
		return constants.TypeICECandidate
	case constants.TypeCallEnded, constants.TypeCallEndedAlt:
		return constants.TypeEndCall
	default:
		return t
	}
}
