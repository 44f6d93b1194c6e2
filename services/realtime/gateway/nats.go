package gateway

import (
	"context"
	"fmt"

	"github.com/kliklance/kliklance/internal/pkg/constants"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	natspkg "github.com/kliklance/kliklance/internal/pkg/nats"
)

// RealtimeGW publishes realtime events to NATS for the notification
// services.
type RealtimeGW struct {
	client *natspkg.Client
}

// NewRealtimeGW creates a new NATS gateway
func NewRealtimeGW(client *natspkg.Client) *RealtimeGW {
	return &RealtimeGW{client: client}
}

// PublishMessageCreated publishes a persisted chat message event.
func (g *RealtimeGW) PublishMessageCreated(ctx context.Context, event *models.ChatMessageEvent) error {
	if err := g.client.Publish(constants.SubjectChatMessageCreated, event); err != nil {
		return fmt.Errorf("failed to publish message created: %w", err)
	}

	logger.Debug("Published message created event",
		logger.Int64("job_id", event.JobID),
		logger.String("message_id", event.ID.String()))
	return nil
}

// PublishCallEnded publishes a call ended event.
func (g *RealtimeGW) PublishCallEnded(ctx context.Context, event *models.CallEndedEvent) error {
	if err := g.client.Publish(constants.SubjectCallEnded, event); err != nil {
		return fmt.Errorf("failed to publish call ended: %w", err)
	}

	logger.Debug("Published call ended event",
		logger.Int64("job_id", event.JobID),
		logger.Int64("user_id", event.UserID))
	return nil
}
