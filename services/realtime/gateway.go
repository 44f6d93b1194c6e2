package realtime

import (
	"context"

	"github.com/kliklance/kliklance/internal/pkg/models"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// RealtimeGW publishes realtime events onto the message bus for
// downstream services (notifications, email).
type RealtimeGW interface {
	PublishMessageCreated(ctx context.Context, event *models.ChatMessageEvent) error
	PublishCallEnded(ctx context.Context, event *models.CallEndedEvent) error
}
