package realtime

import (
	"context"

	"github.com/kliklance/kliklance/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// RealtimeUC defines the realtime service use cases consumed by the
// websocket handlers.
type RealtimeUC interface {
	// ResolvePrincipalFromToken validates an access token and re-reads
	// the user from the store, returning the connection principal.
	ResolvePrincipalFromToken(ctx context.Context, token string) (*models.Principal, error)

	// ResolvePrincipalByID re-reads an upstream-resolved identity from
	// the store.
	ResolvePrincipalByID(ctx context.Context, userID int64) (*models.Principal, error)

	// AuthorizeJobAccess reports whether the user may join the job's
	// rooms: the job's client, or a professional with an accepted
	// application. Lookup failures authorize nobody.
	AuthorizeJobAccess(ctx context.Context, jobID, userID int64) bool

	// SaveChatMessage persists an inbound chat message and returns its
	// public projection. The row exists before the projection is handed
	// back for broadcast.
	SaveChatMessage(ctx context.Context, jobID int64, sender *models.Principal, content string) (*models.ChatMessageEvent, error)

	// TrackJoin and TrackLeave maintain the room presence cache.
	TrackJoin(ctx context.Context, kind string, jobID int64, p *models.Principal)
	TrackLeave(ctx context.Context, kind string, jobID int64, p *models.Principal)

	// NotifyCallEnded publishes a call-ended event for downstream
	// consumers when a signaling member disconnects or ends the call.
	NotifyCallEnded(ctx context.Context, jobID int64, p *models.Principal)
}
