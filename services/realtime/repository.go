package realtime

import (
	"context"

	"github.com/kliklance/kliklance/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// RealtimeRepo is the narrow read/write interface onto the marketplace
// data owned by the CRUD services.
type RealtimeRepo interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetJob(ctx context.Context, jobID int64) (*models.Job, error)

	// FindAcceptedApplication returns nil without error when the
	// professional has no accepted application on the job.
	FindAcceptedApplication(ctx context.Context, jobID, professionalID int64) (*models.JobApplication, error)

	// GetOrCreateConversation returns the job's conversation, creating
	// it on first use. At most one conversation exists per job.
	GetOrCreateConversation(ctx context.Context, jobID int64) (*models.Conversation, error)
	CreateMessage(ctx context.Context, msg *models.Message) error

	SetPresence(ctx context.Context, kind string, jobID, userID int64) error
	RemovePresence(ctx context.Context, kind string, jobID, userID int64) error
}
