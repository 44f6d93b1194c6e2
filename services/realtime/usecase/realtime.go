package usecase

import (
	"context"
	"fmt"
	"time"

	jwtpkg "github.com/kliklance/kliklance/internal/pkg/jwt"
	"github.com/kliklance/kliklance/internal/pkg/logger"
	"github.com/kliklance/kliklance/internal/pkg/models"
	"github.com/kliklance/kliklance/services/realtime"
)

// RealtimeUC implements the realtime use cases over the repository and
// the event gateway.
type RealtimeUC struct {
	cfg  *models.Config
	repo realtime.RealtimeRepo
	gw   realtime.RealtimeGW
}

// NewRealtimeUC creates the realtime usecase
func NewRealtimeUC(cfg *models.Config, repo realtime.RealtimeRepo, gw realtime.RealtimeGW) *RealtimeUC {
	return &RealtimeUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}

// ResolvePrincipalFromToken validates the access token and re-reads the
// user from the store. Identity always comes from durable state, not
// from token claims alone.
func (uc *RealtimeUC) ResolvePrincipalFromToken(ctx context.Context, token string) (*models.Principal, error) {
	claims, err := jwtpkg.ValidateToken(token, uc.cfg.JWT.Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}

	return uc.ResolvePrincipalByID(ctx, claims.UserID)
}

// ResolvePrincipalByID loads the user and builds the connection
// principal.
func (uc *RealtimeUC) ResolvePrincipalByID(ctx context.Context, userID int64) (*models.Principal, error) {
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}

	return &models.Principal{
		ID:   user.ID,
		Name: user.FullName,
		Role: user.Role,
	}, nil
}

// AuthorizeJobAccess reports whether the user may join the job's rooms.
// The job's client is always allowed; a professional needs an accepted
// application. Every failure path authorizes nobody.
func (uc *RealtimeUC) AuthorizeJobAccess(ctx context.Context, jobID, userID int64) bool {
	job, err := uc.repo.GetJob(ctx, jobID)
	if err != nil {
		logger.Warn("Authorization failed: job lookup",
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", userID),
			logger.Err(err))
		return false
	}

	if job.ClientID == userID {
		return true
	}

	app, err := uc.repo.FindAcceptedApplication(ctx, jobID, userID)
	if err != nil {
		logger.Warn("Authorization failed: application lookup",
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", userID),
			logger.Err(err))
		return false
	}

	return app != nil
}

// SaveChatMessage persists the message and returns its public
// projection. The returned event is only built after the insert
// succeeds, so a broadcast of it never precedes the row.
func (uc *RealtimeUC) SaveChatMessage(ctx context.Context, jobID int64, sender *models.Principal, content string) (*models.ChatMessageEvent, error) {
	if _, err := uc.repo.GetJob(ctx, jobID); err != nil {
		return nil, fmt.Errorf("failed to load job %d: %w", jobID, err)
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, jobID)
	if err != nil {
		return nil, err
	}

	fileType := ""
	if content != "" {
		fileType = "text"
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       sender.ID,
		Content:        content,
		FileType:       fileType,
		IsRead:         false,
	}
	if err := uc.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	event := &models.ChatMessageEvent{
		Event:      "chat_message",
		ID:         msg.ID,
		JobID:      jobID,
		Sender:     sender.ID,
		SenderName: sender.Name,
		SenderRole: sender.Role,
		Content:    msg.Content,
		FileURL:    msg.FileURL,
		FileType:   msg.FileType,
		CreatedAt:  msg.CreatedAt.Format(time.RFC3339),
		IsRead:     msg.IsRead,
	}

	if err := uc.gw.PublishMessageCreated(ctx, event); err != nil {
		// The message is durable; bus delivery is best effort.
		logger.Warn("Failed to publish message created event",
			logger.Int64("job_id", jobID),
			logger.Err(err))
	}

	return event, nil
}

// TrackJoin records the member in the room presence cache.
func (uc *RealtimeUC) TrackJoin(ctx context.Context, kind string, jobID int64, p *models.Principal) {
	if err := uc.repo.SetPresence(ctx, kind, jobID, p.ID); err != nil {
		logger.Warn("Failed to record presence",
			logger.String("kind", kind),
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", p.ID),
			logger.Err(err))
	}
}

// TrackLeave clears the member from the room presence cache.
func (uc *RealtimeUC) TrackLeave(ctx context.Context, kind string, jobID int64, p *models.Principal) {
	if err := uc.repo.RemovePresence(ctx, kind, jobID, p.ID); err != nil {
		logger.Warn("Failed to clear presence",
			logger.String("kind", kind),
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", p.ID),
			logger.Err(err))
	}
}

// NotifyCallEnded publishes the call-ended event to the bus.
func (uc *RealtimeUC) NotifyCallEnded(ctx context.Context, jobID int64, p *models.Principal) {
	event := &models.CallEndedEvent{
		Type:     "call_ended",
		JobID:    jobID,
		UserID:   p.ID,
		UserName: p.Name,
	}
	if err := uc.gw.PublishCallEnded(ctx, event); err != nil {
		logger.Warn("Failed to publish call ended event",
			logger.Int64("job_id", jobID),
			logger.Int64("user_id", p.ID),
			logger.Err(err))
	}
}
