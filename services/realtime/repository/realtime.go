package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/kliklance/kliklance/internal/pkg/database"
	"github.com/kliklance/kliklance/internal/pkg/models"
)

// Sentinel errors for callers that need to tell not-found apart from
// infrastructure failures.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrJobNotFound  = errors.New("job not found")
)

// RealtimeRepo reads marketplace data and appends message rows.
type RealtimeRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewRealtimeRepo creates the repository over the shared clients.
func NewRealtimeRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RealtimeRepo {
	return &RealtimeRepo{
		db:          db,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// GetUserByID retrieves an active user by id.
func (r *RealtimeRepo) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id, full_name, email, role, is_active, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrUserNotFound
	}

	return &user, nil
}

// GetJob retrieves a job by id.
func (r *RealtimeRepo) GetJob(ctx context.Context, jobID int64) (*models.Job, error) {
	query := `
		SELECT job_id, client_id, status
		FROM jobs
		WHERE job_id = $1
	`

	var job models.Job
	err := r.db.QueryRowContext(ctx, query, jobID).Scan(
		&job.JobID,
		&job.ClientID,
		&job.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return &job, nil
}

// FindAcceptedApplication looks up the professional's accepted
// application on the job. No row is not an error.
func (r *RealtimeRepo) FindAcceptedApplication(ctx context.Context, jobID, professionalID int64) (*models.JobApplication, error) {
	query := `
		SELECT id, job_id, professional_id, status
		FROM job_applications
		WHERE job_id = $1 AND professional_id = $2 AND status = $3
		LIMIT 1
	`

	var app models.JobApplication
	err := r.db.QueryRowContext(ctx, query, jobID, professionalID, models.ApplicationStatusAccepted).Scan(
		&app.ID,
		&app.JobID,
		&app.ProfessionalID,
		&app.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	return &app, nil
}

// GetOrCreateConversation returns the job's conversation, inserting it
// on first use. The upsert keeps concurrent first messages from racing
// into two conversations.
func (r *RealtimeRepo) GetOrCreateConversation(ctx context.Context, jobID int64) (*models.Conversation, error) {
	query := `
		INSERT INTO conversations (job_id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (job_id) DO UPDATE SET job_id = EXCLUDED.job_id
		RETURNING id, job_id, created_at
	`

	var conv models.Conversation
	err := r.db.QueryRowContext(ctx, query, jobID, time.Now()).Scan(
		&conv.ID,
		&conv.JobID,
		&conv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create conversation: %w", err)
	}

	return &conv, nil
}

// CreateMessage inserts a new message row. The id and created_at are
// assigned here so the caller can broadcast them right away.
func (r *RealtimeRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()

	query := `
		INSERT INTO messages (id, conversation_id, sender_id, content,
			file_url, file_type, is_read, created_at
		) VALUES (:id, :conversation_id, :sender_id, :content,
			:file_url, :file_type, :is_read, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}
