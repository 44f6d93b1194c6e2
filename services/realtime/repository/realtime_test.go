package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/kliklance/kliklance/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*RealtimeRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	return NewRealtimeRepo(&models.Config{}, sqlxDB, nil), mock
}

func TestGetUserByID(t *testing.T) {
	repo, mock := newTestRepo(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, role, is_active, created_at")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "role", "is_active", "created_at"}).
			AddRow(int64(42), "Ayu Lestari", "ayu@example.com", models.RoleClient, true, now))

	user, err := repo.GetUserByID(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Ayu Lestari", user.FullName)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, role, is_active, created_at")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "role", "is_active", "created_at"}))

	user, err := repo.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetUserByIDInactive(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, role, is_active, created_at")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "role", "is_active", "created_at"}).
			AddRow(int64(42), "Ayu Lestari", "ayu@example.com", models.RoleClient, false, time.Now()))

	user, err := repo.GetUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetJob(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT job_id, client_id, status")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"job_id", "client_id", "status"}).
			AddRow(int64(7), int64(100), "In Progress"))

	job, err := repo.GetJob(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), job.JobID)
	assert.Equal(t, int64(100), job.ClientID)
}

func TestGetJobNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT job_id, client_id, status")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"job_id", "client_id", "status"}))

	job, err := repo.GetJob(context.Background(), 9)
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Nil(t, job)
}

func TestFindAcceptedApplication(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, job_id, professional_id, status")).
		WithArgs(int64(7), int64(200), models.ApplicationStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "professional_id", "status"}).
			AddRow(int64(1), int64(7), int64(200), models.ApplicationStatusAccepted))

	app, err := repo.FindAcceptedApplication(context.Background(), 7, 200)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, int64(200), app.ProfessionalID)
}

func TestFindAcceptedApplicationNoRow(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, job_id, professional_id, status")).
		WithArgs(int64(7), int64(300), models.ApplicationStatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "professional_id", "status"}))

	app, err := repo.FindAcceptedApplication(context.Background(), 7, 300)
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestFindAcceptedApplicationQueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, job_id, professional_id, status")).
		WithArgs(int64(7), int64(200), models.ApplicationStatusAccepted).
		WillReturnError(errors.New("connection reset"))

	app, err := repo.FindAcceptedApplication(context.Background(), 7, 200)
	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestGetOrCreateConversation(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO conversations")).
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "job_id", "created_at"}).
			AddRow(int64(31), int64(7), now))

	conv, err := repo.GetOrCreateConversation(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(31), conv.ID)
	assert.Equal(t, int64(7), conv.JobID)
}

func TestCreateMessage(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs(sqlmock.AnyArg(), int64(31), int64(200), "hello there",
			nil, "text", false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	msg := &models.Message{
		ConversationID: 31,
		SenderID:       200,
		Content:        "hello there",
		FileType:       "text",
		IsRead:         false,
	}
	err := repo.CreateMessage(context.Background(), msg)
	require.NoError(t, err)

	// Id and timestamp are assigned during the insert.
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessageInsertError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO messages")).
		WillReturnError(errors.New("constraint violation"))

	err := repo.CreateMessage(context.Background(), &models.Message{ConversationID: 31, SenderID: 200})
	assert.Error(t, err)
}
