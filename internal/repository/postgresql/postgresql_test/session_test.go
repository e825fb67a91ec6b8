package postgresql_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/career-gateway-go/internal/domain/session"
	"github.com/cmlabs-hris/career-gateway-go/internal/pkg/secret"
	"github.com/cmlabs-hris/career-gateway-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(t *testing.T) *secret.Box {
	t.Helper()
	box, err := secret.NewBox(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)
	return box
}

func TestSessionRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewSessionRepository(db, newBox(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	created, err := repo.Create(ctx, session.Session{
		Role:          session.RoleSeeker,
		SubjectID:     "42",
		Name:          "Ana",
		UpstreamToken: "portal-token",
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "portal-token", got.UpstreamToken)
	assert.Equal(t, session.RoleSeeker, got.Role)
	assert.True(t, got.ActiveAt(now))

	var stored []byte
	require.NoError(t, db.QueryRow(ctx, `SELECT upstream_token FROM sessions WHERE id = $1`, created.ID).Scan(&stored))
	assert.NotContains(t, string(stored), "portal-token")

	require.NoError(t, repo.Revoke(ctx, created.ID, now))
	assert.ErrorIs(t, repo.Revoke(ctx, created.ID, now), session.ErrSessionNotFound)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.ActiveAt(now))

	n, err := repo.PurgeExpired(ctx, now.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestPrimaryResumeRepository_LastWriteWins(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPrimaryResumeRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := repo.Get(ctx, "42")
	assert.ErrorIs(t, err, session.ErrResumeNotFound)

	_, err = repo.Upsert(ctx, session.PrimaryResume{SeekerID: "42", ResumeID: "r1", UpdatedAt: now})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, session.PrimaryResume{SeekerID: "42", ResumeID: "r2", UpdatedAt: now.Add(time.Second)})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "r2", got.ResumeID)
}

func TestWithTransaction_RollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := postgresql.NewPrimaryResumeRepository(db)
	ctx := context.Background()

	err := postgresql.WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := repo.Upsert(ctx, session.PrimaryResume{SeekerID: "7", ResumeID: "r1", UpdatedAt: time.Now()}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = repo.Get(ctx, "7")
	assert.ErrorIs(t, err, session.ErrResumeNotFound)
}
