package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	u := &entities.User{Username: "ana", Email: "ana@example.com", PasswordHash: "h", Role: "user", IsActive: true}
	require.NoError(t, repo.Create(ctx, db, u))
	assert.NotZero(t, u.ID)

	dup := &entities.User{Username: "otra", Email: "ana@example.com", PasswordHash: "h", Role: "user"}
	assert.ErrorIs(t, repo.Create(ctx, db, dup), myErrors.ErrAccountTaken)

	exists, err := repo.ExistsByEmailOrUsername(ctx, "nadie@example.com", "ana")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_RankingExcludesBanned(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	testdb.User(t, db, "low", 10)
	high := testdb.User(t, db, "high", 500)
	banned := testdb.User(t, db, "banned", 1000)
	require.NoError(t, repo.SetBanned(ctx, banned.ID, true, sql.NullString{String: "spam", Valid: true}))

	users, err := repo.ListRanking(ctx, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, high.ID, users[0].ID)

	_, err = repo.GetPublicByUsername(ctx, "banned")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	assert.ErrorIs(t, repo.SetBanned(ctx, 9999, true, sql.NullString{}), commonerrors.ErrRepoNotFound)
}

func TestUserRepository_PointsAndSpend(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()
	u := testdb.User(t, db, "ana", 0)

	points, err := repo.AddPoints(ctx, db, u.ID, 120)
	require.NoError(t, err)
	assert.Equal(t, int64(120), points)

	require.NoError(t, repo.SpendPoints(ctx, db, u.ID, 100))
	assert.ErrorIs(t, repo.SpendPoints(ctx, db, u.ID, 50), myErrors.ErrInsufficientPoints)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(120), got.Points)
	assert.Equal(t, int64(100), got.SpentPoints)
	assert.Equal(t, int64(20), got.AvailablePoints())
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()
	ana := testdb.User(t, db, "ana", 0)
	testdb.User(t, db, "beto", 0)

	bio := "hola"
	require.NoError(t, repo.UpdateProfile(ctx, ana.ID, nil, &bio, nil))

	taken, err := repo.UsernameTakenByOther(ctx, "beto", ana.ID)
	require.NoError(t, err)
	assert.True(t, taken)

	name := "beto"
	assert.ErrorIs(t, repo.UpdateProfile(ctx, ana.ID, &name, nil, nil), myErrors.ErrUsernameTaken)

	got, err := repo.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "hola", got.Bio)
	assert.Equal(t, "ana", got.Username)
}

func TestUserRepository_SetRole(t *testing.T) {
	db := testdb.New(t)
	repo := NewUserRepository(db, zap.NewNop())
	ctx := context.Background()

	u := testdb.User(t, db, "ana", 0)
	require.NoError(t, repo.SetRole(ctx, u.ID, "admin"))
	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Role)

	assert.ErrorIs(t, repo.SetRole(ctx, 9999, "admin"), commonerrors.ErrRepoNotFound)
}
