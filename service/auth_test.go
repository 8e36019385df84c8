package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
	"github.com/Xushengqwer/wiki_service/security"
)

func newAuthService(t *testing.T, f *fixture) (AuthService, *security.TokenManager) {
	t.Helper()
	tokens, err := security.NewTokenManager(config.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	return NewAuthService(f.db, f.users, f.levels, f.badges, tokens, nil, zap.NewNop()), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc, tokens := newAuthService(t, f)
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ana", Email: "Ana@Example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.Equal(t, "user", res.User.Role)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "otra", Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, myErrors.ErrAccountTaken)
	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "ana", Email: "otra@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, myErrors.ErrAccountTaken)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nadie@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCredentials)

	logged, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)

	var user entities.User
	require.NoError(t, f.db.First(&user, res.User.ID).Error)
	assert.NotNil(t, user.LastActiveAt)
}

func TestLoginBannedUser(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuthService(t, f)
	ctx := context.Background()

	res, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	require.NoError(t, f.adminService().BanUser(ctx, res.User.ID, "spam"))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secreto1"})
	assert.ErrorIs(t, err, myErrors.ErrUserBanned)
	assert.Contains(t, err.Error(), "spam")
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	svc, _ := newAuthService(t, f)
	ctx := context.Background()

	ana, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "secreto1"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "beto", Email: "beto@example.com", Password: "secreto1"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, ana.User.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.LevelInfo)
	assert.Equal(t, "Novato", profile.LevelInfo.Name)
	assert.Empty(t, profile.Badges)

	taken := "beto"
	_, err = svc.UpdateProfile(ctx, ana.User.ID, &dto.UpdateProfileRequest{Username: &taken})
	assert.ErrorIs(t, err, myErrors.ErrUsernameTaken)

	newName, bio := "ana_ia", "Me gustan los LLM"
	updated, err := svc.UpdateProfile(ctx, ana.User.ID, &dto.UpdateProfileRequest{Username: &newName, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "ana_ia", updated.Username)
	assert.Equal(t, bio, updated.Bio)
}
