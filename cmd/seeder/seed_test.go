package main

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/security"
	"github.com/Xushengqwer/wiki_service/service"
)

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Users: 2, Listings: 1, ApproveRatio: 0.5}.Validate())
	assert.Error(t, Options{Users: 1}.Validate())
	assert.Error(t, Options{Users: 3, ApproveRatio: 1.5}.Validate())
	assert.Error(t, Options{Users: 3, Listings: -1}.Validate())
}

func TestSeedThroughServices(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	require.NoError(t, postgres.SeedReferenceData(ctx, db))
	logger := zap.NewNop()

	tokens, err := security.NewTokenManager(config.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	users := postgres.NewUserRepository(db, logger)
	levels := postgres.NewLevelRepository(db)
	listings := postgres.NewListingRepository(db, logger)
	categories := postgres.NewCategoryRepository(db, logger)
	reviews := postgres.NewReviewRepository(db, logger)
	badges := postgres.NewBadgeRepository(db, logger)
	activities := postgres.NewActivityRepository(db, logger)
	gamification := service.NewGamificationService(db, users, levels, reviews, listings, badges, activities, config.GamificationConfig{}, logger)

	svcs := Services{
		Auth:      service.NewAuthService(db, users, levels, badges, tokens, nil, logger),
		Listing:   service.NewListingService(db, listings, categories, nil, nil, nil, 0, logger),
		Category:  service.NewCategoryService(categories, listings, logger),
		Review:    service.NewReviewService(db, reviews, listings, gamification, nil, logger),
		UserRoles: users,
		Moderation: service.NewAdminService(service.AdminDeps{
			DB:             db,
			ListingRepo:    listings,
			ListingAdmin:   postgres.NewListingAdminRepository(db, logger),
			CategoryRepo:   categories,
			UserRepo:       users,
			ReviewRepo:     reviews,
			ModerationRepo: postgres.NewModerationRepository(db, logger),
			ActivityRepo:   activities,
			Gamification:   gamification,
		}, logger),
	}

	summary, err := Seed(ctx, svcs, Options{Users: 4, Listings: 10, ApproveRatio: 1, MaxReviews: 3, Seed: 42}, logger)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, 10, summary.Listings)
	assert.Equal(t, 10, summary.Approved)

	var approved int64
	require.NoError(t, db.Model(&entities.Listing{}).Where("status = ?", enums.Approved).Count(&approved).Error)
	assert.EqualValues(t, 10, approved)

	var reviewCount int64
	require.NoError(t, db.Model(&entities.Review{}).Count(&reviewCount).Error)
	assert.EqualValues(t, summary.Reviews, reviewCount)

	var admins int64
	require.NoError(t, db.Model(&entities.User{}).Where("role = ?", "admin").Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}
