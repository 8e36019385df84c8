package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

func TestAwardPoints_UpdatesLevelAndLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := testdb.User(t, f.db, "ana", 90)

	var total int64
	err := f.db.Transaction(func(tx *gorm.DB) error {
		var err error
		total, err = f.gamification.AwardPoints(ctx, tx, PointAward{
			UserID: ana.ID, Points: 50, Type: constant.PointTypeListingApproved, Description: "test",
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(140), total)

	var reloaded entities.User
	require.NoError(t, f.db.First(&reloaded, ana.ID).Error)
	assert.Equal(t, int64(140), reloaded.Points)
	assert.Equal(t, 2, reloaded.Level)

	var ledger, activity int64
	f.db.Model(&entities.PointTransaction{}).Where("user_id = ?", ana.ID).Count(&ledger)
	f.db.Model(&entities.Activity{}).Where("user_id = ? AND type = ?", ana.ID, constant.PointTypeListingApproved).Count(&activity)
	assert.Equal(t, int64(1), ledger)
	assert.Equal(t, int64(1), activity)
}

func TestAwardPoints_RollsBackWithTransaction(t *testing.T) {
	f := newFixture(t)
	ana := testdb.User(t, f.db, "ana", 0)

	_ = f.db.Transaction(func(tx *gorm.DB) error {
		_, err := f.gamification.AwardPoints(context.Background(), tx, PointAward{UserID: ana.ID, Points: 500, Type: "x"})
		require.NoError(t, err)
		return assert.AnError
	})

	var reloaded entities.User
	require.NoError(t, f.db.First(&reloaded, ana.ID).Error)
	assert.Equal(t, int64(0), reloaded.Points)
	assert.Equal(t, 1, reloaded.Level)
}

func TestRedeemBadge(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := testdb.User(t, f.db, "ana", 200)

	cheap := &entities.Badge{Name: "Primer Paso", Cost: 50, IsActive: true}
	pricey := &entities.Badge{Name: "Visionario", Cost: 1000, IsActive: true}
	retired := &entities.Badge{Name: "Antiguo", Cost: 10, IsActive: true}
	require.NoError(t, f.db.Create(cheap).Error)
	require.NoError(t, f.db.Create(pricey).Error)
	require.NoError(t, f.db.Create(retired).Error)
	require.NoError(t, f.db.Model(retired).Update("is_active", false).Error)

	res, err := f.gamification.RedeemBadge(ctx, ana.ID, cheap.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(150), res.AvailablePoints)
	assert.Equal(t, "Primer Paso", res.Badge.Name)

	_, err = f.gamification.RedeemBadge(ctx, ana.ID, cheap.ID)
	assert.ErrorIs(t, err, myErrors.ErrBadgeAlreadyOwned)

	_, err = f.gamification.RedeemBadge(ctx, ana.ID, pricey.ID)
	assert.ErrorIs(t, err, myErrors.ErrInsufficientPoints)

	_, err = f.gamification.RedeemBadge(ctx, ana.ID, retired.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	// 兑换只消耗可用积分，累计积分和等级不变
	var reloaded entities.User
	require.NoError(t, f.db.First(&reloaded, ana.ID).Error)
	assert.Equal(t, int64(200), reloaded.Points)
	assert.Equal(t, int64(50), reloaded.SpentPoints)

	var grants int64
	f.db.Model(&entities.UserBadge{}).Where("user_id = ?", ana.ID).Count(&grants)
	assert.Equal(t, int64(1), grants)
}

func TestRoundTo2(t *testing.T) {
	assert.Equal(t, 3.67, roundTo2(11.0/3.0))
	assert.Equal(t, 4.5, roundTo2(4.5))
}
