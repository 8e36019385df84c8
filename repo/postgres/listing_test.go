package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

func TestListingRepository_ListApprovedFilterAndOrder(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingRepository(db, zap.NewNop())
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	texto := testdb.Category(t, db, "texto", 1)
	imagen := testdb.Category(t, db, "imagen", 2)

	a := testdb.Listing(t, db, "alpha", texto.ID, author.ID, enums.Approved)
	b := testdb.Listing(t, db, "beta", texto.ID, author.ID, enums.Approved)
	c := testdb.Listing(t, db, "gamma", imagen.ID, author.ID, enums.Approved)
	testdb.Listing(t, db, "pending", texto.ID, author.ID, enums.Pending)

	require.NoError(t, db.Model(a).UpdateColumns(map[string]interface{}{"usage_count": 5, "average_rating": 4.5}).Error)
	require.NoError(t, db.Model(b).UpdateColumns(map[string]interface{}{"usage_count": 50, "average_rating": 3.0}).Error)

	all, err := repo.ListApproved(ctx, dto.ListingQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, b.ID, all[0].ID, "默认按使用次数排序")
	assert.Equal(t, "texto", all[0].Category.Slug)
	assert.Equal(t, "ana", all[0].Author.Username)

	topRated, err := repo.ListApproved(ctx, dto.ListingQuery{Order: dto.ListingOrderTopRated, Limit: 1})
	require.NoError(t, err)
	require.Len(t, topRated, 1)
	assert.Equal(t, a.ID, topRated[0].ID)

	recent, err := repo.ListApproved(ctx, dto.ListingQuery{Order: dto.ListingOrderRecent})
	require.NoError(t, err)
	assert.Equal(t, c.ID, recent[0].ID)

	filtered, err := repo.ListApproved(ctx, dto.ListingQuery{CategoryID: &imagen.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, c.ID, filtered[0].ID)
}

func TestListingRepository_SearchAndGetApproved(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingRepository(db, zap.NewNop())
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	cat := testdb.Category(t, db, "texto", 1)
	approved := testdb.Listing(t, db, "ChatHelper", cat.ID, author.ID, enums.Approved)
	pending := testdb.Listing(t, db, "ChatPending", cat.ID, author.ID, enums.Pending)

	found, err := repo.Search(ctx, "chat", 20)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, approved.ID, found[0].ID)

	found, err = repo.Search(ctx, "HELPER DESCRIPTION", 20)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = repo.GetApprovedByID(ctx, pending.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	got, err := repo.GetByID(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.Pending, got.Status)

	mine, err := repo.ListByAuthor(ctx, author.ID, false)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	count, err := repo.CountApprovedByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListingRepository_CategoryStats(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingRepository(db, zap.NewNop())
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	cat := testdb.Category(t, db, "texto", 1)
	a := testdb.Listing(t, db, "a", cat.ID, author.ID, enums.Approved)
	b := testdb.Listing(t, db, "b", cat.ID, author.ID, enums.Approved)
	require.NoError(t, repo.UpdateRatingStats(ctx, db, a.ID, 4, 2))
	require.NoError(t, repo.UpdateRatingStats(ctx, db, b.ID, 3, 1))

	total, avg, err := repo.CategoryStats(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.InDelta(t, 3.5, avg, 0.001)

	empty := testdb.Category(t, db, "vacia", 2)
	total, avg, err = repo.CategoryStats(ctx, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, avg)
}

func TestListingAdminRepository_TransitionStatus(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingAdminRepository(db, zap.NewNop())
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	admin := testdb.User(t, db, "admin", 0)
	cat := testdb.Category(t, db, "texto", 1)
	l := testdb.Listing(t, db, "alpha", cat.ID, author.ID, enums.Pending)

	require.NoError(t, repo.TransitionStatus(ctx, db, l.ID, enums.Pending, enums.Approved, admin.ID, sql.NullString{}))

	err := repo.TransitionStatus(ctx, db, l.ID, enums.Pending, enums.Rejected, admin.ID, sql.NullString{String: "x", Valid: true})
	assert.ErrorIs(t, err, myErrors.ErrAlreadyModerated)

	err = repo.TransitionStatus(ctx, db, 9999, enums.Pending, enums.Approved, admin.ID, sql.NullString{})
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	var got entities.Listing
	require.NoError(t, db.First(&got, l.ID).Error)
	assert.Equal(t, enums.Approved, got.Status)
	require.NotNil(t, got.ModeratedBy)
	assert.Equal(t, admin.ID, *got.ModeratedBy)
	assert.NotNil(t, got.ModeratedAt)
}

func TestListingAdminRepository_ListByConditionAndStats(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingAdminRepository(db, zap.NewNop())
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	cat := testdb.Category(t, db, "texto", 1)
	for _, name := range []string{"uno", "dos", "tres", "cuatro", "cinco"} {
		testdb.Listing(t, db, name, cat.ID, author.ID, enums.Pending)
	}
	approved := testdb.Listing(t, db, "aprobado", cat.ID, author.ID, enums.Approved)
	require.NoError(t, db.Model(approved).UpdateColumn("usage_count", 7).Error)
	testdb.Listing(t, db, "rechazado", cat.ID, author.ID, enums.Rejected)

	status := enums.Pending
	req := &dto.ListListingsByConditionRequest{Status: &status, OrderBy: "name", Page: 2, PageSize: 2}
	listings, total, err := repo.ListByCondition(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, listings, 2)
	// 按名称升序: cinco, cuatro, dos, tres, uno
	assert.Equal(t, "dos", listings[0].Name)
	assert.Equal(t, "tres", listings[1].Name)

	name := "APROB"
	listings, total, err = repo.ListByCondition(ctx, &dto.ListListingsByConditionRequest{Name: &name, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, approved.ID, listings[0].ID)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 5)
	assert.Equal(t, "uno", pending[0].Name)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), counts[enums.Pending])
	assert.Equal(t, int64(1), counts[enums.Approved])
	assert.Equal(t, int64(1), counts[enums.Rejected])

	visits, err := repo.SumApprovedUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), visits)

	assert.ErrorIs(t, repo.UpdateCategory(ctx, 9999, cat.ID), commonerrors.ErrRepoNotFound)
}

func TestListingBatchRepository_BatchIncrementUsageCounts(t *testing.T) {
	db := testdb.New(t)
	repo := NewListingBatchRepository(db, zap.NewNop(), config.UsageSyncConfig{BatchSize: 2, ConcurrencyLevel: 2})
	ctx := context.Background()

	author := testdb.User(t, db, "ana", 0)
	cat := testdb.Category(t, db, "texto", 1)
	deltas := make(map[uint64]int64)
	var ids []uint64
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		l := testdb.Listing(t, db, name, cat.ID, author.ID, enums.Approved)
		ids = append(ids, l.ID)
		deltas[l.ID] = int64(i + 1)
	}
	require.NoError(t, db.Model(&entities.Listing{}).Where("id = ?", ids[0]).UpdateColumn("usage_count", 10).Error)

	require.NoError(t, repo.BatchIncrementUsageCounts(ctx, deltas))
	require.NoError(t, repo.BatchIncrementUsageCounts(ctx, nil))

	var got []entities.Listing
	require.NoError(t, db.Order("id").Find(&got).Error)
	assert.Equal(t, int64(11), got[0].UsageCount)
	assert.Equal(t, int64(2), got[1].UsageCount)
	assert.Equal(t, int64(5), got[4].UsageCount)
}
