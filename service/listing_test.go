package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/dependencies"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

type memoryStorage struct {
	objects map[string][]byte
}

func (m *memoryStorage) UploadFile(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.objects[objectKey] = data
	return "https://cdn.example.com/" + objectKey, nil
}

func (f *fixture) listingService(storage dependencies.ObjectStorage) ListingService {
	return NewListingService(f.db, f.listings, f.categories, nil, storage, f.publisher, 1024, zap.NewNop())
}

// fileHeader 通过真实的 multipart 解析构造 FileHeader
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["file"][0]
}

func TestListListings(t *testing.T) {
	f := newFixture(t)
	svc := f.listingService(nil)
	ctx := context.Background()

	ana := testdb.User(t, f.db, "ana", 0)
	texto := testdb.Category(t, f.db, "texto", 1)
	imagen := testdb.Category(t, f.db, "imagen", 2)
	a := testdb.Listing(t, f.db, "alpha", texto.ID, ana.ID, enums.Approved)
	testdb.Listing(t, f.db, "beta", imagen.ID, ana.ID, enums.Approved)
	testdb.Listing(t, f.db, "gamma", texto.ID, ana.ID, enums.Pending)
	require.NoError(t, f.db.Model(a).Update("usage_count", 5).Error)

	all, err := svc.ListListings(ctx, &dto.ListListingsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name, "默认按使用次数降序")

	onlyTexto, err := svc.ListListings(ctx, &dto.ListListingsRequest{Category: "texto"})
	require.NoError(t, err)
	require.Len(t, onlyTexto, 1)
	require.NotNil(t, onlyTexto[0].Category)
	assert.Equal(t, "texto", onlyTexto[0].Category.Slug)

	unknown, err := svc.ListListings(ctx, &dto.ListListingsRequest{Category: "nada"})
	require.NoError(t, err)
	assert.Len(t, unknown, 2, "未知分类不过滤")

	limited, err := svc.ListListings(ctx, &dto.ListListingsRequest{Order: dto.ListingOrderRecent, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGetListingIncrementsUsage(t *testing.T) {
	f := newFixture(t)
	svc := f.listingService(nil)
	ctx := context.Background()

	ana := testdb.User(t, f.db, "ana", 0)
	cat := testdb.Category(t, f.db, "texto", 1)
	approved := testdb.Listing(t, f.db, "alpha", cat.ID, ana.ID, enums.Approved)
	pending := testdb.Listing(t, f.db, "beta", cat.ID, ana.ID, enums.Pending)

	_, err := svc.GetListing(ctx, approved.ID)
	require.NoError(t, err)
	_, err = svc.GetListing(ctx, approved.ID)
	require.NoError(t, err)

	_, err = svc.GetListing(ctx, pending.ID)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)

	var listing entities.Listing
	require.NoError(t, f.db.First(&listing, approved.ID).Error)
	assert.Equal(t, int64(2), listing.UsageCount)
}

func TestCreateListing(t *testing.T) {
	f := newFixture(t)
	svc := f.listingService(nil)
	ctx := context.Background()

	ana := testdb.User(t, f.db, "ana", 0)
	cat := testdb.Category(t, f.db, "texto", 1)

	_, err := svc.CreateListing(ctx, ana.ID, &dto.CreateListingRequest{Name: "x", Description: "y", URL: "https://x.io", CategoryID: 999})
	assert.ErrorIs(t, err, myErrors.ErrInvalidCategory)

	created, err := svc.CreateListing(ctx, ana.ID, &dto.CreateListingRequest{
		Name: " Copilot ", Description: "asistente", URL: "https://copilot.example.com", CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Copilot", created.Name)
	assert.Equal(t, enums.Pending, created.Status)

	select {
	case evt := <-f.publisher.submitted:
		assert.Equal(t, created.ID, evt.ID)
		assert.Equal(t, ana.ID, evt.AuthorID)
	case <-time.After(2 * time.Second):
		t.Fatal("未发布 listing.submitted 事件")
	}

	mine, err := svc.ListMine(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	public, err := svc.ListListings(ctx, &dto.ListListingsRequest{})
	require.NoError(t, err)
	assert.Empty(t, public, "待审核的工具不公开")
}

func TestSearchListings(t *testing.T) {
	f := newFixture(t)
	svc := f.listingService(nil)
	ctx := context.Background()

	ana := testdb.User(t, f.db, "ana", 0)
	cat := testdb.Category(t, f.db, "texto", 1)
	testdb.Listing(t, f.db, "ChatHelper", cat.ID, ana.ID, enums.Approved)
	testdb.Listing(t, f.db, "ImageGen", cat.ID, ana.ID, enums.Approved)

	_, err := svc.Search(ctx, "   ")
	assert.ErrorIs(t, err, myErrors.ErrEmptyQuery)

	found, err := svc.Search(ctx, "chat")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ChatHelper", found[0].Name)
}

func TestUploadLogo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.listingService(nil).UploadLogo(ctx, 1, fileHeader(t, "logo.png", "image/png", []byte("png")))
	assert.ErrorIs(t, err, myErrors.ErrStorageDisabled)

	storage := &memoryStorage{objects: map[string][]byte{}}
	svc := f.listingService(storage)

	_, err = svc.UploadLogo(ctx, 1, fileHeader(t, "notes.txt", "text/plain", []byte("hi")))
	assert.ErrorIs(t, err, myErrors.ErrInvalidLogoType)

	_, err = svc.UploadLogo(ctx, 1, fileHeader(t, "big.png", "image/png", bytes.Repeat([]byte("a"), 2048)))
	assert.ErrorIs(t, err, myErrors.ErrLogoTooLarge)

	res, err := svc.UploadLogo(ctx, 7, fileHeader(t, "Logo.PNG", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/listings/logos/"))
	assert.True(t, strings.HasSuffix(res.URL, ".png"))
	require.Len(t, storage.objects, 1)
}
