package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/middleware"
	"github.com/Xushengqwer/wiki_service/models/entities"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/security"
	"github.com/Xushengqwer/wiki_service/service"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *security.TokenManager
}

// newTestServer 在内存数据库上注册全部控制器，不启用缓存、对象存储和消息队列
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.New(t)
	testdb.SeedLevels(t, db)
	logger := zap.NewNop()

	tokens, err := security.NewTokenManager(config.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	enforcer, err := middleware.NewEnforcer()
	require.NoError(t, err)

	users := postgres.NewUserRepository(db, logger)
	levels := postgres.NewLevelRepository(db)
	listings := postgres.NewListingRepository(db, logger)
	categories := postgres.NewCategoryRepository(db, logger)
	reviews := postgres.NewReviewRepository(db, logger)
	favorites := postgres.NewFavoriteRepository(db, logger)
	badges := postgres.NewBadgeRepository(db, logger)
	activities := postgres.NewActivityRepository(db, logger)

	gamification := service.NewGamificationService(db, users, levels, reviews, listings, badges, activities,
		config.GamificationConfig{}, logger)
	admin := service.NewAdminService(service.AdminDeps{
		DB:             db,
		ListingRepo:    listings,
		ListingAdmin:   postgres.NewListingAdminRepository(db, logger),
		CategoryRepo:   categories,
		UserRepo:       users,
		ReviewRepo:     reviews,
		ModerationRepo: postgres.NewModerationRepository(db, logger),
		ActivityRepo:   activities,
		Gamification:   gamification,
	}, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	auth := middleware.JWTAuth(tokens, logger)
	NewAuthController(service.NewAuthService(db, users, levels, badges, tokens, nil, logger)).RegisterRoutes(api, auth)
	NewListingController(service.NewListingService(db, listings, categories, nil, nil, nil, 0, logger)).RegisterRoutes(api, auth)
	NewCategoryController(service.NewCategoryService(categories, listings, logger)).RegisterRoutes(api)
	NewReviewController(service.NewReviewService(db, reviews, listings, gamification, nil, logger)).RegisterRoutes(api, auth)
	NewFavoriteController(service.NewFavoriteService(favorites, listings, logger)).RegisterRoutes(api, auth)
	NewUserController(service.NewUserService(users, levels, badges, listings, reviews, activities, nil, logger)).RegisterRoutes(api)
	NewBadgeController(service.NewBadgeService(badges, levels, gamification)).RegisterRoutes(api, auth)
	NewAdminController(admin).RegisterRoutes(api, auth, middleware.RequireRole(enforcer, logger))
	NewHealthController(db).RegisterRoutes(api)

	return &testServer{router: r, db: db, tokens: tokens}
}

func (s *testServer) tokenFor(t *testing.T, u *entities.User) string {
	t.Helper()
	token, err := s.tokens.Issue(u.ID, u.Username, u.Email, u.Role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func uitoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// decodeData 取出响应体中的 data 字段
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestAuthEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "ana", "email": "ana@example.com", "password": "secreto1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &registered)
	assert.NotEmpty(t, registered.Token)

	w = s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "ana", "email": "ana@example.com", "password": "secreto1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "bob", "email": "bob@example.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "ana@example.com", "password": "equivocada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "ana@example.com", "password": "secreto1"})
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/v1/auth/profile", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/auth/profile", registered.Token, nil).Code)
}

func TestBlankUsernameIsRejected(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "     ", "email": "blank@example.com", "password": "secreto1"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "  a  ", "email": "blank@example.com", "password": "secreto1"})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	var count int64
	require.NoError(t, s.db.Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)

	w = s.do(http.MethodPost, "/api/v1/auth/register", "", gin.H{"username": "  ana  ", "email": "ana@example.com", "password": "secreto1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered struct {
		Token string `json:"token"`
	}
	decodeData(t, w, &registered)

	w = s.do(http.MethodPut, "/api/v1/auth/profile", registered.Token, gin.H{"username": "    "})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var stored entities.User
	require.NoError(t, s.db.Where("email = ?", "ana@example.com").First(&stored).Error)
	assert.Equal(t, "ana", stored.Username)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/users/ana", "", nil).Code)
}

func TestLoginBannedUserIsForbidden(t *testing.T) {
	s := newTestServer(t)
	hash, err := security.HashPassword("secreto1")
	require.NoError(t, err)
	u := testdb.User(t, s.db, "baneado", 0)
	require.NoError(t, s.db.Model(u).Updates(map[string]interface{}{"password_hash": hash, "is_banned": true, "ban_reason": "spam"}).Error)

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": u.Email, "password": "secreto1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "spam")
}

func TestListingEndpoints(t *testing.T) {
	s := newTestServer(t)
	author := testdb.User(t, s.db, "ana", 0)
	cat := testdb.Category(t, s.db, "chatbots", 1)
	approved := testdb.Listing(t, s.db, "chat", cat.ID, author.ID, enums.Approved)
	pending := testdb.Listing(t, s.db, "borrador", cat.ID, author.ID, enums.Pending)
	token := s.tokenFor(t, author)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/listings?order=recent", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/listings?order=nope", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/listings/"+uitoa(approved.ID), "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/listings/"+uitoa(pending.ID), "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/listings/abc", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/listings/search?q=", "", nil).Code)

	body := gin.H{"name": "Nueva", "description": "desc", "url": "https://nueva.example.com", "category_id": cat.ID}
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/v1/listings", "", body).Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/listings", token, body).Code)
	body["category_id"] = 999
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/listings", token, body).Code)

	var mine []map[string]interface{}
	w := s.do(http.MethodGet, "/api/v1/listings/mine", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &mine)
	assert.Len(t, mine, 3)
}

func TestReviewEndpoints(t *testing.T) {
	s := newTestServer(t)
	author := testdb.User(t, s.db, "ana", 0)
	reviewer := testdb.User(t, s.db, "bob", 0)
	cat := testdb.Category(t, s.db, "chatbots", 1)
	listing := testdb.Listing(t, s.db, "chat", cat.ID, author.ID, enums.Approved)
	token := s.tokenFor(t, reviewer)

	w := s.do(http.MethodPost, "/api/v1/reviews", token, gin.H{"listing_id": listing.ID, "rating": 6})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = s.do(http.MethodPost, "/api/v1/reviews", token, gin.H{"listing_id": 999, "rating": 4})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/api/v1/reviews", token, gin.H{"listing_id": listing.ID, "rating": 4, "comment": "útil"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var review struct {
		ID     uint64 `json:"id"`
		Rating int    `json:"rating"`
	}
	decodeData(t, w, &review)
	assert.Equal(t, 4, review.Rating)

	w = s.do(http.MethodPost, "/api/v1/reviews", token, gin.H{"listing_id": listing.ID, "rating": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	other := s.tokenFor(t, author)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/v1/reviews/"+uitoa(review.ID), other, gin.H{"rating": 1}).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/v1/reviews/"+uitoa(review.ID), token, gin.H{"rating": 5}).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/reviews/listing/"+uitoa(listing.ID), "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/v1/reviews/"+uitoa(review.ID), token, nil).Code)
}

func TestFavoriteEndpoints(t *testing.T) {
	s := newTestServer(t)
	u := testdb.User(t, s.db, "ana", 0)
	cat := testdb.Category(t, s.db, "chatbots", 1)
	listing := testdb.Listing(t, s.db, "chat", cat.ID, u.ID, enums.Approved)
	token := s.tokenFor(t, u)

	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/v1/favorites", token, gin.H{"listing_id": listing.ID}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/favorites", token, gin.H{"listing_id": listing.ID}).Code)

	var check struct {
		IsFavorite bool `json:"is_favorite"`
	}
	w := s.do(http.MethodGet, "/api/v1/favorites/check/"+uitoa(listing.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &check)
	assert.True(t, check.IsFavorite)

	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/v1/favorites/"+uitoa(listing.ID), token, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodDelete, "/api/v1/favorites/"+uitoa(listing.ID), token, nil).Code)
}

func TestAdminEndpoints(t *testing.T) {
	s := newTestServer(t)
	author := testdb.User(t, s.db, "ana", 0)
	admin := testdb.User(t, s.db, "root", 0)
	require.NoError(t, s.db.Model(admin).Update("role", "admin").Error)
	admin.Role = "admin"
	cat := testdb.Category(t, s.db, "chatbots", 1)
	first := testdb.Listing(t, s.db, "uno", cat.ID, author.ID, enums.Pending)
	second := testdb.Listing(t, s.db, "dos", cat.ID, author.ID, enums.Pending)

	adminToken := s.tokenFor(t, admin)
	userToken := s.tokenFor(t, author)

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/api/v1/admin/stats", userToken, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/admin/stats", adminToken, nil).Code)

	approvePath := "/api/v1/admin/listings/" + uitoa(first.ID) + "/approve"
	w := s.do(http.MethodPut, approvePath, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, approvePath, adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/v1/admin/listings/999/approve", adminToken, nil).Code)

	rejectPath := "/api/v1/admin/listings/" + uitoa(second.ID) + "/reject"
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, rejectPath, adminToken, gin.H{}).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPut, rejectPath, adminToken, gin.H{"reason": "duplicado"}).Code)

	var page struct {
		Total int64 `json:"total"`
	}
	w = s.do(http.MethodGet, "/api/v1/admin/listings?status=2", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &page)
	assert.EqualValues(t, 1, page.Total)

	assert.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/v1/admin/users/"+uitoa(author.ID)+"/ban", adminToken, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/v1/admin/users/999/ban", adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/v1/admin/users/"+uitoa(author.ID)+"/unban", adminToken, nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/admin/history", adminToken, nil).Code)
}

func TestPublicEndpoints(t *testing.T) {
	s := newTestServer(t)
	testdb.User(t, s.db, "ana", 50)
	testdb.Category(t, s.db, "chatbots", 1)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/users/ranking", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/users/ana", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/users/nadie", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/categories/chatbots/stats", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/categories/nada", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/badges/levels", "", nil).Code)
}
