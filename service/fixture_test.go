package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/internal/testdb"
	"github.com/Xushengqwer/wiki_service/mq/events"
	"github.com/Xushengqwer/wiki_service/notify"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
)

// fixture 在内存数据库上组装真实的仓库和服务
type fixture struct {
	db           *gorm.DB
	users        postgres.UserRepository
	levels       postgres.LevelRepository
	listings     postgres.ListingRepository
	listingAdmin postgres.ListingAdminRepository
	categories   postgres.CategoryRepository
	reviews      postgres.ReviewRepository
	favorites    postgres.FavoriteRepository
	badges       postgres.BadgeRepository
	moderation   postgres.ModerationRepository
	activities   postgres.ActivityRepository
	gamification GamificationService
	publisher    *recordingPublisher
	notifier     *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	testdb.SeedLevels(t, db)
	logger := zap.NewNop()

	f := &fixture{
		db:           db,
		users:        postgres.NewUserRepository(db, logger),
		levels:       postgres.NewLevelRepository(db),
		listings:     postgres.NewListingRepository(db, logger),
		listingAdmin: postgres.NewListingAdminRepository(db, logger),
		categories:   postgres.NewCategoryRepository(db, logger),
		reviews:      postgres.NewReviewRepository(db, logger),
		favorites:    postgres.NewFavoriteRepository(db, logger),
		badges:       postgres.NewBadgeRepository(db, logger),
		moderation:   postgres.NewModerationRepository(db, logger),
		activities:   postgres.NewActivityRepository(db, logger),
		publisher:    newRecordingPublisher(),
		notifier:     &recordingNotifier{},
	}
	f.gamification = NewGamificationService(db, f.users, f.levels, f.reviews, f.listings, f.badges, f.activities,
		config.GamificationConfig{}, logger)
	return f
}

func (f *fixture) adminService() AdminService {
	return NewAdminService(AdminDeps{
		DB:             f.db,
		ListingRepo:    f.listings,
		ListingAdmin:   f.listingAdmin,
		CategoryRepo:   f.categories,
		UserRepo:       f.users,
		ReviewRepo:     f.reviews,
		ModerationRepo: f.moderation,
		ActivityRepo:   f.activities,
		Gamification:   f.gamification,
		Publisher:      f.publisher,
		Notifier:       f.notifier,
	}, zap.NewNop())
}

func (f *fixture) reviewService() ReviewService {
	return NewReviewService(f.db, f.reviews, f.listings, f.gamification, nil, zap.NewNop())
}

type recordingPublisher struct {
	submitted chan events.ListingData
	moderated chan events.ModerationData
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{
		submitted: make(chan events.ListingData, 8),
		moderated: make(chan events.ModerationData, 8),
	}
}

func (p *recordingPublisher) SendListingSubmittedEvent(_ context.Context, data events.ListingData) error {
	p.submitted <- data
	return nil
}

func (p *recordingPublisher) SendListingModeratedEvent(_ context.Context, data events.ModerationData) error {
	p.moderated <- data
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notify.ModerationNotice
}

func (n *recordingNotifier) NotifyModeration(notice notify.ModerationNotice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) all() []notify.ModerationNotice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.ModerationNotice(nil), n.notices...)
}
