package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/dependencies"
	"github.com/Xushengqwer/wiki_service/mq/producer"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	"github.com/Xushengqwer/wiki_service/security"
	"github.com/Xushengqwer/wiki_service/service"
)

func main() {
	var configFile string
	var opts Options
	var waitSeconds int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&opts.Users, "users", 10, "要注册的用户数量")
	flag.IntVar(&opts.Listings, "n", 50, "要提交的工具数量")
	flag.Float64Var(&opts.ApproveRatio, "approve", 0.7, "审核通过的比例 (0-1)，其余一半拒绝一半保持待审核")
	flag.IntVar(&opts.MaxReviews, "reviews", 5, "每个已通过工具最多的评价数量")
	flag.IntVar(&waitSeconds, "wait", 5, "填充后等待的秒数，让异步 Kafka 消息发送完")
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Printf("参数错误: %v\n", err)
		os.Exit(1)
	}

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		absConfigFile = configFile
	}
	_ = appConfig.LoadDotEnv()
	var cfg appConfig.WikiConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	cfg.ApplyEnvOverrides()

	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() { _ = logger.Logger().Sync() }()
	baseLogger := logger.Logger()

	db, err := dependencies.InitDatabase(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化数据库失败 (Seeder)", zap.Error(err))
	}
	ctx := context.Background()
	if err := postgres.SeedReferenceData(ctx, db); err != nil {
		logger.Fatal("写入默认等级、分类和勋章失败 (Seeder)", zap.Error(err))
	}

	tokens, err := security.NewTokenManager(cfg.JWTConfig)
	if err != nil {
		logger.Fatal("初始化令牌管理器失败 (Seeder)", zap.Error(err))
	}

	var publisher service.ListingEventPublisher
	if p := producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger); p != nil {
		publisher = p
		defer func() { _ = p.Close() }()
	}

	userRepo := postgres.NewUserRepository(db, baseLogger)
	levelRepo := postgres.NewLevelRepository(db)
	listingRepo := postgres.NewListingRepository(db, baseLogger)
	categoryRepo := postgres.NewCategoryRepository(db, baseLogger)
	reviewRepo := postgres.NewReviewRepository(db, baseLogger)
	badgeRepo := postgres.NewBadgeRepository(db, baseLogger)
	activityRepo := postgres.NewActivityRepository(db, baseLogger)

	gamification := service.NewGamificationService(db, userRepo, levelRepo, reviewRepo, listingRepo, badgeRepo, activityRepo,
		cfg.GamificationConfig, baseLogger)
	svcs := Services{
		Auth:       service.NewAuthService(db, userRepo, levelRepo, badgeRepo, tokens, nil, baseLogger),
		Listing:    service.NewListingService(db, listingRepo, categoryRepo, nil, nil, publisher, 0, baseLogger),
		Category:   service.NewCategoryService(categoryRepo, listingRepo, baseLogger),
		Review:     service.NewReviewService(db, reviewRepo, listingRepo, gamification, nil, baseLogger),
		UserRoles:  userRepo,
		Moderation: service.NewAdminService(service.AdminDeps{
			DB:             db,
			ListingRepo:    listingRepo,
			ListingAdmin:   postgres.NewListingAdminRepository(db, baseLogger),
			CategoryRepo:   categoryRepo,
			UserRepo:       userRepo,
			ReviewRepo:     reviewRepo,
			ModerationRepo: postgres.NewModerationRepository(db, baseLogger),
			ActivityRepo:   activityRepo,
			Gamification:   gamification,
			Publisher:      publisher,
		}, baseLogger),
	}

	startTime := time.Now()
	summary, err := Seed(ctx, svcs, opts, baseLogger)
	if err != nil {
		logger.Fatal("数据填充失败", zap.Error(err))
	}
	logger.Info("数据填充完成",
		zap.Int("users", summary.Users),
		zap.Int("listings", summary.Listings),
		zap.Int("approved", summary.Approved),
		zap.Int("rejected", summary.Rejected),
		zap.Int("reviews", summary.Reviews),
		zap.Duration("耗时", time.Since(startTime)))

	if publisher != nil && waitSeconds > 0 {
		logger.Info(fmt.Sprintf("等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}
}
