package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/controller"
	"github.com/Xushengqwer/wiki_service/dependencies"
	_ "github.com/Xushengqwer/wiki_service/docs"
	"github.com/Xushengqwer/wiki_service/middleware"
	"github.com/Xushengqwer/wiki_service/mq/consumer"
	"github.com/Xushengqwer/wiki_service/mq/producer"
	"github.com/Xushengqwer/wiki_service/notify"
	"github.com/Xushengqwer/wiki_service/repo/postgres"
	redisrepo "github.com/Xushengqwer/wiki_service/repo/redis"
	"github.com/Xushengqwer/wiki_service/router"
	"github.com/Xushengqwer/wiki_service/security"
	"github.com/Xushengqwer/wiki_service/service"
	"github.com/Xushengqwer/wiki_service/tasks"
)

// @title           Wiki IA API
// @version         1.0
// @description     AI 工具目录服务: 工具提交与审核、分类、评价、收藏、积分、勋章和排行榜。

// @host      localhost:8083
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式: Bearer <token>
func main() {
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 配置: .env -> YAML -> 环境变量覆盖
	if err := appConfig.LoadDotEnv(); err != nil {
		log.Fatalf("FATAL: 加载 .env 失败: %v", err)
	}
	var cfg appConfig.WikiConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}
	cfg.ApplyEnvOverrides()

	// 2. Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	baseLogger := logger.Logger()

	// 3. 分布式追踪
	if cfg.TracerConfig.Enabled {
		tracerShutdown, err := sharedTracing.InitTracerProvider(constant.ServiceName, constant.ServiceVersion, cfg.TracerConfig)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			}
		}()
		logger.Info("分布式追踪已初始化")
	} else {
		logger.Info("分布式追踪已禁用")
	}

	// 4. 核心依赖
	db, err := dependencies.InitDatabase(&cfg, logger)
	if err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	if cfg.DatabaseConfig.SeedReferenceData {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := postgres.SeedReferenceData(seedCtx, db); err != nil {
			logger.Fatal("写入默认等级、分类和勋章失败", zap.Error(err))
		}
		cancel()
		logger.Info("默认数据检查完成")
	}

	rdb, err := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if err != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(err))
	}

	storage, err := dependencies.InitCOS(&cfg.COSConfig, logger)
	if err != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(err))
	}

	// 可选组件未启用时保持 nil 接口，服务层据此跳过
	var publisher service.ListingEventPublisher
	kafkaProducer := producer.NewKafkaProducer(cfg.KafkaConfig, baseLogger)
	if kafkaProducer != nil {
		publisher = kafkaProducer
		defer func() { _ = kafkaProducer.Close() }()
	}
	var notifier service.ModerationNotifier
	if mailer := notify.NewMailNotifier(cfg.SMTPConfig, baseLogger); mailer != nil {
		notifier = mailer
	}

	tokens, err := security.NewTokenManager(cfg.JWTConfig)
	if err != nil {
		logger.Fatal("初始化令牌管理器失败", zap.Error(err))
	}
	enforcer, err := middleware.NewEnforcer()
	if err != nil {
		logger.Fatal("初始化 RBAC 失败", zap.Error(err))
	}

	// 5. 仓库层
	userRepo := postgres.NewUserRepository(db, baseLogger)
	levelRepo := postgres.NewLevelRepository(db)
	listingRepo := postgres.NewListingRepository(db, baseLogger)
	listingAdminRepo := postgres.NewListingAdminRepository(db, baseLogger)
	listingBatchRepo := postgres.NewListingBatchRepository(db, baseLogger, cfg.UsageSyncConfig)
	categoryRepo := postgres.NewCategoryRepository(db, baseLogger)
	reviewRepo := postgres.NewReviewRepository(db, baseLogger)
	favoriteRepo := postgres.NewFavoriteRepository(db, baseLogger)
	badgeRepo := postgres.NewBadgeRepository(db, baseLogger)
	moderationRepo := postgres.NewModerationRepository(db, baseLogger)
	activityRepo := postgres.NewActivityRepository(db, baseLogger)

	var usageRepo redisrepo.ListingUsageRepository
	var rankingCache redisrepo.RankingCache
	if rdb != nil {
		usageRepo = redisrepo.NewListingUsageRepository(rdb, baseLogger, cfg.UsageSyncConfig)
		rankingCache = redisrepo.NewRankingCache(rdb, baseLogger, time.Duration(cfg.RankingCacheConfig.TTLSeconds)*time.Second)
	}

	// 6. 服务层
	maxLogoSize := cfg.COSConfig.MaxLogoSize
	gamificationService := service.NewGamificationService(db, userRepo, levelRepo, reviewRepo, listingRepo, badgeRepo, activityRepo,
		cfg.GamificationConfig, baseLogger)
	authService := service.NewAuthService(db, userRepo, levelRepo, badgeRepo, tokens, rankingCache, baseLogger)
	listingService := service.NewListingService(db, listingRepo, categoryRepo, usageRepo, storage, publisher, maxLogoSize, baseLogger)
	categoryService := service.NewCategoryService(categoryRepo, listingRepo, baseLogger)
	reviewService := service.NewReviewService(db, reviewRepo, listingRepo, gamificationService, rankingCache, baseLogger)
	favoriteService := service.NewFavoriteService(favoriteRepo, listingRepo, baseLogger)
	userService := service.NewUserService(userRepo, levelRepo, badgeRepo, listingRepo, reviewRepo, activityRepo, rankingCache, baseLogger)
	badgeService := service.NewBadgeService(badgeRepo, levelRepo, gamificationService)
	adminService := service.NewAdminService(service.AdminDeps{
		DB:             db,
		ListingRepo:    listingRepo,
		ListingAdmin:   listingAdminRepo,
		CategoryRepo:   categoryRepo,
		UserRepo:       userRepo,
		ReviewRepo:     reviewRepo,
		ModerationRepo: moderationRepo,
		ActivityRepo:   activityRepo,
		Gamification:   gamificationService,
		RankingCache:   rankingCache,
		Publisher:      publisher,
		Notifier:       notifier,
	}, baseLogger)

	// 7. 控制器
	ctrls := router.Controllers{
		Auth:     controller.NewAuthController(authService),
		Listing:  controller.NewListingController(listingService),
		Category: controller.NewCategoryController(categoryService),
		Review:   controller.NewReviewController(reviewService),
		Favorite: controller.NewFavoriteController(favoriteService),
		User:     controller.NewUserController(userService),
		Badge:    controller.NewBadgeController(badgeService),
		Admin:    controller.NewAdminController(adminService),
		Health:   controller.NewHealthController(db),
	}

	// 8. Kafka 消费者 (外部审核决定)
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	consumerCtx, consumerCancel := context.WithCancel(context.Background())
	defer consumerCancel()

	if topic := cfg.KafkaConfig.Topics.ModerationDecisions; len(cfg.KafkaConfig.Brokers) > 0 && topic != "" {
		if cfg.KafkaConfig.ConsumerGroupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未配置，使用默认值 'wiki_service_group'")
			cfg.KafkaConfig.ConsumerGroupID = "wiki_service_group"
		}
		handler := consumer.NewModerationDecisionHandler(adminService, baseLogger)
		decisionConsumer, err := consumer.NewConsumer(cfg.KafkaConfig, topic, handler, baseLogger)
		if err != nil {
			logger.Fatal("初始化审核决定消费者失败", zap.Error(err))
		}
		consumers = append(consumers, decisionConsumer)
	} else {
		logger.Warn("Kafka 未配置或审核决定 topic 为空，跳过消费者初始化")
	}
	for _, c := range consumers {
		consumerWg.Add(1)
		go func(cons *consumer.Consumer) {
			defer consumerWg.Done()
			cons.Start(consumerCtx)
		}(c)
	}

	// 9. 定时任务，只在有 Redis 时需要
	var stoppers []interface{ Stop() context.Context }
	if usageRepo != nil {
		stoppers = append(stoppers, tasks.NewUsageSyncTask(usageRepo, listingBatchRepo, baseLogger))
	}
	if rankingCache != nil {
		stoppers = append(stoppers, tasks.NewRankingRefreshTask(userService, cfg.RankingCacheConfig.WarmLimits, baseLogger))
	}

	// 10. HTTP 服务器
	ginRouter := router.SetupRouter(logger, &cfg, tokens, enforcer, ctrls)
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:              serverAddr,
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
	}()

	// 11. 优雅关停: HTTP -> 消费者 -> 定时任务 -> Redis
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	}

	consumerCancel()
	consumerWg.Wait()
	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭 Kafka 消费者时出错", zap.Error(err))
		}
	}

	for _, s := range stoppers {
		select {
		case <-s.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
		}
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("关闭 Redis 连接失败", zap.Error(err))
		}
	}
	logger.Info("服务已成功关闭")
}
