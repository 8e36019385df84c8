package router

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/wiki_service/config"
	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/controller"
	"github.com/Xushengqwer/wiki_service/middleware"
)

// Controllers 需要注册到路由的全部控制器
type Controllers struct {
	Auth     *controller.AuthController
	Listing  *controller.ListingController
	Category *controller.CategoryController
	Review   *controller.ReviewController
	Favorite *controller.FavoriteController
	User     *controller.UserController
	Badge    *controller.BadgeController
	Admin    *controller.AdminController
	Health   *controller.HealthController
}

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.WikiConfig,
	tokens middleware.TokenParser,
	enforcer middleware.Authorizer,
	ctrls Controllers,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")
	router := gin.New()

	// 顺序: 追踪 -> panic 恢复 -> 访问日志 (需要 TraceID) -> 超时
	router.Use(otelgin.Middleware(constant.ServiceName))
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	v1 := router.Group("/api/v1")
	RegisterAPIRoutes(v1, ctrls, middleware.JWTAuth(tokens, logger.Logger()), middleware.RequireRole(enforcer, logger.Logger()))
	logger.Info("所有控制器路由已注册到 /api/v1 分组")

	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}

// RegisterAPIRoutes 把控制器挂到 /api/v1 分组。
// auth 校验登录，requireAdmin 在 auth 之后校验 admin 角色。
func RegisterAPIRoutes(v1 *gin.RouterGroup, ctrls Controllers, auth, requireAdmin gin.HandlerFunc) {
	ctrls.Auth.RegisterRoutes(v1, auth)
	ctrls.Listing.RegisterRoutes(v1, auth)
	ctrls.Category.RegisterRoutes(v1)
	ctrls.Review.RegisterRoutes(v1, auth)
	ctrls.Favorite.RegisterRoutes(v1, auth)
	ctrls.User.RegisterRoutes(v1)
	ctrls.Badge.RegisterRoutes(v1, auth)
	ctrls.Admin.RegisterRoutes(v1, auth, requireAdmin)
	ctrls.Health.RegisterRoutes(v1)
}
