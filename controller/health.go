package controller

import (
	"net/http"
	"time"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Xushengqwer/wiki_service/models/vo"
)

// HealthController 存活检查
type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health 检查数据库连接
// @Summary      健康检查
// @Tags         health (健康检查)
// @Produce      json
// @Success      200 {object} vo.HealthResponseWrapper "服务正常"
// @Failure      500 {object} vo.BaseResponseWrapper "数据库不可用"
// @Router       /api/v1/health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		_ = c.Error(err)
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "数据库不可用")
		return
	}
	response.RespondSuccess(c, vo.HealthVO{
		Status:    "OK",
		Message:   "Wiki IA API funcionando",
		Timestamp: time.Now(),
	}, "服务正常")
}

// RegisterRoutes 注册健康检查路由
func (ctrl *HealthController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/health", ctrl.Health)
}
