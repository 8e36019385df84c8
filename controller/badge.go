package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/service"
)

// BadgeController 勋章与等级
type BadgeController struct {
	badgeService service.BadgeService
}

func NewBadgeController(badgeService service.BadgeService) *BadgeController {
	return &BadgeController{badgeService: badgeService}
}

// ListBadges 可兑换的勋章
// @Summary      勋章目录
// @Tags         badges (勋章)
// @Produce      json
// @Success      200 {object} vo.BadgeListResponseWrapper "查询成功"
// @Router       /api/v1/badges [get]
func (ctrl *BadgeController) ListBadges(c *gin.Context) {
	badges, err := ctrl.badgeService.ListBadges(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "勋章不存在", "查询勋章失败")
		return
	}
	response.RespondSuccess(c, badges, "查询勋章成功")
}

// MyBadges 当前用户拥有的勋章
// @Summary      我的勋章
// @Tags         badges (勋章)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.UserBadgeListResponseWrapper "查询成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Router       /api/v1/badges/mine [get]
func (ctrl *BadgeController) MyBadges(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	badges, err := ctrl.badgeService.MyBadges(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "勋章不存在", "查询我的勋章失败")
		return
	}
	response.RespondSuccess(c, badges, "查询我的勋章成功")
}

// Redeem 用可用积分兑换勋章
// @Summary      兑换勋章
// @Description  扣除可用积分，累计积分和等级不变。每种勋章只能拥有一次。
// @Tags         badges (勋章)
// @Produce      json
// @Security     BearerAuth
// @Param        badgeId path uint64 true "勋章 ID"
// @Success      200 {object} vo.RedeemBadgeResponseWrapper "兑换成功"
// @Failure      400 {object} vo.BaseResponseWrapper "积分不足或已拥有"
// @Failure      404 {object} vo.BaseResponseWrapper "勋章不存在"
// @Router       /api/v1/badges/{badgeId}/redeem [post]
func (ctrl *BadgeController) Redeem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	badgeID, ok := parseUintParam(c, "badgeId")
	if !ok {
		return
	}
	result, err := ctrl.badgeService.Redeem(c.Request.Context(), userID, badgeID)
	if err != nil {
		respondServiceError(c, err, "勋章不存在", "兑换勋章失败")
		return
	}
	response.RespondSuccess(c, result, "兑换勋章成功")
}

// ListLevels 等级表
// @Summary      等级列表
// @Tags         badges (勋章)
// @Produce      json
// @Success      200 {object} vo.LevelListResponseWrapper "查询成功"
// @Router       /api/v1/badges/levels [get]
func (ctrl *BadgeController) ListLevels(c *gin.Context) {
	levels, err := ctrl.badgeService.ListLevels(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "等级不存在", "查询等级失败")
		return
	}
	response.RespondSuccess(c, levels, "查询等级成功")
}

// RegisterRoutes 注册 BadgeController 的路由
func (ctrl *BadgeController) RegisterRoutes(group *gin.RouterGroup, auth gin.HandlerFunc) {
	badges := group.Group("/badges")
	{
		badges.GET("", ctrl.ListBadges)
		badges.GET("/levels", ctrl.ListLevels)
		badges.GET("/mine", auth, ctrl.MyBadges)
		badges.POST("/:badgeId/redeem", auth, ctrl.Redeem)
	}
}
