package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/service"
)

// UserController 公开的用户信息
type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Ranking 积分排行榜
// @Summary      用户排行榜
// @Description  按累计积分降序，只包含启用且未封禁的用户
// @Tags         users (用户)
// @Produce      json
// @Param        limit query int false "返回数量 (默认 10)" minimum(1) maximum(100)
// @Success      200 {object} vo.RankingResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效"
// @Router       /api/v1/users/ranking [get]
func (ctrl *UserController) Ranking(c *gin.Context) {
	var req dto.LimitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的查询参数", err))
		return
	}
	ranking, err := ctrl.userService.Ranking(c.Request.Context(), req.GetLimit(dto.DefaultRankingLimit))
	if err != nil {
		respondServiceError(c, err, "用户不存在", "查询排行榜失败")
		return
	}
	response.RespondSuccess(c, ranking, "查询排行榜成功")
}

// PublicProfile 用户公开主页
// @Summary      用户主页
// @Tags         users (用户)
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {object} vo.PublicProfileResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/users/{username} [get]
func (ctrl *UserController) PublicProfile(c *gin.Context) {
	profile, err := ctrl.userService.PublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "用户不存在", "查询用户主页失败")
		return
	}
	response.RespondSuccess(c, profile, "查询用户主页成功")
}

// Listings 用户提交并已通过的工具
// @Summary      用户的工具
// @Tags         users (用户)
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {object} vo.ListingListResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/users/{username}/listings [get]
func (ctrl *UserController) Listings(c *gin.Context) {
	listings, err := ctrl.userService.ListingsByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondServiceError(c, err, "用户不存在", "查询用户工具失败")
		return
	}
	response.RespondSuccess(c, listings, "查询用户工具成功")
}

// Activity 用户最近的积分动态
// @Summary      用户动态
// @Tags         users (用户)
// @Produce      json
// @Param        username path string true "用户名"
// @Param        limit query int false "返回数量 (默认 20)" minimum(1) maximum(100)
// @Success      200 {object} vo.ActivityListResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/users/{username}/activity [get]
func (ctrl *UserController) Activity(c *gin.Context) {
	var req dto.LimitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的查询参数", err))
		return
	}
	activity, err := ctrl.userService.ActivityByUsername(c.Request.Context(), c.Param("username"), req.GetLimit(dto.DefaultActivityLimit))
	if err != nil {
		respondServiceError(c, err, "用户不存在", "查询用户动态失败")
		return
	}
	response.RespondSuccess(c, activity, "查询用户动态成功")
}

// RegisterRoutes 注册 UserController 的路由，全部公开
func (ctrl *UserController) RegisterRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	{
		users.GET("/ranking", ctrl.Ranking)
		users.GET("/:username", ctrl.PublicProfile)
		users.GET("/:username/listings", ctrl.Listings)
		users.GET("/:username/activity", ctrl.Activity)
	}
}
