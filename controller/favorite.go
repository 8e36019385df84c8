package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/models/vo"
	"github.com/Xushengqwer/wiki_service/service"
)

// FavoriteController 收藏
type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// ListFavorites 我的收藏
// @Summary      收藏列表
// @Tags         favorites (收藏)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.FavoriteListResponseWrapper "查询成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Router       /api/v1/favorites [get]
func (ctrl *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	favorites, err := ctrl.favoriteService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "收藏不存在", "查询收藏失败")
		return
	}
	response.RespondSuccess(c, favorites, "查询收藏成功")
}

// AddFavorite 收藏工具
// @Summary      添加收藏
// @Tags         favorites (收藏)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddFavoriteRequest true "工具 ID"
// @Success      201 {object} vo.FavoriteResponseWrapper "收藏成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效或已收藏"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在"
// @Router       /api/v1/favorites [post]
func (ctrl *FavoriteController) AddFavorite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的请求", err))
		return
	}
	favorite, err := ctrl.favoriteService.AddFavorite(c.Request.Context(), userID, req.ListingID)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "添加收藏失败")
		return
	}
	respondCreated(c, favorite, "收藏成功")
}

// RemoveFavorite 取消收藏，重复调用不报错
// @Summary      取消收藏
// @Tags         favorites (收藏)
// @Produce      json
// @Security     BearerAuth
// @Param        listingId path uint64 true "工具 ID"
// @Success      200 {object} vo.BaseResponseWrapper "已取消收藏"
// @Router       /api/v1/favorites/{listingId} [delete]
func (ctrl *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listingID, ok := parseUintParam(c, "listingId")
	if !ok {
		return
	}
	if err := ctrl.favoriteService.RemoveFavorite(c.Request.Context(), userID, listingID); err != nil {
		respondServiceError(c, err, "收藏不存在", "取消收藏失败")
		return
	}
	response.RespondSuccess[any](c, nil, "已取消收藏")
}

// CheckFavorite 是否已收藏
// @Summary      检查收藏
// @Tags         favorites (收藏)
// @Produce      json
// @Security     BearerAuth
// @Param        listingId path uint64 true "工具 ID"
// @Success      200 {object} vo.FavoriteCheckResponseWrapper "查询成功"
// @Router       /api/v1/favorites/check/{listingId} [get]
func (ctrl *FavoriteController) CheckFavorite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listingID, ok := parseUintParam(c, "listingId")
	if !ok {
		return
	}
	isFavorite, err := ctrl.favoriteService.IsFavorite(c.Request.Context(), userID, listingID)
	if err != nil {
		respondServiceError(c, err, "收藏不存在", "检查收藏失败")
		return
	}
	response.RespondSuccess(c, vo.FavoriteCheckVO{IsFavorite: isFavorite}, "查询成功")
}

// RegisterRoutes 注册 FavoriteController 的路由，全部需要登录
func (ctrl *FavoriteController) RegisterRoutes(group *gin.RouterGroup, auth gin.HandlerFunc) {
	favorites := group.Group("/favorites", auth)
	{
		favorites.GET("", ctrl.ListFavorites)
		favorites.POST("", ctrl.AddFavorite)
		favorites.GET("/check/:listingId", ctrl.CheckFavorite)
		favorites.DELETE("/:listingId", ctrl.RemoveFavorite)
	}
}
