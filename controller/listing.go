package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/service"
)

// ListingController 工具目录
type ListingController struct {
	listingService service.ListingService
}

func NewListingController(listingService service.ListingService) *ListingController {
	return &ListingController{listingService: listingService}
}

// ListListings 已通过的工具列表
// @Summary      工具列表
// @Description  只返回已通过且启用的工具。分类 slug 不存在时返回空列表。
// @Tags         listings (工具)
// @Produce      json
// @Param        category query string false "分类 slug，不存在时不过滤"
// @Param        order query string false "排序" Enums(recent, top-rated, most-used) default(most-used)
// @Param        limit query int false "返回数量，最大 100" default(50)
// @Success      200 {object} vo.ListingListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/listings [get]
func (ctrl *ListingController) ListListings(c *gin.Context) {
	var req dto.ListListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的查询参数", err))
		return
	}
	listings, err := ctrl.listingService.ListListings(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "查询工具列表失败")
		return
	}
	response.RespondSuccess(c, listings, "查询工具列表成功")
}

// GetListing 工具详情，同时增加一次使用计数
// @Summary      工具详情
// @Tags         listings (工具)
// @Produce      json
// @Param        id path uint64 true "工具 ID"
// @Success      200 {object} vo.ListingResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "ID 无效"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在或未通过审核"
// @Router       /api/v1/listings/{id} [get]
func (ctrl *ListingController) GetListing(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	listing, err := ctrl.listingService.GetListing(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "获取工具详情失败")
		return
	}
	response.RespondSuccess(c, listing, "获取工具详情成功")
}

// CreateListing 提交新工具，进入待审核
// @Summary      提交工具
// @Tags         listings (工具)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateListingRequest true "工具信息"
// @Success      201 {object} vo.ListingResponseWrapper "提交成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效或分类不存在"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Router       /api/v1/listings [post]
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的工具信息", err))
		return
	}
	listing, err := ctrl.listingService.CreateListing(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "提交工具失败")
		return
	}
	respondCreated(c, listing, "工具已提交，等待审核")
}

// ListMine 我提交的工具
// @Summary      我的工具
// @Tags         listings (工具)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.ListingListResponseWrapper "查询成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Router       /api/v1/listings/mine [get]
func (ctrl *ListingController) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	listings, err := ctrl.listingService.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "查询我的工具失败")
		return
	}
	response.RespondSuccess(c, listings, "查询我的工具成功")
}

// Search 按名称或描述搜索
// @Summary      搜索工具
// @Tags         listings (工具)
// @Produce      json
// @Param        q query string true "关键词"
// @Success      200 {object} vo.ListingListResponseWrapper "搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "关键词为空"
// @Router       /api/v1/listings/search [get]
func (ctrl *ListingController) Search(c *gin.Context) {
	var req dto.SearchListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("搜索关键词不能为空", err))
		return
	}
	listings, err := ctrl.listingService.Search(c.Request.Context(), req.Q)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "搜索工具失败")
		return
	}
	response.RespondSuccess(c, listings, "搜索成功")
}

// UploadLogo 上传工具 logo
// @Summary      上传 logo
// @Description  multipart 表单字段 file，仅支持图片，默认不超过 2MB。返回公开访问地址，提交工具时填入 logo_url。
// @Tags         listings (工具)
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "logo 图片"
// @Success      200 {object} vo.LogoUploadResponseWrapper "上传成功"
// @Failure      400 {object} vo.BaseResponseWrapper "文件缺失、类型错误或过大"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      503 {object} vo.BaseResponseWrapper "对象存储未配置"
// @Failure      500 {object} vo.BaseResponseWrapper "上传失败"
// @Router       /api/v1/listings/logo [post]
func (ctrl *ListingController) UploadLogo(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("缺少上传文件", err))
		return
	}
	res, err := ctrl.listingService.UploadLogo(c.Request.Context(), userID, file)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "上传 logo 失败")
		return
	}
	response.RespondSuccess(c, res, "上传 logo 成功")
}

// RegisterRoutes 注册 ListingController 的路由
func (ctrl *ListingController) RegisterRoutes(group *gin.RouterGroup, auth gin.HandlerFunc) {
	listings := group.Group("/listings")
	{
		listings.GET("", ctrl.ListListings)
		listings.GET("/search", ctrl.Search)
		listings.GET("/mine", auth, ctrl.ListMine)
		listings.POST("", auth, ctrl.CreateListing)
		listings.POST("/logo", auth, ctrl.UploadLogo)
		listings.GET("/:id", ctrl.GetListing)
	}
}
