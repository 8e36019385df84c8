package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/service"
)

// AdminController 管理后台接口，路由层已经校验 admin 角色
type AdminController struct {
	adminService service.AdminService
}

func NewAdminController(adminService service.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// DashboardStats 后台统计
// @Summary      后台统计 (管理员)
// @Description  活跃用户数、各状态工具数、访问总量 (已通过工具的使用次数之和) 和有效评价数
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.DashboardStatsResponseWrapper "查询成功"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Router       /api/v1/admin/stats [get]
func (ctrl *AdminController) DashboardStats(c *gin.Context) {
	stats, err := ctrl.adminService.DashboardStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "数据不存在", "查询统计失败")
		return
	}
	response.RespondSuccess(c, stats, "查询统计成功")
}

// ListPending 待审核工具，最早提交的在前
// @Summary      待审核列表 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.ListingListResponseWrapper "查询成功"
// @Router       /api/v1/admin/listings/pending [get]
func (ctrl *AdminController) ListPending(c *gin.Context) {
	listings, err := ctrl.adminService.ListPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "工具不存在", "查询待审核工具失败")
		return
	}
	response.RespondSuccess(c, listings, "查询待审核工具成功")
}

// Approve 审核通过，作者获得积分
// @Summary      审核通过 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "工具 ID"
// @Success      200 {object} vo.ModerationResultResponseWrapper "审核成功"
// @Failure      400 {object} vo.BaseResponseWrapper "工具已审核过"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在"
// @Router       /api/v1/admin/listings/{id}/approve [put]
func (ctrl *AdminController) Approve(c *gin.Context) {
	ctrl.moderate(c, true, "")
}

// Reject 审核拒绝，必须填写原因
// @Summary      审核拒绝 (管理员)
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "工具 ID"
// @Param        request body dto.RejectListingRequest true "拒绝原因"
// @Success      200 {object} vo.ModerationResultResponseWrapper "审核成功"
// @Failure      400 {object} vo.BaseResponseWrapper "缺少原因或工具已审核过"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在"
// @Router       /api/v1/admin/listings/{id}/reject [put]
func (ctrl *AdminController) Reject(c *gin.Context) {
	var req dto.RejectListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("必须填写拒绝原因", err))
		return
	}
	ctrl.moderate(c, false, req.Reason)
}

func (ctrl *AdminController) moderate(c *gin.Context, approved bool, reason string) {
	moderatorID, ok := requireUserID(c)
	if !ok {
		return
	}
	listingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	result, err := ctrl.adminService.Moderate(c.Request.Context(), dto.ModerationDecision{
		ListingID:   listingID,
		ModeratorID: moderatorID,
		Approved:    approved,
		Reason:      reason,
	})
	if err != nil {
		respondServiceError(c, err, "工具不存在", "审核工具失败")
		return
	}
	response.RespondSuccess(c, result, "审核成功")
}

// ChangeCategory 修改工具分类
// @Summary      修改工具分类 (管理员)
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "工具 ID"
// @Param        request body dto.ChangeCategoryRequest true "新分类"
// @Success      200 {object} vo.BaseResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在"
// @Router       /api/v1/admin/listings/{id}/category [put]
func (ctrl *AdminController) ChangeCategory(c *gin.Context) {
	listingID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的请求", err))
		return
	}
	if err := ctrl.adminService.ChangeCategory(c.Request.Context(), listingID, req.CategoryID); err != nil {
		respondServiceError(c, err, "工具不存在", "修改分类失败")
		return
	}
	response.RespondSuccess[any](c, nil, "修改分类成功")
}

// ListListings 按条件分页查询工具
// @Summary      按条件列出工具 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Param        status query int false "状态 (0=待审核, 1=已通过, 2=已拒绝)" Enums(0, 1, 2)
// @Param        name query string false "名称 (模糊匹配)"
// @Param        category_id query uint64 false "分类 ID"
// @Param        author_id query uint64 false "作者 ID"
// @Param        order_by query string false "排序字段" Enums(created_at, usage_count, average_rating, name) default(created_at)
// @Param        order_desc query bool false "是否降序" default(false)
// @Param        page query int false "页码 (从 1 开始)" default(1)
// @Param        page_size query int false "每页数量" default(10)
// @Success      200 {object} vo.ListListingsAdminResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效"
// @Router       /api/v1/admin/listings [get]
func (ctrl *AdminController) ListListings(c *gin.Context) {
	var req dto.ListListingsByConditionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的查询参数", err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.OrderBy == "" {
		req.OrderBy = "created_at"
	}

	result, err := ctrl.adminService.ListListingsByCondition(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "查询工具失败")
		return
	}
	response.RespondSuccess(c, *result, "查询工具成功")
}

// ListUsers 所有用户，积分降序
// @Summary      用户列表 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.AdminUserListResponseWrapper "查询成功"
// @Router       /api/v1/admin/users [get]
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "用户不存在", "查询用户失败")
		return
	}
	response.RespondSuccess(c, users, "查询用户成功")
}

// BanUser 封禁用户
// @Summary      封禁用户 (管理员)
// @Tags         admin (管理员)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "用户 ID"
// @Param        request body dto.BanUserRequest false "封禁原因"
// @Success      200 {object} vo.BaseResponseWrapper "已封禁"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/admin/users/{id}/ban [put]
func (ctrl *AdminController) BanUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.BanUserRequest
	// 请求体可以为空
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的请求", err))
			return
		}
	}
	if err := ctrl.adminService.BanUser(c.Request.Context(), userID, req.Reason); err != nil {
		respondServiceError(c, err, "用户不存在", "封禁用户失败")
		return
	}
	response.RespondSuccess[any](c, nil, "用户已封禁")
}

// UnbanUser 解除封禁
// @Summary      解除封禁 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "用户 ID"
// @Success      200 {object} vo.BaseResponseWrapper "已解除封禁"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/admin/users/{id}/unban [put]
func (ctrl *AdminController) UnbanUser(c *gin.Context) {
	userID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.adminService.UnbanUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err, "用户不存在", "解除封禁失败")
		return
	}
	response.RespondSuccess[any](c, nil, "已解除封禁")
}

// ModerationHistory 审核记录
// @Summary      审核记录 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "返回数量 (默认 50)" minimum(1) maximum(100)
// @Success      200 {object} vo.ModerationHistoryResponseWrapper "查询成功"
// @Router       /api/v1/admin/history [get]
func (ctrl *AdminController) ModerationHistory(c *gin.Context) {
	var req dto.LimitRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的查询参数", err))
		return
	}
	history, err := ctrl.adminService.ModerationHistory(c.Request.Context(), req.GetLimit(dto.DefaultHistoryLimit))
	if err != nil {
		respondServiceError(c, err, "记录不存在", "查询审核记录失败")
		return
	}
	response.RespondSuccess(c, history, "查询审核记录成功")
}

// RecentActivity 全站最近动态
// @Summary      最近动态 (管理员)
// @Tags         admin (管理员)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.ActivityListResponseWrapper "查询成功"
// @Router       /api/v1/admin/activity [get]
func (ctrl *AdminController) RecentActivity(c *gin.Context) {
	activity, err := ctrl.adminService.RecentActivity(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "动态不存在", "查询最近动态失败")
		return
	}
	response.RespondSuccess(c, activity, "查询最近动态成功")
}

// RegisterRoutes 注册 AdminController 的路由，guards 依次为登录校验和角色校验
func (ctrl *AdminController) RegisterRoutes(group *gin.RouterGroup, guards ...gin.HandlerFunc) {
	admin := group.Group("/admin", guards...)
	{
		admin.GET("/stats", ctrl.DashboardStats)
		admin.GET("/listings", ctrl.ListListings)
		admin.GET("/listings/pending", ctrl.ListPending)
		admin.PUT("/listings/:id/approve", ctrl.Approve)
		admin.PUT("/listings/:id/reject", ctrl.Reject)
		admin.PUT("/listings/:id/category", ctrl.ChangeCategory)
		admin.GET("/users", ctrl.ListUsers)
		admin.PUT("/users/:id/ban", ctrl.BanUser)
		admin.PUT("/users/:id/unban", ctrl.UnbanUser)
		admin.GET("/history", ctrl.ModerationHistory)
		admin.GET("/activity", ctrl.RecentActivity)
	}
}
