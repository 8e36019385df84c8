package controller

import (
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/service"
)

// CategoryController 分类
type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories 启用的分类，按排序值升序
// @Summary      分类列表
// @Tags         categories (分类)
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "查询成功"
// @Router       /api/v1/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "分类不存在", "查询分类失败")
		return
	}
	response.RespondSuccess(c, categories, "查询分类成功")
}

// GetCategory 分类详情及其下已通过的工具
// @Summary      分类详情
// @Tags         categories (分类)
// @Produce      json
// @Param        slug path string true "分类 slug"
// @Success      200 {object} vo.CategoryDetailResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/v1/categories/{slug} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	detail, err := ctrl.categoryService.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "分类不存在", "查询分类详情失败")
		return
	}
	response.RespondSuccess(c, detail, "查询分类详情成功")
}

// GetCategoryStats 分类统计
// @Summary      分类统计
// @Description  已通过工具数量和平均评分 (两位小数)
// @Tags         categories (分类)
// @Produce      json
// @Param        slug path string true "分类 slug"
// @Success      200 {object} vo.CategoryStatsResponseWrapper "查询成功"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Router       /api/v1/categories/{slug}/stats [get]
func (ctrl *CategoryController) GetCategoryStats(c *gin.Context) {
	stats, err := ctrl.categoryService.GetCategoryStats(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "分类不存在", "查询分类统计失败")
		return
	}
	response.RespondSuccess(c, stats, "查询分类统计成功")
}

// RegisterRoutes 注册 CategoryController 的路由，全部公开
func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup) {
	categories := group.Group("/categories")
	{
		categories.GET("", ctrl.ListCategories)
		categories.GET("/:slug", ctrl.GetCategory)
		categories.GET("/:slug/stats", ctrl.GetCategoryStats)
	}
}
