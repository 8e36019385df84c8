package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/service"
)

// ReviewController 工具评价
type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// ListByListing 工具的有效评价，最新在前
// @Summary      工具评价列表
// @Tags         reviews (评价)
// @Produce      json
// @Param        listingId path uint64 true "工具 ID"
// @Success      200 {object} vo.ReviewListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "ID 无效"
// @Router       /api/v1/reviews/listing/{listingId} [get]
func (ctrl *ReviewController) ListByListing(c *gin.Context) {
	listingID, ok := parseUintParam(c, "listingId")
	if !ok {
		return
	}
	reviews, err := ctrl.reviewService.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "查询评价失败")
		return
	}
	response.RespondSuccess(c, reviews, "查询评价成功")
}

// CreateReview 发表评价
// @Summary      发表评价
// @Description  评分 1 到 5。每个用户对同一工具只能评价一次，成功后获得积分。
// @Tags         reviews (评价)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReviewRequest true "评价内容"
// @Success      201 {object} vo.ReviewResponseWrapper "发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效或已经评价过"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "工具不存在"
// @Router       /api/v1/reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的评价", err))
		return
	}
	review, err := ctrl.reviewService.CreateReview(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "工具不存在", "发表评价失败")
		return
	}
	respondCreated(c, review, "评价发表成功")
}

// UpdateReview 修改自己的评价
// @Summary      修改评价
// @Tags         reviews (评价)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "评价 ID"
// @Param        request body dto.UpdateReviewRequest true "需要修改的字段"
// @Success      200 {object} vo.ReviewResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效"
// @Failure      404 {object} vo.BaseResponseWrapper "评价不存在或不属于当前用户"
// @Router       /api/v1/reviews/{id} [put]
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的评价", err))
		return
	}
	review, err := ctrl.reviewService.UpdateReview(c.Request.Context(), userID, reviewID, &req)
	if err != nil {
		respondServiceError(c, err, "评价不存在", "修改评价失败")
		return
	}
	response.RespondSuccess(c, review, "修改评价成功")
}

// DeleteReview 删除自己的评价 (软删除)
// @Summary      删除评价
// @Tags         reviews (评价)
// @Produce      json
// @Security     BearerAuth
// @Param        id path uint64 true "评价 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "评价不存在或不属于当前用户"
// @Router       /api/v1/reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.reviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		respondServiceError(c, err, "评价不存在", "删除评价失败")
		return
	}
	response.RespondSuccess[any](c, nil, "删除评价成功")
}

// RegisterRoutes 注册 ReviewController 的路由
func (ctrl *ReviewController) RegisterRoutes(group *gin.RouterGroup, auth gin.HandlerFunc) {
	reviews := group.Group("/reviews")
	{
		reviews.GET("/listing/:listingId", ctrl.ListByListing)
		reviews.POST("", auth, ctrl.CreateReview)
		reviews.PUT("/:id", auth, ctrl.UpdateReview)
		reviews.DELETE("/:id", auth, ctrl.DeleteReview)
	}
}
