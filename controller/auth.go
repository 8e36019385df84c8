package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/models/dto"
	"github.com/Xushengqwer/wiki_service/service"
)

// AuthController 注册、登录和个人资料
type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register 注册新用户
// @Summary      注册
// @Description  用户名、邮箱和密码 (至少 6 位) 必填。邮箱或用户名重复返回 400。成功返回令牌和用户信息。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} vo.AuthResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效或账号已存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的注册信息", err))
		return
	}

	res, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "用户不存在", "注册失败")
		return
	}
	respondCreated(c, res, "注册成功")
}

// Login 邮箱密码登录
// @Summary      登录
// @Description  凭证错误返回 401，账号被封禁返回 403 并附带原因。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} vo.AuthResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效"
// @Failure      401 {object} vo.BaseResponseWrapper "邮箱或密码错误"
// @Failure      403 {object} vo.BaseResponseWrapper "账号已被封禁"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的登录信息", err))
		return
	}

	res, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "用户不存在", "登录失败")
		return
	}
	response.RespondSuccess(c, res, "登录成功")
}

// GetProfile 当前用户的个人资料
// @Summary      获取个人资料
// @Tags         auth (认证)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} vo.ProfileResponseWrapper "获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "用户不存在"
// @Router       /api/v1/auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	profile, err := ctrl.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "用户不存在", "获取个人资料失败")
		return
	}
	response.RespondSuccess(c, profile, "获取个人资料成功")
}

// UpdateProfile 修改用户名、简介或头像
// @Summary      更新个人资料
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpdateProfileRequest true "需要修改的字段"
// @Success      200 {object} vo.ProfileResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数无效或用户名已被占用"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Router       /api/v1/auth/profile [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, bindErrorMessage("无效的资料", err))
		return
	}

	profile, err := ctrl.authService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err, "用户不存在", "更新个人资料失败")
		return
	}
	response.RespondSuccess(c, profile, "更新个人资料成功")
}

// RegisterRoutes 注册 AuthController 的路由，auth 为登录校验中间件
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup, auth gin.HandlerFunc) {
	authGroup := group.Group("/auth")
	{
		authGroup.POST("/register", ctrl.Register)          // POST /api/v1/auth/register
		authGroup.POST("/login", ctrl.Login)                // POST /api/v1/auth/login
		authGroup.GET("/profile", auth, ctrl.GetProfile)    // GET /api/v1/auth/profile
		authGroup.PUT("/profile", auth, ctrl.UpdateProfile) // PUT /api/v1/auth/profile
	}
}
