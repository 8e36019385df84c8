package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/wiki_service/middleware"
	"github.com/Xushengqwer/wiki_service/myErrors"
)

// clientErrors 可以直接把错误信息返回给调用方的业务错误，统一映射为 400
var clientErrors = []error{
	myErrors.ErrAccountTaken,
	myErrors.ErrUsernameTaken,
	myErrors.ErrInvalidUsername,
	myErrors.ErrInvalidCategory,
	myErrors.ErrAlreadyModerated,
	myErrors.ErrReasonRequired,
	myErrors.ErrInvalidRating,
	myErrors.ErrDuplicateReview,
	myErrors.ErrDuplicateFavorite,
	myErrors.ErrBadgeAlreadyOwned,
	myErrors.ErrInsufficientPoints,
	myErrors.ErrEmptyQuery,
	myErrors.ErrLogoTooLarge,
	myErrors.ErrInvalidLogoType,
}

// respondServiceError 把服务层错误映射为 HTTP 状态码
func respondServiceError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, notFoundMsg)
	case errors.Is(err, myErrors.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, err.Error())
	case errors.Is(err, myErrors.ErrUserBanned):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, err.Error())
	case errors.Is(err, myErrors.ErrStorageDisabled):
		response.RespondError(c, http.StatusServiceUnavailable, response.ErrCodeServerInternal, err.Error())
	case isClientError(err):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	default:
		_ = c.Error(err)
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, internalMsg)
	}
}

func isClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondCreated 与 response.RespondSuccess 相同的响应体，状态码为 201
func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": message,
		"data":    data,
	})
}

// parseUintParam 解析路径参数，失败时已写入 400 响应
func parseUintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 参数")
		return 0, false
	}
	return id, true
}

// requireUserID 读取当前登录用户，缺失时已写入 401 响应
func requireUserID(c *gin.Context) (uint64, bool) {
	id, ok := middleware.CurrentUserID(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "未登录")
		return 0, false
	}
	return id, true
}

func bindErrorMessage(prefix string, err error) string {
	return prefix + ": " + err.Error()
}
