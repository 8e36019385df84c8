package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
	"github.com/Xushengqwer/wiki_service/security"
)

// TokenParser 校验令牌并返回其中的身份信息
type TokenParser interface {
	Parse(tokenString string) (*security.Claims, error)
}

// JWTAuth 校验 Authorization: Bearer <token>。
// - 缺少令牌返回 401
// - 令牌无效或过期返回 403
// - 通过后把用户 ID、用户名和角色写入 gin.Context
func JWTAuth(tokens TokenParser, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || tokenString == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "未提供访问令牌")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			logger.Debug("令牌校验失败", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "令牌无效或已过期")
			c.Abort()
			return
		}

		c.Set(string(constants.UserIDKey), strconv.FormatUint(claims.UserID, 10))
		c.Set(constant.UsernameKey, claims.Username)
		c.Set(constant.UserRoleKey, claims.Role)
		c.Next()
	}
}

// CurrentUserID 读取鉴权中间件写入的用户 ID
func CurrentUserID(c *gin.Context) (uint64, bool) {
	raw := c.GetString(string(constants.UserIDKey))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// CurrentRole 读取鉴权中间件写入的角色
func CurrentRole(c *gin.Context) string {
	return c.GetString(constant.UserRoleKey)
}
