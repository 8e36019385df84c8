package middleware

import (
	"fmt"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/wiki_service/constant"
)

// AdminPathPattern 管理后台路由前缀
const AdminPathPattern = "/api/v1/admin/*"

// NewEnforcer 构建内存中的 RBAC 策略: admin 可以用任意方法访问管理后台路由
func NewEnforcer() (*casbin.Enforcer, error) {
	m := model.NewModel()
	m.AddDef("r", "r", "sub, obj, act")
	m.AddDef("p", "p", "sub, obj, act")
	m.AddDef("g", "g", "_, _")
	m.AddDef("e", "e", "some(where (p.eft == allow))")
	m.AddDef("m", "m", "g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && methodMatch(r.act, p.act)")

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("创建 casbin enforcer 失败: %w", err)
	}
	e.AddFunction("methodMatch", methodMatchFunc)

	if _, err := e.AddPolicy(constant.RoleAdmin, AdminPathPattern, "ANY"); err != nil {
		return nil, fmt.Errorf("写入 RBAC 策略失败: %w", err)
	}
	return e, nil
}

// methodMatch 策略中的 ANY 匹配所有方法
func methodMatch(requested, allowed string) bool {
	return allowed == "ANY" || requested == allowed
}

func methodMatchFunc(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("methodMatch 需要 2 个参数，实际 %d 个", len(args))
	}
	requested, _ := args[0].(string)
	allowed, _ := args[1].(string)
	return methodMatch(requested, allowed), nil
}

// Authorizer 判断主体能否访问资源
type Authorizer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// RequireRole 以 JWTAuth 写入的角色为主体做 casbin 校验，不通过返回 403。
// 必须放在 JWTAuth 之后。
func RequireRole(enforcer Authorizer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		obj := c.Request.URL.Path
		act := c.Request.Method

		ok, err := enforcer.Enforce(role, obj, act)
		if err != nil {
			logger.Error("RBAC 校验出错", zap.String("role", role), zap.String("path", obj), zap.Error(err))
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "权限校验失败")
			c.Abort()
			return
		}
		if !ok {
			logger.Warn("权限不足", zap.String("role", role), zap.String("path", obj), zap.String("method", act))
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "需要管理员权限")
			c.Abort()
			return
		}
		c.Next()
	}
}
