package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/libraryapi/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/libraryapi/pkg/errors"
	"github.com/xiebiao/libraryapi/pkg/jwt"
	"github.com/xiebiao/libraryapi/pkg/response"
)

// Context中的键，只保存后续处理需要的用户ID和Token
const (
	ctxUserID      = "user_id"
	ctxAccessToken = "access_token"
)

// AuthMiddleware JWT认证中间件
// 1. 从Authorization: Bearer <token>提取Token
// 2. 检查黑名单（已登出的Token）
// 3. 验证Access Token
// 4. 将用户信息注入Context
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, apperrors.ErrUnauthorized)
			return
		}

		revoked, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			abort(c, err)
			return
		}
		if revoked {
			abort(c, apperrors.New(apperrors.ErrCodeInvalidToken, "Token已失效，请重新登录"))
			return
		}

		claims, err := m.jwtManager.ParseAccessToken(tokenString)
		if err != nil {
			abort(c, err) // ErrTokenExpired、ErrInvalidToken
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxAccessToken, tokenString)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abort(c *gin.Context, err error) {
	response.Error(c, err)
	c.Abort()
}

// GetUserID 当前登录用户ID，未登录返回0
func GetUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

// GetAccessToken 当前请求携带的Access Token（登出时加入黑名单）
func GetAccessToken(c *gin.Context) string {
	return c.GetString(ctxAccessToken)
}
