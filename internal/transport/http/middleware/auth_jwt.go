package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"timetable-api/internal/core/auth"
)

// gin 上下文里的身份信息 key
const (
	KeyClaims = "claims"
	KeyUserID = "userId"
	KeyRole   = "role"
	KeyEmail  = "email"
)

// AuthJWT 访问守卫：只做认证（验签 + 有效期），角色检查交给下游
//
// 缺头/格式不对 → 401 Not authorized；验签失败或过期 → 401 Token invalid。
// 两种情况下请求都不会到达受保护的 handler。
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token invalid"})
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Set(KeyEmail, claims.Email)
		c.Next()
	}
}

// RequireAction 能力检查：在 AuthJWT 之后挂，按 CanAccess 策略放行
func RequireAction(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		if !auth.CanAccess(claims, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}
		c.Next()
	}
}

func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(KeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
