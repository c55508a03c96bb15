package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/ctxutil"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			response.AbortAPIError(c, apierr.Unauthorized(apierr.CodeNotSignIn, "sign in required"))
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
		if err != nil {
			response.AbortAPIError(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireCenterAdmin must run after RequireAuth.
func (am *AuthMiddleware) RequireCenterAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil {
			response.AbortAPIError(c, apierr.Unauthorized(apierr.CodeNotSignIn, "sign in required"))
			return
		}
		if types.Role(rd.Role) != types.RoleCenterAdmin {
			response.AbortAPIError(c, apierr.Unauthorized(apierr.CodeNotAccessible, "not a center administrator"))
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
