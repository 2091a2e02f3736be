package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeetAtGit/ReportVerse/internal/app/models"
	"github.com/GeetAtGit/ReportVerse/internal/app/models/dto"
	"github.com/GeetAtGit/ReportVerse/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// AuthMiddleware resolves bearer credentials and enforces role scoping
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and stores the caller's identity on the
// request context. Missing, malformed and expired tokens all answer 401.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// RoleRequired rejects callers whose role does not match. JWTAuth must have
// run first on the route group.
func (m *AuthMiddleware) RoleRequired(requiredRole models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ctxRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("you don't have permission for this operation"))
			return
		}

		c.Next()
	}
}

// CallerFromContext rebuilds the authenticated caller stored by JWTAuth
func CallerFromContext(c *gin.Context) (models.UserRef, bool) {
	userID, ok := c.Get(ctxUserID)
	if !ok {
		return models.UserRef{}, false
	}
	id, ok := userID.(int64)
	if !ok {
		return models.UserRef{}, false
	}

	caller := models.UserRef{ID: id}
	if email, ok := c.Get(ctxEmail); ok {
		caller.Email, _ = email.(string)
	}
	if role, ok := c.Get(ctxRole); ok {
		if roleStr, ok := role.(string); ok {
			caller.Role = models.Role(roleStr)
		}
	}

	return caller, true
}
