// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/rc-finance/backend/internal/domain/error"
	"github.com/rc-finance/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// UserIDKey is the context key for the requesting user's ID.
const UserIDKey ContextKey = "user_id"

// UserIDHeader carries the requesting user's UUID. Authentication and
// session handling happen upstream; this service only requires that the
// gateway forwards a valid identity.
const UserIDHeader = "X-User-ID"

// UserMiddleware resolves the requesting user from the identity header.
type UserMiddleware struct{}

// NewUserMiddleware creates a new user middleware instance.
func NewUserMiddleware() *UserMiddleware {
	return &UserMiddleware{}
}

// Identify returns a Gin middleware handler that requires the user
// identity header on every request it guards.
func (m *UserMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: UserIDHeader + " header is required",
				Code:  string(domainerror.ErrCodeMissingUserIdentity),
			})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: UserIDHeader + " header must be a valid UUID",
				Code:  string(domainerror.ErrCodeInvalidUserIdentity),
			})
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), userID)
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}
