package devserver

import (
	"strings"

	"github.com/gin-gonic/gin"

	"zanara/internal/config"
	"zanara/pkg/apperrors"
)

const (
	ctxUserID    = "user_id"
	ctxProfileID = "profile_id"
)

// AuthMiddleware validates the bearer token and stores the caller's ids in
// the request context.
func AuthMiddleware(cfg *config.Config, store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			respondError(c, apperrors.NewUnauthorizedError("missing authorization header"))
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			respondError(c, apperrors.NewUnauthorizedError("malformed authorization header"))
			return
		}
		claims, err := ParseToken(cfg, parts[1])
		if err != nil {
			respondError(c, apperrors.NewUnauthorizedError("invalid or expired token"))
			return
		}
		user, err := store.UserByID(claims.UserID)
		if err != nil {
			respondError(c, apperrors.NewUnauthorizedError("account no longer exists"))
			return
		}
		c.Set(ctxUserID, user.ID)
		c.Set(ctxProfileID, user.ProfileID)
		c.Next()
	}
}
