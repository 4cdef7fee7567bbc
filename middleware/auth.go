package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticator is the part of services.AuthService the guard needs.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's Identity on the context for the handlers behind it.
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "Please log in first!")
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, services.ErrUnauthorized) {
				utils.AbortJSONError(c, http.StatusUnauthorized, "Session expired or invalid, please log in again")
				return
			}
			_ = c.Error(err)
			utils.AbortJSONError(c, http.StatusInternalServerError, "Failed to verify session")
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by RequireAuth.
func CurrentIdentity(c *gin.Context) (*services.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*services.Identity)
	return id, ok && id != nil
}
