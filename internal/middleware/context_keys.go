package middleware

import (
	"context"

	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// identityKey is the key used to store the authenticated caller in the request context.
// Using a custom type prevents collisions.
const identityKey = contextKey("identity")

// GetIdentityFromContext retrieves the authenticated caller from the Gin context.
// It returns the identity and a boolean indicating if it was found.
func GetIdentityFromContext(c *gin.Context) (domain.Identity, bool) {
	if val, exists := c.Get(string(identityKey)); exists {
		identity, ok := val.(domain.Identity)
		return identity, ok
	}
	return IdentityFromCtx(c.Request.Context())
}

// IdentityFromCtx retrieves the authenticated caller from a standard context.
func IdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity stores the caller in both the Gin context and the request context.
func WithIdentity(c *gin.Context, identity domain.Identity) {
	c.Set(string(identityKey), identity)
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), identityKey, identity))
}
