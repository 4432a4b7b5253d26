package auth

import (
	"net/textproto"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movies-backend/internal/shared/response"
	"movies-backend/pkg/jwt"
	"movies-backend/pkg/logger"
)

const claimsContextKey = "claims"

var canonicalAPIKeyHeader = textproto.CanonicalMIMEHeaderKey(APIKeyHeaderName)

// ClaimsMiddleware parses the bearer token, if any, into a ClaimSet on
// the gin context. A missing or invalid token leaves the claim set
// empty; whether empty claims are acceptable is decided per route by
// RequireTier, not here.
func ClaimsMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimSet{}

		authHeader := c.GetHeader("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && parts[0] == "Bearer" {
			parsed, err := manager.Validate(parts[1])
			if err != nil {
				logger.Debug("discarding invalid bearer token")
			} else {
				if parsed.UserID != "" {
					claims[UserIDClaimName] = parsed.UserID
				}
				if parsed.Admin != "" {
					claims[AdminClaimName] = parsed.Admin
				}
				if parsed.TrustedMember != "" {
					claims[TrustedMemberClaimName] = parsed.TrustedMember
				}
			}
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireTier rejects the request unless the authorizer allows it for
// the given tier. On Allow the (possibly augmented) claim set is stored
// back so handlers see the synthetic identity from the API key path.
func RequireTier(authorizer *Authorizer, tier Tier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey, hasAPIKey := "", false
		if values, ok := c.Request.Header[canonicalAPIKeyHeader]; ok && len(values) > 0 {
			apiKey, hasAPIKey = values[0], true
		}

		rc := &RequestContext{
			Claims:    ClaimsFromContext(c),
			APIKey:    apiKey,
			HasAPIKey: hasAPIKey,
		}

		if authorizer.Authorize(tier, rc) != Allow {
			response.Unauthorized(c, "You are not authorized to perform this action")
			c.Abort()
			return
		}

		c.Set(claimsContextKey, rc.Claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claim set stored by ClaimsMiddleware,
// or an empty set when none is present.
func ClaimsFromContext(c *gin.Context) ClaimSet {
	if v, exists := c.Get(claimsContextKey); exists {
		if claims, ok := v.(ClaimSet); ok {
			return claims
		}
	}
	return ClaimSet{}
}

// UserID extracts the acting user's id from the claim set. Returns nil
// when the caller is anonymous or the claim is not a valid uuid.
func UserID(c *gin.Context) *uuid.UUID {
	claims := ClaimsFromContext(c)
	id, err := uuid.Parse(claims[UserIDClaimName])
	if err != nil {
		return nil
	}
	return &id
}
