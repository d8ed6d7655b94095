package middleware

import (
	"net/http"
	"strings"

	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/internal/usecase/interfaces"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

// Authenticate validates the bearer token and stores the resulting claims on
// the request context. Requests without a valid token are rejected with 401.
func Authenticate(tokens interfaces.ITokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "authorization header must be a bearer token")
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		SetClaims(c, claims)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated role is
// one of the listed roles.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			abortUnauthorized(c, "missing authentication")
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "insufficient permissions", http.StatusForbidden)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// RequireTenant rejects authenticated requests whose token carries no tenant
// binding. Super admin tokens have no tenant and cannot touch workshop data.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok || claims.TenantID == "" {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "no workshop bound to this account", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SetClaims stores claims on the request context for downstream handlers.
func SetClaims(c *gin.Context, claims entities.Claims) {
	c.Set(claimsContextKey, claims)
}

// ClaimsFrom extracts the authenticated claims stored by Authenticate.
func ClaimsFrom(c *gin.Context) (entities.Claims, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return entities.Claims{}, false
	}
	claims, ok := v.(entities.Claims)
	return claims, ok
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
