package handlers

import (
	"net/http"

	"bengkel_manager/internal/adapter/http/middleware"
	"bengkel_manager/internal/domain/entities"
	"bengkel_manager/pkg"

	"github.com/gin-gonic/gin"
)

// tenantFrom pulls the tenant id off the authenticated claims. Handlers never
// accept a tenant id from the request body or path.
func tenantFrom(c *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok || claims.TenantID == "" {
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "no workshop bound to this account", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return "", false
	}
	return claims.TenantID, true
}

func claimsFrom(c *gin.Context) (entities.Claims, bool) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "missing authentication", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.Claims{}, false
	}
	return claims, true
}
