package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nutriclinic/internal/middleware"
)

// requireTenant pulls the tenant scope set by the auth middleware and
// writes the 401 response itself when it is missing.
func requireTenant(c *gin.Context) (uint, bool) {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Missing tenant scope",
			"error":   "Authentication required",
		})
		return 0, false
	}
	return tenantID, true
}
