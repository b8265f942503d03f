package handlers

import (
	"net/http"

	"sushichat/models"

	"github.com/gin-gonic/gin"
)

// NewIntentsHandler exposes the loaded intent catalog. Debug/inspection
// endpoint; the catalog carries no secrets.
func NewIntentsHandler(catalog *models.IntentCatalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog)
	}
}
