package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/catalog"
	"github.com/VoloBuilds/super-coach-pro/internal/nutrition"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static exercise and food libraries and the
// nutrition totals computation. None of it requires auth.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Exercises returns the exercise library.
func (h *CatalogHandler) Exercises(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Exercises())
}

// Foods returns the food library.
func (h *CatalogHandler) Foods(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Foods())
}

// totalsRequest is the body of POST /api/nutrition/totals.
type totalsRequest struct {
	Meals []nutrition.Meal `json:"meals"`
}

// Totals computes the aggregate nutrition for a list of meals.
func (h *CatalogHandler) Totals(c *gin.Context) {
	var req totalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Meal data is required: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, nutrition.Total(req.Meals))
}
