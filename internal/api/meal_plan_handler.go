package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

// MealPlanHandler holds the meal plan service dependency.
type MealPlanHandler struct {
	mealPlanService service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(mealPlanService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// List returns every meal plan owned by the authenticated user, meals in
// sequence form.
func (h *MealPlanHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	plans, err := h.mealPlanService.List(c.Request.Context(), identity.ID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if plans == nil {
		plans = []domain.MealPlan{}
	}
	c.JSON(http.StatusOK, plans)
}

// Create saves a new meal plan. The meals collection is accepted in either
// wire form; keyed input is flattened before persistence.
func (h *MealPlanHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Meal plan data is required: "+err.Error())
		return
	}
	created, err := h.mealPlanService.Create(c.Request.Context(), identity.ID, plan)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// Update upserts the meal plan addressed by the path id.
func (h *MealPlanHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "Meal Plan ID is required for updates")
		return
	}
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, "Meal plan data is required: "+err.Error())
		return
	}
	updated, err := h.mealPlanService.Update(c.Request.Context(), identity.ID, id, plan)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the meal plan named in the request body.
func (h *MealPlanHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "Meal plan ID is required for deletion")
		return
	}
	if err := h.mealPlanService.Delete(c.Request.Context(), identity.ID, req.ID); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, nil)
}
