package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

// deleteRequest is the body shape for DELETE calls: the record id travels in
// the body, not the path.
type deleteRequest struct {
	ID string `json:"id"`
}

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// List returns every workout owned by the authenticated user.
func (h *WorkoutHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.List(c.Request.Context(), identity.ID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// Create saves a new workout for the authenticated user.
func (h *WorkoutHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var workout domain.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		abortWithError(c, http.StatusBadRequest, "Workout data is required: "+err.Error())
		return
	}
	created, err := h.workoutService.Create(c.Request.Context(), identity.ID, workout)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// Update upserts the workout addressed by the path id. A miss on (id, owner)
// inserts a new record under that id.
func (h *WorkoutHandler) Update(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if id == "" {
		abortWithError(c, http.StatusBadRequest, "Workout ID is required for updates")
		return
	}
	var workout domain.Workout
	if err := c.ShouldBindJSON(&workout); err != nil {
		abortWithError(c, http.StatusBadRequest, "Workout data is required: "+err.Error())
		return
	}
	updated, err := h.workoutService.Update(c.Request.Context(), identity.ID, id, workout)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes the workout named in the request body. Deleting an absent
// id still succeeds.
func (h *WorkoutHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "Workout ID is required for deletion")
		return
	}
	if err := h.workoutService.Delete(c.Request.Context(), identity.ID, req.ID); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, nil)
}
