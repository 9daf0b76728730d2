package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/domain"
	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

// ScheduleHandler holds the schedule service dependency.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// List returns every schedule owned by the authenticated user.
func (h *ScheduleHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	schedules, err := h.scheduleService.List(c.Request.Context(), identity.ID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	if schedules == nil {
		schedules = []domain.WorkoutSchedule{}
	}
	c.JSON(http.StatusOK, schedules)
}

// Create places a workout on the calendar.
func (h *ScheduleHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var schedule domain.WorkoutSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		abortWithError(c, http.StatusBadRequest, "Schedule data is required: "+err.Error())
		return
	}
	created, err := h.scheduleService.Create(c.Request.Context(), identity.ID, schedule)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, created)
}

// Delete removes the schedule named in the request body.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		abortWithError(c, http.StatusBadRequest, "Schedule ID is required for deletion")
		return
	}
	if err := h.scheduleService.Delete(c.Request.Context(), identity.ID, req.ID); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, nil)
}
