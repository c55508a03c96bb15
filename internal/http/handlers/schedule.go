package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/pagination"
	"github.com/claon/claon-admin/internal/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
	pages           *pagination.Factory
}

func NewScheduleHandler(scheduleService services.ScheduleService, pages *pagination.Factory) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, pages: pages}
}

func (sh *ScheduleHandler) FindSchedulesByCenter(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	params, ok := pageParams(c, sh.pages)
	if !ok {
		return
	}
	out, err := sh.scheduleService.FindSchedulesByCenter(requestDBC(c), subject, c.Param("center_id"), params)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (sh *ScheduleHandler) FindSchedule(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	out, err := sh.scheduleService.FindSchedule(requestDBC(c), subject, c.Param("center_id"), c.Param("schedule_id"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (sh *ScheduleHandler) CreateSchedule(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req services.ScheduleInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := sh.scheduleService.CreateSchedule(requestDBC(c), subject, c.Param("center_id"), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (sh *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	var req services.ScheduleInput
	if !bindJSON(c, &req) {
		return
	}
	out, err := sh.scheduleService.UpdateSchedule(requestDBC(c), subject, c.Param("center_id"), c.Param("schedule_id"), req)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (sh *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	subject, ok := subjectOf(c)
	if !ok {
		return
	}
	if err := sh.scheduleService.DeleteSchedule(requestDBC(c), subject, c.Param("center_id"), c.Param("schedule_id")); err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
