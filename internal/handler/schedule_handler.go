// Package handler 提供 HTTP 请求处理器
// 本文件处理日程相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// ScheduleHandler 日程请求处理器
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler 创建日程处理器实例
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// CreateSchedule 创建日程
// POST /api/v1/pets/:petId/schedules
// 请求体: request.CreateScheduleRequest
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.scheduleSvc.CreateSchedule(petID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ModifySchedule 修改日程
// PUT /api/v1/pets/:petId/schedules/:scheduleId
// 请求体: request.ModifyScheduleRequest
func (h *ScheduleHandler) ModifySchedule(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	scheduleID, err := parseUintParam(c, "scheduleId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.ModifyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.scheduleSvc.ModifySchedule(petID, scheduleID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteSchedule 删除日程
// DELETE /api/v1/schedules/:scheduleId
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	scheduleID, err := parseUintParam(c, "scheduleId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.scheduleSvc.DeleteSchedule(scheduleID, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetSchedule 获取日程详情
// GET /api/v1/pets/:petId/schedules/:scheduleId
// 响应: respond.GetScheduleRespond
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	scheduleID, err := parseUintParam(c, "scheduleId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.scheduleSvc.GetSchedule(petID, scheduleID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
