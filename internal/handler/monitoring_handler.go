// Package handler 提供 HTTP 请求处理器
// 本文件处理日常监测相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// MonitoringHandler 日常监测请求处理器
type MonitoringHandler struct {
	monitoringSvc service.MonitoringService
}

// NewMonitoringHandler 创建日常监测处理器实例
func NewMonitoringHandler(monitoringSvc service.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoringSvc: monitoringSvc}
}

// CreateMonitoring 创建监测记录
// POST /api/v1/pets/:petId/monitorings
// 请求体: request.CreateMonitoringRequest
func (h *MonitoringHandler) CreateMonitoring(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateMonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.monitoringSvc.CreateMonitoring(petID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetMonthlyMonitorings 获取某月的监测记录
// GET /api/v1/pets/:petId/monitorings?month=yyyymm
// 响应: []respond.MonitoringRespond，按日期升序
func (h *MonitoringHandler) GetMonthlyMonitorings(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.monitoringSvc.GetMonthlyMonitorings(petID, c.Query("month"), username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ModifyMonitoring 修改监测记录
// PUT /api/v1/pets/:petId/monitorings/:monitoringId
// 请求体: request.ModifyMonitoringRequest
func (h *MonitoringHandler) ModifyMonitoring(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	monitoringID, err := parseUintParam(c, "monitoringId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.ModifyMonitoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.monitoringSvc.ModifyMonitoring(petID, monitoringID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteMonitoring 删除监测记录
// DELETE /api/v1/pets/:petId/monitorings/:monitoringId
func (h *MonitoringHandler) DeleteMonitoring(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	monitoringID, err := parseUintParam(c, "monitoringId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.monitoringSvc.DeleteMonitoring(petID, monitoringID, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetMonitoring 获取监测记录
// GET /api/v1/pets/:petId/monitorings/:monitoringId
// 响应: respond.MonitoringRespond
func (h *MonitoringHandler) GetMonitoring(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	monitoringID, err := parseUintParam(c, "monitoringId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.monitoringSvc.GetMonitoring(petID, monitoringID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
