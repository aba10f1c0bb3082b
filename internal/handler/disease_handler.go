// Package handler 提供 HTTP 请求处理器
// 本文件处理疾病记录相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// DiseaseHandler 疾病记录请求处理器
type DiseaseHandler struct {
	diseaseSvc service.DiseaseService
}

// NewDiseaseHandler 创建疾病记录处理器实例
func NewDiseaseHandler(diseaseSvc service.DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{diseaseSvc: diseaseSvc}
}

// CreateDisease 创建疾病记录
// POST /api/v1/pets/:petId/diseases
// 请求体: request.CreateDiseaseRequest
func (h *DiseaseHandler) CreateDisease(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateDiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.diseaseSvc.CreateDisease(petID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ModifyDisease 修改疾病记录
// PUT /api/v1/pets/:petId/diseases/:diseaseId
// 请求体: request.ModifyDiseaseRequest
func (h *DiseaseHandler) ModifyDisease(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	diseaseID, err := parseUintParam(c, "diseaseId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.ModifyDiseaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.diseaseSvc.ModifyDisease(petID, diseaseID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteDisease 删除疾病记录
// DELETE /api/v1/pets/:petId/diseases/:diseaseId
func (h *DiseaseHandler) DeleteDisease(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	diseaseID, err := parseUintParam(c, "diseaseId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.diseaseSvc.DeleteDisease(petID, diseaseID, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetDisease 获取疾病记录
// GET /api/v1/pets/:petId/diseases/:diseaseId
// 响应: respond.DiseaseRespond
func (h *DiseaseHandler) GetDisease(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	diseaseID, err := parseUintParam(c, "diseaseId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.diseaseSvc.GetDisease(petID, diseaseID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetDiseases 获取宠物所有疾病记录
// GET /api/v1/pets/:petId/diseases
// 响应: []respond.DiseaseRespond，按发病日期倒序
func (h *DiseaseHandler) GetDiseases(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.diseaseSvc.GetDiseases(petID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
