// Package handler 提供 HTTP 请求处理器
// 本文件处理日记与日记附件相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
	"pet_diary_server/pkg/errorx"
)

// RecordHandler 日记请求处理器
type RecordHandler struct {
	recordSvc     service.RecordService
	recordFileSvc service.RecordFileService
}

// NewRecordHandler 创建日记处理器实例
func NewRecordHandler(recordSvc service.RecordService, recordFileSvc service.RecordFileService) *RecordHandler {
	return &RecordHandler{
		recordSvc:     recordSvc,
		recordFileSvc: recordFileSvc,
	}
}

// GetFeed 公开日记流分页查询
// GET /api/v1/records?page=&pageSize=
// 响应: respond.RecordPageRespond
func (h *RecordHandler) GetFeed(c *gin.Context) {
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "pageSize", 10)

	data, err := h.recordSvc.GetAllRecords(page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPetFeed 某宠物的公开日记分页查询
// GET /api/v1/pets/:petId/records/feed?page=&pageSize=
// 响应: respond.RecordPageRespond
func (h *RecordHandler) GetPetFeed(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	page := parseIntQuery(c, "page", 1)
	pageSize := parseIntQuery(c, "pageSize", 10)

	username := c.GetString(middleware.CtxUsername)
	data, err := h.recordSvc.GetPetAllRecords(petID, page, pageSize, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetOneRecord 获取单篇日记
// GET /api/v1/pets/:petId/records/:recordId
// 响应: respond.RecordRespond
func (h *RecordHandler) GetOneRecord(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	recordID, err := parseUintParam(c, "recordId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.recordSvc.GetOneRecord(petID, recordID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetRecordList 获取宠物在期间内的日记
// GET /api/v1/pets/:petId/records?fromDate=yyyymmdd&toDate=yyyymmdd
// 响应: []respond.RecordRespond，按创建时间倒序
func (h *RecordHandler) GetRecordList(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.recordSvc.GetRecordList(petID, c.Query("fromDate"), c.Query("toDate"), username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CreateRecord 创建日记
// POST /api/v1/pets/:petId/records
// 请求体: request.CreateRecordRequest
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.recordSvc.CreateRecord(petID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ModifyRecord 修改日记
// PUT /api/v1/pets/:petId/records/:recordId
// 请求体: request.ModifyRecordRequest
func (h *RecordHandler) ModifyRecord(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	recordID, err := parseUintParam(c, "recordId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.ModifyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.recordSvc.ModifyRecord(petID, recordID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteRecord 删除日记及其附件
// DELETE /api/v1/records/:recordId
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	recordID, err := parseUintParam(c, "recordId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.recordSvc.DeleteRecord(recordID, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// UploadFiles 批量上传日记附件
// POST /api/v1/pets/:petId/records/:recordId/files
// multipart form，文件字段名为 "files"
// 响应: []respond.RecordFileRespond
func (h *RecordHandler) UploadFiles(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	recordID, err := parseUintParam(c, "recordId")
	if err != nil {
		HandleError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		HandleError(c, errorx.Wrap(err, errorx.CodeInvalidFile, "解析上传表单失败"))
		return
	}

	data, err := h.recordFileSvc.UploadFile(petID, recordID, form.File["files"])
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
