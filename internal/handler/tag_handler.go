// Package handler 提供 HTTP 请求处理器
// 本文件处理标签相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// TagHandler 标签请求处理器
type TagHandler struct {
	tagSvc service.TagService
}

// NewTagHandler 创建标签处理器实例
func NewTagHandler(tagSvc service.TagService) *TagHandler {
	return &TagHandler{tagSvc: tagSvc}
}

// CreateTag 在家庭组下创建标签
// POST /api/v1/groups/:groupId/tags
// 请求体: request.CreateTagRequest
// 响应: respond.TagRespond
func (h *TagHandler) CreateTag(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.tagSvc.CreateTag(groupID, req, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetTags 获取家庭组内所有标签
// GET /api/v1/groups/:groupId/tags
// 响应: []respond.TagRespond
func (h *TagHandler) GetTags(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.tagSvc.GetTags(groupID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
