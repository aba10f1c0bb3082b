// Package handler 提供 HTTP 请求处理器
// 本文件处理家庭组相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// GroupHandler 家庭组请求处理器
type GroupHandler struct {
	groupSvc service.GroupService
}

// NewGroupHandler 创建家庭组处理器实例
func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

// CreateGroup 创建家庭组
// POST /api/v1/groups
// 请求体: request.CreateGroupRequest
// 响应: respond.GroupRespond
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.groupSvc.CreateGroup(req, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// InviteMember 邀请用户加入家庭组
// POST /api/v1/groups/:groupId/invite
// 请求体: request.InviteMemberRequest
func (h *GroupHandler) InviteMember(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.groupSvc.InviteMember(groupID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetMyGroups 获取当前用户加入的所有家庭组
// GET /api/v1/groups
// 响应: []respond.GroupRespond
func (h *GroupHandler) GetMyGroups(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)
	data, err := h.groupSvc.GetMyGroups(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMembers 获取家庭组成员列表
// GET /api/v1/groups/:groupId/users
// 响应: []respond.MemberRespond
func (h *GroupHandler) GetMembers(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.groupSvc.GetMembers(groupID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
