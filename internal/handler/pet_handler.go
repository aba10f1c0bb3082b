// Package handler 提供 HTTP 请求处理器
// 本文件处理宠物相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
)

// PetHandler 宠物请求处理器
type PetHandler struct {
	petSvc service.PetService
}

// NewPetHandler 创建宠物处理器实例
func NewPetHandler(petSvc service.PetService) *PetHandler {
	return &PetHandler{petSvc: petSvc}
}

// CreatePet 在家庭组下创建宠物
// POST /api/v1/groups/:groupId/pets
// 请求体: request.CreatePetRequest
// 响应: respond.PetRespond
func (h *PetHandler) CreatePet(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.petSvc.CreatePet(groupID, req, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetPet 获取宠物信息
// GET /api/v1/pets/:petId
// 响应: respond.PetRespond
func (h *PetHandler) GetPet(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.petSvc.GetPet(petID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ModifyPet 修改宠物信息
// PUT /api/v1/pets/:petId
// 请求体: request.ModifyPetRequest
func (h *PetHandler) ModifyPet(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}
	var req request.ModifyPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.petSvc.ModifyPet(petID, req, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeletePet 删除宠物
// DELETE /api/v1/pets/:petId
func (h *PetHandler) DeletePet(c *gin.Context) {
	petID, err := parseUintParam(c, "petId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	if err := h.petSvc.DeletePet(petID, username); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetPets 获取家庭组内所有宠物
// GET /api/v1/groups/:groupId/pets
// 响应: []respond.PetRespond
func (h *PetHandler) GetPets(c *gin.Context) {
	groupID, err := parseUintParam(c, "groupId")
	if err != nil {
		HandleError(c, err)
		return
	}

	username := c.GetString(middleware.CtxUsername)
	data, err := h.petSvc.GetPets(groupID, username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
