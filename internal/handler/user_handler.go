// Package handler 提供 HTTP 请求处理器
// 本文件处理用户注册、登录、令牌刷新相关的 API 请求
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/infrastructure/middleware"
	"pet_diary_server/internal/service"
	"pet_diary_server/pkg/constants"
	"pet_diary_server/pkg/errorx"
)

const refreshCookieName = "refresh_token"

// UserHandler 用户请求处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建用户处理器实例
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// setRefreshCookie 将 Refresh Token 写入安全 Cookie
// HttpOnly 防止脚本读取，SameSite=None + Secure 支持跨站前端
func setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(refreshCookieName, token, int(constants.REFRESH_TOKEN_TTL.Seconds()), "/", "", true, true)
}

// Join 用户注册
// POST /api/v1/users/join
// 请求体: request.JoinRequest
// 响应: respond.JoinRespond
func (h *UserHandler) Join(c *gin.Context) {
	var req request.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	data, err := h.userSvc.Join(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 用户登录
// POST /api/v1/users/login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond，Refresh Token 写入 Cookie
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}

	data, refreshToken, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	setRefreshCookie(c, refreshToken)
	HandleSuccess(c, data)
}

// NewToken 用 Cookie 中的 Refresh Token 换发新令牌对
// POST /api/v1/users/new-token
// 响应: respond.NewTokenRespond，新的 Refresh Token 轮换写入 Cookie
func (h *UserHandler) NewToken(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "缺少 Refresh Token，请重新登录"))
		return
	}

	data, newRefreshToken, err := h.userSvc.GenerateNewToken(refreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	setRefreshCookie(c, newRefreshToken)
	HandleSuccess(c, data)
}

// GetMe 获取当前登录用户信息
// GET /api/v1/users/me
// 响应: respond.GetUserInfoRespond
func (h *UserHandler) GetMe(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)
	data, err := h.userSvc.GetUser(username)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
