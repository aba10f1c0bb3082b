// Package handler 提供 HTTP 请求处理器
// 本文件处理通知推送的 WebSocket 接入
package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/service/notify"
	"pet_diary_server/pkg/errorx"
	"pet_diary_server/pkg/util/jwt"
)

// WsHandler WebSocket 接入处理器
type WsHandler struct {
	gateway *notify.Gateway
}

// NewWsHandler 创建 WebSocket 处理器实例
func NewWsHandler(gateway *notify.Gateway) *WsHandler {
	return &WsHandler{gateway: gateway}
}

// Notify 建立通知推送连接
// GET /api/v1/ws/notify?token=<access token>
// 浏览器 WebSocket API 无法自定义 Header，token 放在查询参数，
// 也兼容 Authorization Header
func (h *WsHandler) Notify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}
	}
	if token == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "请先登录"))
		return
	}

	claims, err := jwt.ParseToken(token)
	if err != nil {
		HandleError(c, err)
		return
	}
	if claims.Subject != "access_token" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "请使用 Access Token 建立连接"))
		return
	}

	h.gateway.Register(c, claims.Username)
}
