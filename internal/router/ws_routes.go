package router

import (
	"github.com/gin-gonic/gin"
)

// registerWsRoutes 注册 WebSocket 路由
func (rt *Router) registerWsRoutes(api *gin.RouterGroup) {
	api.GET("/ws/notify", rt.handlers.Ws.Notify)
}
