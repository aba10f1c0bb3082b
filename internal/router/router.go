// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/handler"
	"pet_diary_server/internal/infrastructure/middleware"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 全部业务接口挂在 /api/v1 下，除注册/登录/刷新令牌外均需认证
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	rt.registerUserRoutes(api)

	// 需要认证的接口
	authed := api.Group("")
	authed.Use(middleware.JWTAuth())
	{
		rt.registerGroupRoutes(authed)
		rt.registerPetRoutes(authed)
		rt.registerScheduleRoutes(authed)
		rt.registerDiseaseRoutes(authed)
		rt.registerMonitoringRoutes(authed)
		rt.registerRecordRoutes(authed)
	}

	// WebSocket 接入自行校验 token（浏览器无法自定义 Header）
	rt.registerWsRoutes(api)
}
