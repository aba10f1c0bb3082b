package router

import (
	"github.com/gin-gonic/gin"

	"pet_diary_server/internal/infrastructure/middleware"
)

// registerUserRoutes 注册用户相关路由
func (rt *Router) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")

	// 公开接口（无需认证）
	users.POST("/join", rt.handlers.User.Join)
	users.POST("/login", rt.handlers.User.Login)
	users.POST("/new-token", rt.handlers.User.NewToken)

	// 需要认证的接口
	authed := users.Group("")
	authed.Use(middleware.JWTAuth())
	{
		authed.GET("/me", rt.handlers.User.GetMe)
	}
}
