package router

import (
	"github.com/gin-gonic/gin"
)

// registerMonitoringRoutes 注册日常监测相关路由
func (rt *Router) registerMonitoringRoutes(api *gin.RouterGroup) {
	api.POST("/pets/:petId/monitorings", rt.handlers.Monitoring.CreateMonitoring)
	api.GET("/pets/:petId/monitorings", rt.handlers.Monitoring.GetMonthlyMonitorings)
	api.GET("/pets/:petId/monitorings/:monitoringId", rt.handlers.Monitoring.GetMonitoring)
	api.PUT("/pets/:petId/monitorings/:monitoringId", rt.handlers.Monitoring.ModifyMonitoring)
	api.DELETE("/pets/:petId/monitorings/:monitoringId", rt.handlers.Monitoring.DeleteMonitoring)
}
