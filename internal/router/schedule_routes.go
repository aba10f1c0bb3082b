package router

import (
	"github.com/gin-gonic/gin"
)

// registerScheduleRoutes 注册日程相关路由
// 删除日程只需日程 id，不挂在宠物路径下
func (rt *Router) registerScheduleRoutes(api *gin.RouterGroup) {
	api.POST("/pets/:petId/schedules", rt.handlers.Schedule.CreateSchedule)
	api.PUT("/pets/:petId/schedules/:scheduleId", rt.handlers.Schedule.ModifySchedule)
	api.GET("/pets/:petId/schedules/:scheduleId", rt.handlers.Schedule.GetSchedule)
	api.DELETE("/schedules/:scheduleId", rt.handlers.Schedule.DeleteSchedule)
}
