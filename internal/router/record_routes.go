package router

import (
	"github.com/gin-gonic/gin"
)

// registerRecordRoutes 注册日记相关路由
// /records 是全站公开日记流；宠物下的 /records/feed 是单只宠物的公开日记
func (rt *Router) registerRecordRoutes(api *gin.RouterGroup) {
	api.GET("/records", rt.handlers.Record.GetFeed)
	api.DELETE("/records/:recordId", rt.handlers.Record.DeleteRecord)

	api.POST("/pets/:petId/records", rt.handlers.Record.CreateRecord)
	api.GET("/pets/:petId/records", rt.handlers.Record.GetRecordList)
	api.GET("/pets/:petId/records/feed", rt.handlers.Record.GetPetFeed)
	api.GET("/pets/:petId/records/:recordId", rt.handlers.Record.GetOneRecord)
	api.PUT("/pets/:petId/records/:recordId", rt.handlers.Record.ModifyRecord)
	api.POST("/pets/:petId/records/:recordId/files", rt.handlers.Record.UploadFiles)
}
