package router

import (
	"github.com/gin-gonic/gin"
)

// registerDiseaseRoutes 注册疾病记录相关路由
func (rt *Router) registerDiseaseRoutes(api *gin.RouterGroup) {
	api.POST("/pets/:petId/diseases", rt.handlers.Disease.CreateDisease)
	api.GET("/pets/:petId/diseases", rt.handlers.Disease.GetDiseases)
	api.GET("/pets/:petId/diseases/:diseaseId", rt.handlers.Disease.GetDisease)
	api.PUT("/pets/:petId/diseases/:diseaseId", rt.handlers.Disease.ModifyDisease)
	api.DELETE("/pets/:petId/diseases/:diseaseId", rt.handlers.Disease.DeleteDisease)
}
