package router

import (
	"github.com/gin-gonic/gin"
)

// registerPetRoutes 注册宠物相关路由
func (rt *Router) registerPetRoutes(api *gin.RouterGroup) {
	pets := api.Group("/pets")
	{
		pets.GET("/:petId", rt.handlers.Pet.GetPet)
		pets.PUT("/:petId", rt.handlers.Pet.ModifyPet)
		pets.DELETE("/:petId", rt.handlers.Pet.DeletePet)
	}
}
