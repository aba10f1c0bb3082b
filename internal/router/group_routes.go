package router

import (
	"github.com/gin-gonic/gin"
)

// registerGroupRoutes 注册家庭组相关路由
// 组下的宠物和标签路由也挂在 /groups 前缀下
func (rt *Router) registerGroupRoutes(api *gin.RouterGroup) {
	groups := api.Group("/groups")
	{
		groups.POST("", rt.handlers.Group.CreateGroup)
		groups.GET("", rt.handlers.Group.GetMyGroups)
		groups.POST("/:groupId/invite", rt.handlers.Group.InviteMember)
		groups.GET("/:groupId/users", rt.handlers.Group.GetMembers)

		groups.POST("/:groupId/pets", rt.handlers.Pet.CreatePet)
		groups.GET("/:groupId/pets", rt.handlers.Pet.GetPets)

		groups.POST("/:groupId/tags", rt.handlers.Tag.CreateTag)
		groups.GET("/:groupId/tags", rt.handlers.Tag.GetTags)
	}
}
