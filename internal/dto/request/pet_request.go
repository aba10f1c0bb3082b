package request

// CreatePetRequest 创建宠物请求
// 使用位置:
//   - internal/handler/pet_handler.go: CreatePet
//   - internal/service/pet/service.go: CreatePet
type CreatePetRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Species  string `json:"species" binding:"required"`
	Sex      int8   `json:"sex" binding:"gte=0,lte=3"`
	Birthday string `json:"birthday"` // yyyy-mm-dd，可为空
}

// ModifyPetRequest 修改宠物请求
// 使用位置:
//   - internal/handler/pet_handler.go: ModifyPet
//   - internal/service/pet/service.go: ModifyPet
type ModifyPetRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Species  string `json:"species" binding:"required"`
	Sex      int8   `json:"sex" binding:"gte=0,lte=3"`
	Birthday string `json:"birthday"`
}
