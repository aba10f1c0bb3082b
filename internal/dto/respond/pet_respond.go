package respond

// PetRespond 宠物信息响应
// 使用位置:
//   - internal/service/pet/service.go: CreatePet, GetPet, ModifyPet, GetPets
type PetRespond struct {
	PetId    uint   `json:"pet_id"`
	GroupId  uint   `json:"group_id"`
	Name     string `json:"name"`
	Species  string `json:"species"`
	Sex      int8   `json:"sex"`
	Birthday string `json:"birthday"` // yyyy-mm-dd，未设置为空
}
