// Package repository 提供数据访问层的具体实现
// 本文件实现 PetRepository 接口，处理宠物相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// petRepository PetRepository 接口的实现
type petRepository struct {
	db *gorm.DB
}

// NewPetRepository 创建 PetRepository 实例
func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

// FindByID 根据 ID 查找宠物
func (r *petRepository) FindByID(id uint) (*model.Pet, error) {
	var pet model.Pet
	if err := r.db.First(&pet, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询宠物 id=%d", id)
	}
	return &pet, nil
}

// FindByGroupID 查找组内所有宠物
func (r *petRepository) FindByGroupID(groupID uint) ([]model.Pet, error) {
	var pets []model.Pet
	if err := r.db.Where("group_id = ?", groupID).Find(&pets).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询组内宠物 group_id=%d", groupID)
	}
	return pets, nil
}

// Create 创建宠物
func (r *petRepository) Create(pet *model.Pet) error {
	if err := r.db.Create(pet).Error; err != nil {
		return wrapDBError(err, "创建宠物")
	}
	return nil
}

// Update 更新宠物信息
func (r *petRepository) Update(pet *model.Pet) error {
	if err := r.db.Save(pet).Error; err != nil {
		return wrapDBErrorf(err, "更新宠物 id=%d", pet.ID)
	}
	return nil
}

// SoftDeleteByID 软删除宠物
func (r *petRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.Pet{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除宠物 id=%d", id)
	}
	return nil
}
