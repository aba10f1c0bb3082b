// Package repository 提供数据访问层的具体实现
// 本文件实现 DiseaseRepository 接口，处理疾病记录相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// diseaseRepository DiseaseRepository 接口的实现
type diseaseRepository struct {
	db *gorm.DB
}

// NewDiseaseRepository 创建 DiseaseRepository 实例
func NewDiseaseRepository(db *gorm.DB) DiseaseRepository {
	return &diseaseRepository{db: db}
}

// FindByID 根据 ID 查找疾病记录
func (r *diseaseRepository) FindByID(id uint) (*model.Disease, error) {
	var disease model.Disease
	if err := r.db.First(&disease, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询疾病记录 id=%d", id)
	}
	return &disease, nil
}

// FindByPetID 查找宠物的所有疾病记录，按发病日期倒序
func (r *diseaseRepository) FindByPetID(petID uint) ([]model.Disease, error) {
	var diseases []model.Disease
	if err := r.db.Where("pet_id = ?", petID).
		Order("started_at DESC").
		Find(&diseases).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询宠物疾病记录 pet_id=%d", petID)
	}
	return diseases, nil
}

// ExistsByPetIDAndName 检查同一宠物下是否已存在同名疾病记录
// 软删除的记录不计入，同名可重建
func (r *diseaseRepository) ExistsByPetIDAndName(petID uint, name string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Disease{}).
		Where("pet_id = ? AND name = ?", petID, name).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询疾病名称是否存在 pet_id=%d name=%s", petID, name)
	}
	return count > 0, nil
}

// Create 创建疾病记录
func (r *diseaseRepository) Create(disease *model.Disease) error {
	if err := r.db.Create(disease).Error; err != nil {
		return wrapDBError(err, "创建疾病记录")
	}
	return nil
}

// Update 更新疾病记录
func (r *diseaseRepository) Update(disease *model.Disease) error {
	if err := r.db.Save(disease).Error; err != nil {
		return wrapDBErrorf(err, "更新疾病记录 id=%d", disease.ID)
	}
	return nil
}

// SoftDeleteByID 软删除疾病记录
func (r *diseaseRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.Disease{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除疾病记录 id=%d", id)
	}
	return nil
}
