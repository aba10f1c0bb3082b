// Package repository 提供数据访问层的具体实现
// 本文件实现 TagRepository 接口，处理标签相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// tagRepository TagRepository 接口的实现
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository 创建 TagRepository 实例
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindByID 根据 ID 查找标签
func (r *tagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询标签 id=%d", id)
	}
	return &tag, nil
}

// FindByGroupID 查找组内所有标签
func (r *tagRepository) FindByGroupID(groupID uint) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Where("group_id = ?", groupID).Find(&tags).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询组内标签 group_id=%d", groupID)
	}
	return tags, nil
}

// Create 创建标签
func (r *tagRepository) Create(tag *model.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		return wrapDBError(err, "创建标签")
	}
	return nil
}
