// Package repository 提供数据访问层的具体实现
// 本文件实现 RecordFileRepository 接口，处理日记附件相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// recordFileRepository RecordFileRepository 接口的实现
type recordFileRepository struct {
	db *gorm.DB
}

// NewRecordFileRepository 创建 RecordFileRepository 实例
func NewRecordFileRepository(db *gorm.DB) RecordFileRepository {
	return &recordFileRepository{db: db}
}

// FindByRecordID 查找日记的所有附件
func (r *recordFileRepository) FindByRecordID(recordID uint) ([]model.RecordFile, error) {
	var files []model.RecordFile
	if err := r.db.Where("record_id = ?", recordID).Find(&files).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询日记附件 record_id=%d", recordID)
	}
	return files, nil
}

// Create 创建附件记录
func (r *recordFileRepository) Create(file *model.RecordFile) error {
	if err := r.db.Create(file).Error; err != nil {
		return wrapDBError(err, "创建附件记录")
	}
	return nil
}

// SoftDeleteByRecordID 软删除日记的所有附件记录
func (r *recordFileRepository) SoftDeleteByRecordID(recordID uint) error {
	if err := r.db.Where("record_id = ?", recordID).Delete(&model.RecordFile{}).Error; err != nil {
		return wrapDBErrorf(err, "删除日记附件 record_id=%d", recordID)
	}
	return nil
}
