// Package repository 提供数据访问层的具体实现
// 本文件实现 RecordRepository 接口，处理日记相关的数据库操作
package repository

import (
	"time"

	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// recordRepository RecordRepository 接口的实现
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建 RecordRepository 实例
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// FindByID 根据 ID 查找日记
func (r *recordRepository) FindByID(id uint) (*model.Record, error) {
	var record model.Record
	if err := r.db.First(&record, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询日记 id=%d", id)
	}
	return &record, nil
}

// FindPublicPage 分页查询公开日记，按创建时间倒序
// 返回当前页数据及公开日记总数
func (r *recordRepository) FindPublicPage(page, pageSize int) ([]model.Record, int64, error) {
	var records []model.Record
	var total int64
	if err := r.db.Model(&model.Record{}).
		Where("is_public = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计公开日记数量")
	}
	if err := r.db.Where("is_public = ?", true).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询公开日记 page=%d", page)
	}
	return records, total, nil
}

// FindPublicPageByPetID 分页查询某宠物的公开日记，按创建时间倒序
func (r *recordRepository) FindPublicPageByPetID(petID uint, page, pageSize int) ([]model.Record, int64, error) {
	var records []model.Record
	var total int64
	if err := r.db.Model(&model.Record{}).
		Where("is_public = ? AND pet_id = ?", true, petID).
		Count(&total).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "统计宠物公开日记数量 pet_id=%d", petID)
	}
	if err := r.db.Where("is_public = ? AND pet_id = ?", true, petID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, wrapDBErrorf(err, "查询宠物公开日记 pet_id=%d page=%d", petID, page)
	}
	return records, total, nil
}

// FindByPetIDAndCreatedBetween 查询宠物在时间区间 [from, to) 内创建的日记，按创建时间倒序
func (r *recordRepository) FindByPetIDAndCreatedBetween(petID uint, from, to time.Time) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.Where("pet_id = ? AND created_at >= ? AND created_at < ?", petID, from, to).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询宠物日记 pet_id=%d", petID)
	}
	return records, nil
}

// Create 创建日记
func (r *recordRepository) Create(record *model.Record) error {
	if err := r.db.Create(record).Error; err != nil {
		return wrapDBError(err, "创建日记")
	}
	return nil
}

// Update 更新日记
func (r *recordRepository) Update(record *model.Record) error {
	if err := r.db.Save(record).Error; err != nil {
		return wrapDBErrorf(err, "更新日记 id=%d", record.ID)
	}
	return nil
}

// SoftDeleteByID 软删除日记
func (r *recordRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.Record{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除日记 id=%d", id)
	}
	return nil
}
