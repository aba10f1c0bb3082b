// Package repository 提供数据访问层的具体实现
// 本文件实现 ScheduleRepository 接口，处理日程相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// scheduleRepository ScheduleRepository 接口的实现
type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository 创建 ScheduleRepository 实例
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// FindByID 根据 ID 查找日程
func (r *scheduleRepository) FindByID(id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.First(&schedule, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询日程 id=%d", id)
	}
	return &schedule, nil
}

// Create 创建日程
func (r *scheduleRepository) Create(schedule *model.Schedule) error {
	if err := r.db.Create(schedule).Error; err != nil {
		return wrapDBError(err, "创建日程")
	}
	return nil
}

// Update 更新日程
func (r *scheduleRepository) Update(schedule *model.Schedule) error {
	if err := r.db.Save(schedule).Error; err != nil {
		return wrapDBErrorf(err, "更新日程 id=%d", schedule.ID)
	}
	return nil
}

// SoftDeleteByID 软删除日程
func (r *scheduleRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.Schedule{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除日程 id=%d", id)
	}
	return nil
}
