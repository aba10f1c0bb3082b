// Package repository 提供数据访问层的具体实现
// 本文件实现 MonitoringRepository 接口，处理日常监测记录相关的数据库操作
package repository

import (
	"time"

	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// monitoringRepository MonitoringRepository 接口的实现
type monitoringRepository struct {
	db *gorm.DB
}

// NewMonitoringRepository 创建 MonitoringRepository 实例
func NewMonitoringRepository(db *gorm.DB) MonitoringRepository {
	return &monitoringRepository{db: db}
}

// FindByID 根据 ID 查找监测记录
func (r *monitoringRepository) FindByID(id uint) (*model.Monitoring, error) {
	var monitoring model.Monitoring
	if err := r.db.First(&monitoring, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询监测记录 id=%d", id)
	}
	return &monitoring, nil
}

// FindByPetIDAndDateBetween 查询宠物在日期区间内的监测记录（闭区间），按日期升序
func (r *monitoringRepository) FindByPetIDAndDateBetween(petID uint, start, end time.Time) ([]model.Monitoring, error) {
	var monitorings []model.Monitoring
	if err := r.db.Where("pet_id = ? AND date BETWEEN ? AND ?", petID, start, end).
		Order("date ASC").
		Find(&monitorings).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询宠物监测记录 pet_id=%d", petID)
	}
	return monitorings, nil
}

// Create 创建监测记录
func (r *monitoringRepository) Create(monitoring *model.Monitoring) error {
	if err := r.db.Create(monitoring).Error; err != nil {
		return wrapDBError(err, "创建监测记录")
	}
	return nil
}

// Update 更新监测记录
func (r *monitoringRepository) Update(monitoring *model.Monitoring) error {
	if err := r.db.Save(monitoring).Error; err != nil {
		return wrapDBErrorf(err, "更新监测记录 id=%d", monitoring.ID)
	}
	return nil
}

// SoftDeleteByID 软删除监测记录
func (r *monitoringRepository) SoftDeleteByID(id uint) error {
	if err := r.db.Delete(&model.Monitoring{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除监测记录 id=%d", id)
	}
	return nil
}
