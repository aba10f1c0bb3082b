// Package repository 提供 Repository 层聚合与构造
package repository

import (
	"gorm.io/gorm"
)

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db         *gorm.DB
	User       UserRepository
	Group      GroupRepository
	UserGroup  UserGroupRepository
	Pet        PetRepository
	Tag        TagRepository
	Schedule   ScheduleRepository
	Disease    DiseaseRepository
	Monitoring MonitoringRepository
	Record     RecordRepository
	RecordFile RecordFileRepository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		User:       NewUserRepository(db),
		Group:      NewGroupRepository(db),
		UserGroup:  NewUserGroupRepository(db),
		Pet:        NewPetRepository(db),
		Tag:        NewTagRepository(db),
		Schedule:   NewScheduleRepository(db),
		Disease:    NewDiseaseRepository(db),
		Monitoring: NewMonitoringRepository(db),
		Record:     NewRecordRepository(db),
		RecordFile: NewRecordFileRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
