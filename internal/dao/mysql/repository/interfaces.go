// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"
	"time"

	"pet_diary_server/internal/model"
	"pet_diary_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// FindByID 根据 ID 查找用户
	FindByID(id uint) (*model.User, error)
	// FindByIDs 批量根据 ID 查找用户
	FindByIDs(ids []uint) ([]model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
	// Update 更新用户信息
	Update(user *model.User) error
}

// GroupRepository 家庭组数据访问接口
type GroupRepository interface {
	// FindByID 根据 ID 查找组
	FindByID(id uint) (*model.Group, error)
	// Create 创建新组
	Create(group *model.Group) error
}

// MemberWithUser 带用户信息的成员投影，JOIN users 表得到
type MemberWithUser struct {
	UserID      uint   `gorm:"column:user_id"`
	Username    string `gorm:"column:username"`
	Email       string `gorm:"column:email"`
	RoleInGroup string `gorm:"column:role_in_group"`
}

// UserGroupRepository 组成员数据访问接口
// 成员记录是所有资源的授权边界
type UserGroupRepository interface {
	// FindByGroupAndUser 查找某用户在某组的成员记录
	FindByGroupAndUser(groupID, userID uint) ([]model.UserGroup, error)
	// FindByUserID 查找用户加入的所有组
	FindByUserID(userID uint) ([]model.UserGroup, error)
	// FindMembersWithUser 查找组成员（含用户基本信息）
	FindMembersWithUser(groupID uint) ([]MemberWithUser, error)
	// ExistsByGroupAndUser 检查用户是否已是组成员
	ExistsByGroupAndUser(groupID, userID uint) (bool, error)
	// Create 添加组成员
	Create(member *model.UserGroup) error
}

// PetRepository 宠物数据访问接口
type PetRepository interface {
	// FindByID 根据 ID 查找宠物
	FindByID(id uint) (*model.Pet, error)
	// FindByGroupID 查找组内所有宠物
	FindByGroupID(groupID uint) ([]model.Pet, error)
	// Create 创建宠物
	Create(pet *model.Pet) error
	// Update 更新宠物信息
	Update(pet *model.Pet) error
	// SoftDeleteByID 软删除宠物
	SoftDeleteByID(id uint) error
}

// TagRepository 标签数据访问接口
type TagRepository interface {
	// FindByID 根据 ID 查找标签
	FindByID(id uint) (*model.Tag, error)
	// FindByGroupID 查找组内所有标签
	FindByGroupID(groupID uint) ([]model.Tag, error)
	// Create 创建标签
	Create(tag *model.Tag) error
}

// ScheduleRepository 日程数据访问接口
type ScheduleRepository interface {
	// FindByID 根据 ID 查找日程
	FindByID(id uint) (*model.Schedule, error)
	// Create 创建日程
	Create(schedule *model.Schedule) error
	// Update 更新日程
	Update(schedule *model.Schedule) error
	// SoftDeleteByID 软删除日程
	SoftDeleteByID(id uint) error
}

// DiseaseRepository 疾病记录数据访问接口
type DiseaseRepository interface {
	// FindByID 根据 ID 查找疾病记录
	FindByID(id uint) (*model.Disease, error)
	// FindByPetID 查找宠物的所有疾病记录，按发病日期倒序
	FindByPetID(petID uint) ([]model.Disease, error)
	// ExistsByPetIDAndName 检查宠物是否已有同名有效疾病记录
	ExistsByPetIDAndName(petID uint, name string) (bool, error)
	// Create 创建疾病记录
	Create(disease *model.Disease) error
	// Update 更新疾病记录
	Update(disease *model.Disease) error
	// SoftDeleteByID 软删除疾病记录
	SoftDeleteByID(id uint) error
}

// MonitoringRepository 日常监测数据访问接口
type MonitoringRepository interface {
	// FindByID 根据 ID 查找监测记录
	FindByID(id uint) (*model.Monitoring, error)
	// FindByPetIDAndDateBetween 查找宠物在日期区间（闭区间）内的监测记录
	FindByPetIDAndDateBetween(petID uint, start, end time.Time) ([]model.Monitoring, error)
	// Create 创建监测记录
	Create(monitoring *model.Monitoring) error
	// Update 更新监测记录
	Update(monitoring *model.Monitoring) error
	// SoftDeleteByID 软删除监测记录
	SoftDeleteByID(id uint) error
}

// RecordRepository 日记数据访问接口
type RecordRepository interface {
	// FindByID 根据 ID 查找日记
	FindByID(id uint) (*model.Record, error)
	// FindPublicPage 分页查找所有公开日记，按创建时间倒序
	FindPublicPage(page, pageSize int) ([]model.Record, int64, error)
	// FindPublicPageByPetID 分页查找某宠物的公开日记
	FindPublicPageByPetID(petID uint, page, pageSize int) ([]model.Record, int64, error)
	// FindByPetIDAndCreatedBetween 查找宠物在 [from, to) 内创建的日记，按创建时间倒序
	FindByPetIDAndCreatedBetween(petID uint, from, to time.Time) ([]model.Record, error)
	// Create 创建日记
	Create(record *model.Record) error
	// Update 更新日记
	Update(record *model.Record) error
	// SoftDeleteByID 软删除日记
	SoftDeleteByID(id uint) error
}

// RecordFileRepository 日记附件数据访问接口
type RecordFileRepository interface {
	// FindByRecordID 查找日记的所有附件
	FindByRecordID(recordID uint) ([]model.RecordFile, error)
	// Create 创建附件记录
	Create(file *model.RecordFile) error
	// SoftDeleteByRecordID 软删除日记的所有附件
	SoftDeleteByRecordID(recordID uint) error
}
