// Package repository 提供数据访问层的具体实现
// 本文件实现 UserGroupRepository 接口，处理组成员相关的数据库操作
package repository

import (
	"pet_diary_server/internal/model"

	"gorm.io/gorm"
)

// userGroupRepository UserGroupRepository 接口的实现
type userGroupRepository struct {
	db *gorm.DB
}

// NewUserGroupRepository 创建 UserGroupRepository 实例
func NewUserGroupRepository(db *gorm.DB) UserGroupRepository {
	return &userGroupRepository{db: db}
}

// FindByGroupAndUser 查找某用户在某组的成员记录
// 授权检查的基础查询：结果为空说明用户不是组成员
func (r *userGroupRepository) FindByGroupAndUser(groupID, userID uint) ([]model.UserGroup, error) {
	var members []model.UserGroup
	if err := r.db.Where("group_id = ? AND user_id = ?", groupID, userID).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询组成员 group_id=%d user_id=%d", groupID, userID)
	}
	return members, nil
}

// FindByUserID 查找用户加入的所有组
func (r *userGroupRepository) FindByUserID(userID uint) ([]model.UserGroup, error) {
	var members []model.UserGroup
	if err := r.db.Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户所在组 user_id=%d", userID)
	}
	return members, nil
}

// FindMembersWithUser 查询组成员详细信息（包含用户基本资料）
// 通过 JOIN 查询关联用户表获取用户名和邮箱
func (r *userGroupRepository) FindMembersWithUser(groupID uint) ([]MemberWithUser, error) {
	var members []MemberWithUser
	// 使用 LEFT JOIN 关联 users 表
	if err := r.db.Table("user_groups").
		Select("users.id as user_id, users.username, users.email, user_groups.role_in_group").
		Joins("LEFT JOIN users ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ? AND user_groups.deleted_at IS NULL AND users.deleted_at IS NULL", groupID).
		Scan(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询组成员详情 group_id=%d", groupID)
	}
	return members, nil
}

// ExistsByGroupAndUser 检查用户是否已是组成员
func (r *userGroupRepository) ExistsByGroupAndUser(groupID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.UserGroup{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询组成员是否存在 group_id=%d user_id=%d", groupID, userID)
	}
	return count > 0, nil
}

// Create 添加组成员
func (r *userGroupRepository) Create(member *model.UserGroup) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建组成员")
	}
	return nil
}
