package model

import "gorm.io/gorm"

// UserGroup 用户-家庭组成员关联表
// 两个实体只有在请求者对所属 Group 存在有效成员记录时才互相可见
type UserGroup struct {
	gorm.Model
	UserID      uint   `gorm:"column:user_id;index;not null;comment:用户id"`
	GroupID     uint   `gorm:"column:group_id;index;not null;comment:组id"`
	RoleInGroup string `gorm:"column:role_in_group;type:varchar(20);comment:组内称呼，如爸爸/妈妈"`
}

func (UserGroup) TableName() string {
	return "user_groups"
}
