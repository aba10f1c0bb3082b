package model

import "gorm.io/gorm"

// Group 家庭组，共享宠物的授权边界
type Group struct {
	gorm.Model
	Name    string `gorm:"column:name;type:varchar(30);not null;comment:组名称"`
	OwnerID uint   `gorm:"column:owner_id;index;not null;comment:创建者用户id"`
}

func (Group) TableName() string {
	return "groups"
}
