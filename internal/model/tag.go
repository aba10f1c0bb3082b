package model

import "gorm.io/gorm"

// Tag 组内标签，用于给日程和日记分类
type Tag struct {
	gorm.Model
	GroupID uint   `gorm:"column:group_id;index;not null;comment:所属组id"`
	Name    string `gorm:"column:name;type:varchar(20);not null;comment:标签名"`
}

func (Tag) TableName() string {
	return "tags"
}
