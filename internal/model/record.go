package model

import "gorm.io/gorm"

// Record 日记，isPublic 为 true 时进入公开 feed，任何登录用户可读
type Record struct {
	gorm.Model
	UserID   uint   `gorm:"column:user_id;index;not null;comment:作者用户id"`
	PetID    uint   `gorm:"column:pet_id;index;not null;comment:宠物id"`
	TagID    uint   `gorm:"column:tag_id;index;comment:标签id"`
	Title    string `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Body     string `gorm:"column:body;type:varchar(2000);comment:内容"`
	IsPublic bool   `gorm:"column:is_public;index;default:false;comment:是否公开"`
}

func (Record) TableName() string {
	return "records"
}
