package model

import (
	"time"

	"gorm.io/gorm"
)

// Schedule 日程，如疫苗接种、医院复诊
type Schedule struct {
	gorm.Model
	UserID      uint       `gorm:"column:user_id;index;not null;comment:创建者用户id"`
	PetID       uint       `gorm:"column:pet_id;index;not null;comment:宠物id"`
	TagID       uint       `gorm:"column:tag_id;index;comment:标签id"`
	Category    string     `gorm:"column:category;type:varchar(20);comment:分类"`
	Title       string     `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Body        string     `gorm:"column:body;type:varchar(500);comment:内容"`
	AssigneeID  uint       `gorm:"column:assignee_id;comment:负责人用户id"`
	Place       string     `gorm:"column:place;type:varchar(100);comment:地点"`
	IsCompleted bool       `gorm:"column:is_completed;default:false;comment:是否完成"`
	DueDate     *time.Time `gorm:"column:due_date;type:datetime;comment:预定时间"`
}

func (Schedule) TableName() string {
	return "schedules"
}
