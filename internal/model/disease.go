package model

import (
	"time"

	"gorm.io/gorm"
)

// Disease 疾病记录
// 同一宠物的有效记录中疾病名称不可重复，唯一性在 Service 层校验
// （软删除后允许重新登记同名疾病，因此不能用数据库唯一索引）
type Disease struct {
	gorm.Model
	PetID     uint       `gorm:"column:pet_id;index:idx_pet_disease_name;not null;comment:宠物id"`
	Name      string     `gorm:"column:name;index:idx_pet_disease_name;type:varchar(50);not null;comment:疾病名称"`
	Category  string     `gorm:"column:category;type:varchar(30);comment:分类，如皮肤科"`
	StartedAt *time.Time `gorm:"column:started_at;type:date;comment:发病日期"`
	EndedAt   *time.Time `gorm:"column:ended_at;type:date;comment:痊愈日期"`
}

func (Disease) TableName() string {
	return "diseases"
}
