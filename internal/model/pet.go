package model

import (
	"time"

	"gorm.io/gorm"
)

// Pet 宠物档案，归属于唯一的 Group
type Pet struct {
	gorm.Model
	GroupID  uint       `gorm:"column:group_id;index;not null;comment:所属组id"`
	Name     string     `gorm:"column:name;type:varchar(30);not null;comment:宠物名"`
	Species  string     `gorm:"column:species;type:varchar(20);comment:物种，如犬/猫"`
	Sex      int8       `gorm:"column:sex;comment:性别，0.雄，1.雌，2.绝育雄，3.绝育雌"`
	Birthday *time.Time `gorm:"column:birthday;type:date;comment:生日"`
}

func (Pet) TableName() string {
	return "pets"
}
