package model

import (
	"time"

	"gorm.io/gorm"
)

// Monitoring 日常监测记录，按天记录宠物状态
type Monitoring struct {
	gorm.Model
	PetID    uint      `gorm:"column:pet_id;index;not null;comment:宠物id"`
	Date     time.Time `gorm:"column:date;type:date;index;not null;comment:记录日期"`
	Weight   float64   `gorm:"column:weight;comment:体重(kg)"`
	FeedGram int       `gorm:"column:feed_gram;comment:进食量(g)"`
	WalkCnt  int       `gorm:"column:walk_cnt;comment:散步次数"`
	UrineCnt int       `gorm:"column:urine_cnt;comment:排尿次数"`
	PooCnt   int       `gorm:"column:poo_cnt;comment:排便次数"`
	Vomit    bool      `gorm:"column:vomit;default:false;comment:是否呕吐"`
	Notes    string    `gorm:"column:notes;type:varchar(500);comment:备注"`
}

func (Monitoring) TableName() string {
	return "monitorings"
}
