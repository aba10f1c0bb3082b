package model

import "gorm.io/gorm"

// RecordFile 日记附件，记录原始文件名与对象存储中的访问地址
type RecordFile struct {
	gorm.Model
	RecordID       uint   `gorm:"column:record_id;index;not null;comment:所属日记id"`
	UploadFileName string `gorm:"column:upload_file_name;type:varchar(255);not null;comment:原始文件名"`
	StoredFileURL  string `gorm:"column:stored_file_url;type:varchar(500);not null;comment:存储地址"`
}

func (RecordFile) TableName() string {
	return "record_files"
}
