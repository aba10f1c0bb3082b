// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"mime/multipart"

	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
)

// UserService 用户业务接口
// 处理用户注册、登录、令牌刷新等功能
type UserService interface {
	// Join 用户注册
	Join(req request.JoinRequest) (*respond.JoinRespond, error)
	// Login 密码登录，返回响应体和需要写入 Cookie 的 Refresh Token
	Login(req request.LoginRequest) (*respond.LoginRespond, string, error)
	// GenerateNewToken 用 Refresh Token 换发新的令牌对
	GenerateNewToken(refreshToken string) (*respond.NewTokenRespond, string, error)
	// GetUser 获取用户信息
	GetUser(username string) (*respond.GetUserInfoRespond, error)
}

// GroupService 家庭组业务接口
// 处理家庭组的创建、成员邀请与查询
type GroupService interface {
	// CreateGroup 创建家庭组，创建者自动成为 owner 成员
	CreateGroup(req request.CreateGroupRequest, username string) (*respond.GroupRespond, error)
	// InviteMember 邀请用户加入家庭组（仅成员可操作）
	InviteMember(groupID uint, req request.InviteMemberRequest, username string) error
	// GetMyGroups 获取当前用户加入的所有家庭组
	GetMyGroups(username string) ([]respond.GroupRespond, error)
	// GetMembers 获取家庭组成员列表（仅成员可见）
	GetMembers(groupID uint, username string) ([]respond.MemberRespond, error)
}

// PetService 宠物业务接口
type PetService interface {
	// CreatePet 在家庭组下创建宠物
	CreatePet(groupID uint, req request.CreatePetRequest, username string) (*respond.PetRespond, error)
	// GetPet 获取宠物信息
	GetPet(petID uint, username string) (*respond.PetRespond, error)
	// ModifyPet 修改宠物信息
	ModifyPet(petID uint, req request.ModifyPetRequest, username string) error
	// DeletePet 删除宠物（软删除）
	DeletePet(petID uint, username string) error
	// GetPets 获取家庭组内所有宠物
	GetPets(groupID uint, username string) ([]respond.PetRespond, error)
}

// TagService 标签业务接口
type TagService interface {
	// CreateTag 在家庭组下创建标签
	CreateTag(groupID uint, req request.CreateTagRequest, username string) (*respond.TagRespond, error)
	// GetTags 获取家庭组内所有标签
	GetTags(groupID uint, username string) ([]respond.TagRespond, error)
}

// ScheduleService 日程业务接口
type ScheduleService interface {
	// CreateSchedule 创建日程
	CreateSchedule(petID uint, req request.CreateScheduleRequest, username string) error
	// ModifySchedule 修改日程，所有可变字段整体覆盖
	ModifySchedule(petID, scheduleID uint, req request.ModifyScheduleRequest, username string) error
	// DeleteSchedule 删除日程（软删除）
	DeleteSchedule(scheduleID uint, username string) error
	// GetSchedule 获取日程详情，关联标签名、宠物名和用户名
	GetSchedule(petID, scheduleID uint, username string) (*respond.GetScheduleRespond, error)
}

// DiseaseService 疾病记录业务接口
type DiseaseService interface {
	// CreateDisease 创建疾病记录，同宠物下同名未删除记录不可重复
	CreateDisease(petID uint, req request.CreateDiseaseRequest, username string) error
	// ModifyDisease 修改疾病记录
	ModifyDisease(petID, diseaseID uint, req request.ModifyDiseaseRequest, username string) error
	// DeleteDisease 删除疾病记录（软删除）
	DeleteDisease(petID, diseaseID uint, username string) error
	// GetDisease 获取疾病记录
	GetDisease(petID, diseaseID uint, username string) (*respond.DiseaseRespond, error)
	// GetDiseases 获取宠物所有疾病记录，按发病日期倒序
	GetDiseases(petID uint, username string) ([]respond.DiseaseRespond, error)
}

// MonitoringService 日常监测业务接口
type MonitoringService interface {
	// CreateMonitoring 创建监测记录
	CreateMonitoring(petID uint, req request.CreateMonitoringRequest, username string) error
	// GetMonthlyMonitorings 获取某月的监测记录，monthToken 为 "yyyymm"
	GetMonthlyMonitorings(petID uint, monthToken, username string) ([]respond.MonitoringRespond, error)
	// ModifyMonitoring 修改监测记录
	ModifyMonitoring(petID, monitoringID uint, req request.ModifyMonitoringRequest, username string) error
	// DeleteMonitoring 删除监测记录（软删除）
	DeleteMonitoring(petID, monitoringID uint, username string) error
	// GetMonitoring 获取监测记录
	GetMonitoring(petID, monitoringID uint, username string) (*respond.MonitoringRespond, error)
}

// RecordService 日记业务接口
type RecordService interface {
	// GetOneRecord 获取单篇日记，私密日记仅组成员可见
	GetOneRecord(petID, recordID uint, username string) (*respond.RecordRespond, error)
	// GetAllRecords 公开日记流分页查询（带页级缓存）
	GetAllRecords(page, pageSize int) (*respond.RecordPageRespond, error)
	// GetPetAllRecords 某宠物的公开日记分页查询（仅组成员）
	GetPetAllRecords(petID uint, page, pageSize int, username string) (*respond.RecordPageRespond, error)
	// CreateRecord 创建日记并向组成员推送通知
	CreateRecord(petID uint, req request.CreateRecordRequest, username string) error
	// ModifyRecord 修改日记（仅作者）
	ModifyRecord(petID, recordID uint, req request.ModifyRecordRequest, username string) error
	// DeleteRecord 删除日记及其全部附件（仅作者）
	DeleteRecord(recordID uint, username string) error
	// GetRecordList 获取宠物在期间 [from, to) 内的日记，token 为 "yyyymmdd"
	GetRecordList(petID uint, fromToken, toToken, username string) ([]respond.RecordRespond, error)
}

// RecordFileService 日记附件业务接口
type RecordFileService interface {
	// UploadFile 批量上传日记附件到对象存储并落库
	UploadFile(petID, recordID uint, files []*multipart.FileHeader) ([]respond.RecordFileRespond, error)
}
