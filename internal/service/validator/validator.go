// Package validator 提供跨 Service 共享的实体校验逻辑
// 各业务 Service 通过它完成"按 ID 取实体 + 失败即返回业务错误"的前置检查
package validator

import (
	"mime/multipart"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/model"
	"pet_diary_server/pkg/errorx"
)

// Validator 实体校验器
// 通过构造函数注入 Repository 聚合
type Validator struct {
	repos *repository.Repositories
}

// NewValidator 创建 Validator 实例
func NewValidator(repos *repository.Repositories) *Validator {
	return &Validator{repos: repos}
}

// GetUserByUsername 按用户名取用户，不存在返回 CodeUserNotExist
func (v *Validator) GetUserByUsername(username string) (*model.User, error) {
	user, err := v.repos.User.FindByUsername(username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeUserNotExist, "用户 %s 不存在", username)
		}
		return nil, err
	}
	return user, nil
}

// GetGroupByID 按 ID 取家庭组，不存在返回 CodeNotFound
func (v *Validator) GetGroupByID(groupID uint) (*model.Group, error) {
	group, err := v.repos.Group.FindByID(groupID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "家庭组 %d 不存在", groupID)
		}
		return nil, err
	}
	return group, nil
}

// GetTagByID 按 ID 取标签，不存在返回 CodeNotFound
func (v *Validator) GetTagByID(tagID uint) (*model.Tag, error) {
	tag, err := v.repos.Tag.FindByID(tagID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "标签 %d 不存在", tagID)
		}
		return nil, err
	}
	return tag, nil
}

// GetPetByID 按 ID 取宠物，不存在返回 CodeNotFound
func (v *Validator) GetPetByID(petID uint) (*model.Pet, error) {
	pet, err := v.repos.Pet.FindByID(petID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "宠物 %d 不存在", petID)
		}
		return nil, err
	}
	return pet, nil
}

// GetScheduleByID 按 ID 取日程，不存在返回 CodeNotFound
func (v *Validator) GetScheduleByID(scheduleID uint) (*model.Schedule, error) {
	schedule, err := v.repos.Schedule.FindByID(scheduleID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "日程 %d 不存在", scheduleID)
		}
		return nil, err
	}
	return schedule, nil
}

// GetDiseaseByID 按 ID 取疾病记录，不存在返回 CodeNotFound
func (v *Validator) GetDiseaseByID(diseaseID uint) (*model.Disease, error) {
	disease, err := v.repos.Disease.FindByID(diseaseID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "疾病记录 %d 不存在", diseaseID)
		}
		return nil, err
	}
	return disease, nil
}

// GetMonitoringByID 按 ID 取监测记录，不存在返回 CodeNotFound
func (v *Validator) GetMonitoringByID(monitoringID uint) (*model.Monitoring, error) {
	monitoring, err := v.repos.Monitoring.FindByID(monitoringID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "监测记录 %d 不存在", monitoringID)
		}
		return nil, err
	}
	return monitoring, nil
}

// GetRecordByID 按 ID 取日记，不存在返回 CodeNotFound
func (v *Validator) GetRecordByID(recordID uint) (*model.Record, error) {
	record, err := v.repos.Record.FindByID(recordID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.Newf(errorx.CodeNotFound, "日记 %d 不存在", recordID)
		}
		return nil, err
	}
	return record, nil
}

// GetUserGroupListByUsername 取用户在指定组的成员关系
// 用户不在组内返回 CodeInvalidPermission，这是成员资格检查的统一入口
func (v *Validator) GetUserGroupListByUsername(groupID uint, username string) ([]model.UserGroup, error) {
	user, err := v.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	memberships, err := v.repos.UserGroup.FindByGroupAndUser(groupID, user.ID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return nil, errorx.Newf(errorx.CodeInvalidPermission, "用户 %s 不是家庭组 %d 的成员", username, groupID)
	}
	return memberships, nil
}

// GetPetWithUsername 取宠物并校验用户是否为宠物所在组成员
// 宠物不存在返回 CodeNotFound，非成员返回 CodeInvalidPermission
func (v *Validator) GetPetWithUsername(petID uint, username string) (*model.Pet, error) {
	pet, err := v.GetPetByID(petID)
	if err != nil {
		return nil, err
	}
	if _, err := v.GetUserGroupListByUsername(pet.GroupID, username); err != nil {
		return nil, err
	}
	return pet, nil
}

// ValidateFile 校验上传文件列表
// 空列表或存在零字节文件返回 CodeInvalidFile
func (v *Validator) ValidateFile(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return errorx.New(errorx.CodeInvalidFile, "上传文件列表为空")
	}
	for _, file := range files {
		if file == nil || file.Size == 0 {
			return errorx.New(errorx.CodeInvalidFile, "存在空文件")
		}
	}
	return nil
}
