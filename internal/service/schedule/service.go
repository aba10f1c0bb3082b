// Package schedule 实现宠物日程的增删改查
package schedule

import (
	"go.uber.org/zap"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
	"pet_diary_server/pkg/util/datetoken"
)

// scheduleService 日程业务逻辑实现
type scheduleService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewScheduleService 构造函数，注入所有依赖
func NewScheduleService(repos *repository.Repositories, v *validator.Validator) *scheduleService {
	return &scheduleService{
		repos:     repos,
		validator: v,
	}
}

// CreateSchedule 创建日程
// 操作人必须是宠物所在组成员，标签必须存在
func (s *scheduleService) CreateSchedule(petID uint, req request.CreateScheduleRequest, username string) error {
	if _, err := s.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	if _, err := s.validator.GetTagByID(req.TagId); err != nil {
		return err
	}
	user, err := s.validator.GetUserByUsername(username)
	if err != nil {
		return err
	}
	dueDate, err := datetoken.DateField(req.DueDate)
	if err != nil {
		return err
	}

	schedule := model.Schedule{
		UserID:     user.ID,
		PetID:      petID,
		TagID:      req.TagId,
		Category:   req.Category,
		Title:      req.Title,
		Body:       req.Body,
		AssigneeID: req.AssigneeId,
		Place:      req.Place,
		DueDate:    dueDate,
	}
	if err := s.repos.Schedule.Create(&schedule); err != nil {
		zap.L().Error("创建日程失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// ModifySchedule 修改日程
// 所有可变字段整体覆盖，宠物 ID 与路径参数不一致返回 CodeInvalidRequest
func (s *scheduleService) ModifySchedule(petID, scheduleID uint, req request.ModifyScheduleRequest, username string) error {
	schedule, err := s.validator.GetScheduleByID(scheduleID)
	if err != nil {
		return err
	}
	if schedule.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "日程 %d 不属于宠物 %d", scheduleID, petID)
	}
	if _, err := s.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	if _, err := s.validator.GetTagByID(req.TagId); err != nil {
		return err
	}
	dueDate, err := datetoken.DateField(req.DueDate)
	if err != nil {
		return err
	}

	schedule.TagID = req.TagId
	schedule.Category = req.Category
	schedule.Title = req.Title
	schedule.Body = req.Body
	schedule.AssigneeID = req.AssigneeId
	schedule.Place = req.Place
	schedule.IsCompleted = req.IsCompleted
	schedule.DueDate = dueDate
	if err := s.repos.Schedule.Update(schedule); err != nil {
		zap.L().Error("更新日程失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteSchedule 删除日程（软删除）
// 校验请求用户存在后按 ID 直接删除，不做成员资格校验
func (s *scheduleService) DeleteSchedule(scheduleID uint, username string) error {
	if _, err := s.validator.GetUserByUsername(username); err != nil {
		return err
	}
	schedule, err := s.validator.GetScheduleByID(scheduleID)
	if err != nil {
		return err
	}
	if err := s.repos.Schedule.SoftDeleteByID(schedule.ID); err != nil {
		zap.L().Error("删除日程失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetSchedule 获取日程详情
// 关联返回标签名、宠物名、创建人与负责人的用户名，已删除的关联实体名称留空
func (s *scheduleService) GetSchedule(petID, scheduleID uint, username string) (*respond.GetScheduleRespond, error) {
	schedule, err := s.validator.GetScheduleByID(scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule.PetID != petID {
		return nil, errorx.Newf(errorx.CodeInvalidRequest, "日程 %d 不属于宠物 %d", scheduleID, petID)
	}
	pet, err := s.validator.GetPetWithUsername(petID, username)
	if err != nil {
		return nil, err
	}

	rsp := &respond.GetScheduleRespond{
		ScheduleId:  schedule.ID,
		PetId:       schedule.PetID,
		PetName:     pet.Name,
		TagId:       schedule.TagID,
		Category:    schedule.Category,
		Title:       schedule.Title,
		Body:        schedule.Body,
		AssigneeId:  schedule.AssigneeID,
		Place:       schedule.Place,
		IsCompleted: schedule.IsCompleted,
		DueDate:     datetoken.FormatDateField(schedule.DueDate),
	}
	if tag, err := s.repos.Tag.FindByID(schedule.TagID); err == nil {
		rsp.TagName = tag.Name
	}
	if creator, err := s.repos.User.FindByID(schedule.UserID); err == nil {
		rsp.CreatorUsername = creator.Username
	}
	if schedule.AssigneeID != 0 {
		if assignee, err := s.repos.User.FindByID(schedule.AssigneeID); err == nil {
			rsp.AssigneeName = assignee.Username
		}
	}
	return rsp, nil
}
