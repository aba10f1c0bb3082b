// Package monitoring 实现宠物日常监测记录的管理
package monitoring

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

// monitoringService 日常监测业务逻辑实现
type monitoringService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewMonitoringService 构造函数，注入所有依赖
func NewMonitoringService(repos *repository.Repositories, v *validator.Validator) *monitoringService {
	return &monitoringService{
		repos:     repos,
		validator: v,
	}
}

// toRespond 模型转响应体
func toRespond(m *model.Monitoring) *respond.MonitoringRespond {
	return &respond.MonitoringRespond{
		MonitoringId: m.ID,
		PetId:        m.PetID,
		Date:         m.Date.Format("2006-01-02"),
		Weight:       m.Weight,
		FeedGram:     m.FeedGram,
		WalkCnt:      m.WalkCnt,
		UrineCnt:     m.UrineCnt,
		PooCnt:       m.PooCnt,
		Vomit:        m.Vomit,
		Notes:        m.Notes,
	}
}

// CreateMonitoring 创建监测记录
func (m *monitoringService) CreateMonitoring(petID uint, req request.CreateMonitoringRequest, username string) error {
	if _, err := m.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	date, err := datetoken.DateField(req.Date)
	if err != nil {
		return err
	}
	if date == nil {
		return errorx.New(errorx.CodeInvalidParam, "监测日期不能为空")
	}

	monitoring := model.Monitoring{
		PetID:    petID,
		Date:     *date,
		Weight:   req.Weight,
		FeedGram: req.FeedGram,
		WalkCnt:  req.WalkCnt,
		UrineCnt: req.UrineCnt,
		PooCnt:   req.PooCnt,
		Vomit:    req.Vomit,
		Notes:    req.Notes,
	}
	if err := m.repos.Monitoring.Create(&monitoring); err != nil {
		zap.L().Error("创建监测记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetMonthlyMonitorings 获取某月的监测记录
// monthToken 为 "yyyymm"，查询区间为 [月初, 月末] 闭区间，月末按实际天数计算
func (m *monitoringService) GetMonthlyMonitorings(petID uint, monthToken, username string) ([]respond.MonitoringRespond, error) {
	if _, err := m.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	start, end, err := datetoken.MonthRange(monthToken)
	if err != nil {
		return nil, err
	}

	monitorings, err := m.repos.Monitoring.FindByPetIDAndDateBetween(petID, start, end)
	if err != nil {
		zap.L().Error("查询监测记录失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.MonitoringRespond, 0, len(monitorings))
	for i := range monitorings {
		rsp = append(rsp, *toRespond(&monitorings[i]))
	}
	return rsp, nil
}

// ModifyMonitoring 修改监测记录
// 宠物 ID 与路径参数不一致返回 CodeInvalidRequest
func (m *monitoringService) ModifyMonitoring(petID, monitoringID uint, req request.ModifyMonitoringRequest, username string) error {
	monitoring, err := m.validator.GetMonitoringByID(monitoringID)
	if err != nil {
		return err
	}
	if monitoring.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "监测记录 %d 不属于宠物 %d", monitoringID, petID)
	}
	if _, err := m.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	date, err := datetoken.DateField(req.Date)
	if err != nil {
		return err
	}
	if date == nil {
		return errorx.New(errorx.CodeInvalidParam, "监测日期不能为空")
	}

	monitoring.Date = *date
	monitoring.Weight = req.Weight
	monitoring.FeedGram = req.FeedGram
	monitoring.WalkCnt = req.WalkCnt
	monitoring.UrineCnt = req.UrineCnt
	monitoring.PooCnt = req.PooCnt
	monitoring.Vomit = req.Vomit
	monitoring.Notes = req.Notes
	if err := m.repos.Monitoring.Update(monitoring); err != nil {
		zap.L().Error("更新监测记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteMonitoring 删除监测记录（软删除）
func (m *monitoringService) DeleteMonitoring(petID, monitoringID uint, username string) error {
	monitoring, err := m.validator.GetMonitoringByID(monitoringID)
	if err != nil {
		return err
	}
	if monitoring.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "监测记录 %d 不属于宠物 %d", monitoringID, petID)
	}
	if _, err := m.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	if err := m.repos.Monitoring.SoftDeleteByID(monitoring.ID); err != nil {
		zap.L().Error("删除监测记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetMonitoring 获取监测记录
func (m *monitoringService) GetMonitoring(petID, monitoringID uint, username string) (*respond.MonitoringRespond, error) {
	monitoring, err := m.validator.GetMonitoringByID(monitoringID)
	if err != nil {
		return nil, err
	}
	if monitoring.PetID != petID {
		return nil, errorx.Newf(errorx.CodeInvalidRequest, "监测记录 %d 不属于宠物 %d", monitoringID, petID)
	}
	if _, err := m.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	return toRespond(monitoring), nil
}
