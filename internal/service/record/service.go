// Package record 实现宠物日记的管理与公开日记流
package record

import (
	"context"

	"go.uber.org/zap"

	"pet_diary_server/internal/dao/mysql/repository"
	myredis "pet_diary_server/internal/dao/redis"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/notify"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
	"pet_diary_server/pkg/util/datetoken"
)

// 分页默认值与上限
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// recordService 日记业务逻辑实现
type recordService struct {
	repos     *repository.Repositories
	validator *validator.Validator
	feedCache *myredis.FeedCache
	broker    notify.EventBroker
}

// NewRecordService 构造函数，注入所有依赖
func NewRecordService(repos *repository.Repositories, v *validator.Validator, feedCache *myredis.FeedCache, broker notify.EventBroker) *recordService {
	return &recordService{
		repos:     repos,
		validator: v,
		feedCache: feedCache,
		broker:    broker,
	}
}

// normalizePage 规范化分页参数
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// toRespond 模型转响应体，附带作者用户名和附件列表
func (r *recordService) toRespond(record *model.Record) respond.RecordRespond {
	rsp := respond.RecordRespond{
		RecordId:  record.ID,
		PetId:     record.PetID,
		TagId:     record.TagID,
		Title:     record.Title,
		Body:      record.Body,
		IsPublic:  record.IsPublic,
		CreatedAt: record.CreatedAt.Format("2006-01-02 15:04:05"),
		Files:     make([]respond.RecordFileRespond, 0),
	}
	if author, err := r.repos.User.FindByID(record.UserID); err == nil {
		rsp.AuthorUsername = author.Username
	}
	if files, err := r.repos.RecordFile.FindByRecordID(record.ID); err == nil {
		for _, f := range files {
			rsp.Files = append(rsp.Files, respond.RecordFileRespond{
				FileId:         f.ID,
				UploadFileName: f.UploadFileName,
				Url:            f.StoredFileURL,
			})
		}
	}
	return rsp
}

// GetOneRecord 获取单篇日记
// 公开日记任何登录用户可见，私密日记仅宠物所在组成员可见
func (r *recordService) GetOneRecord(petID, recordID uint, username string) (*respond.RecordRespond, error) {
	if _, err := r.validator.GetUserByUsername(username); err != nil {
		return nil, err
	}
	record, err := r.validator.GetRecordByID(recordID)
	if err != nil {
		return nil, err
	}
	if record.PetID != petID {
		return nil, errorx.Newf(errorx.CodeInvalidRequest, "日记 %d 不属于宠物 %d", recordID, petID)
	}
	if !record.IsPublic {
		if _, err := r.validator.GetPetWithUsername(petID, username); err != nil {
			return nil, err
		}
	}
	rsp := r.toRespond(record)
	return &rsp, nil
}

// GetAllRecords 公开日记流分页查询
// 以分页参数为键查页级缓存，未命中查库后回写
func (r *recordService) GetAllRecords(page, pageSize int) (*respond.RecordPageRespond, error) {
	page, pageSize = normalizePage(page, pageSize)
	ctx := context.Background()

	// 1. 尝试从缓存获取 (Happy Path)
	var cached respond.RecordPageRespond
	hit, err := r.feedCache.Get(ctx, page, pageSize, &cached)
	if err != nil {
		// 缓存故障不中断业务，降级查库
		zap.L().Error("读取 feed 缓存失败", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	// 2. 缓存未命中 -> 查询数据库
	records, total, err := r.repos.Record.FindPublicPage(page, pageSize)
	if err != nil {
		zap.L().Error("查询公开日记失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := &respond.RecordPageRespond{
		Total:   total,
		Records: make([]respond.RecordRespond, 0, len(records)),
	}
	for i := range records {
		rsp.Records = append(rsp.Records, r.toRespond(&records[i]))
	}

	// 3. 回写缓存
	r.feedCache.Put(ctx, page, pageSize, rsp)
	return rsp, nil
}

// GetPetAllRecords 某宠物的公开日记分页查询
// 仅组成员可见，不走缓存
func (r *recordService) GetPetAllRecords(petID uint, page, pageSize int, username string) (*respond.RecordPageRespond, error) {
	if _, err := r.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	page, pageSize = normalizePage(page, pageSize)

	records, total, err := r.repos.Record.FindPublicPageByPetID(petID, page, pageSize)
	if err != nil {
		zap.L().Error("查询宠物公开日记失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	rsp := &respond.RecordPageRespond{
		Total:   total,
		Records: make([]respond.RecordRespond, 0, len(records)),
	}
	for i := range records {
		rsp.Records = append(rsp.Records, r.toRespond(&records[i]))
	}
	return rsp, nil
}

// CreateRecord 创建日记
// 写入成功后向组成员发布通知事件（尽力而为，不影响主流程），
// 公开日记会触发 feed 缓存整体失效
func (r *recordService) CreateRecord(petID uint, req request.CreateRecordRequest, username string) error {
	pet, err := r.validator.GetPetWithUsername(petID, username)
	if err != nil {
		return err
	}
	if _, err := r.validator.GetTagByID(req.TagId); err != nil {
		return err
	}
	user, err := r.validator.GetUserByUsername(username)
	if err != nil {
		return err
	}

	record := model.Record{
		UserID:   user.ID,
		PetID:    petID,
		TagID:    req.TagId,
		Title:    req.Title,
		Body:     req.Body,
		IsPublic: req.IsPublic,
	}
	if err := r.repos.Record.Create(&record); err != nil {
		zap.L().Error("创建日记失败", zap.Error(err))
		return errorx.ErrServerBusy
	}

	// 通知组成员，失败只记日志
	r.publishCreateEvent(pet.GroupID, record.Title, username)

	// 仅公开日记影响公开 feed
	if record.IsPublic {
		r.feedCache.InvalidateAll()
	}
	return nil
}

// publishCreateEvent 向宠物所在组的全部成员发布日记创建事件
func (r *recordService) publishCreateEvent(groupID uint, title, fromUsername string) {
	members, err := r.repos.UserGroup.FindMembersWithUser(groupID)
	if err != nil {
		zap.L().Error("查询组成员失败，跳过通知", zap.Error(err))
		return
	}
	receivers := make([]string, 0, len(members))
	for _, m := range members {
		receivers = append(receivers, m.Username)
	}
	event := notify.RecordCreateEvent{
		Receivers:    receivers,
		RecordTitle:  title,
		FromUsername: fromUsername,
	}
	if err := r.broker.Publish(context.Background(), event); err != nil {
		zap.L().Warn("发布日记创建事件失败", zap.Error(err))
	}
}

// ModifyRecord 修改日记
// 仅仍在宠物所在组内的作者本人可修改，所有可变字段整体覆盖
func (r *recordService) ModifyRecord(petID, recordID uint, req request.ModifyRecordRequest, username string) error {
	record, err := r.validator.GetRecordByID(recordID)
	if err != nil {
		return err
	}
	if record.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "日记 %d 不属于宠物 %d", recordID, petID)
	}
	if _, err := r.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	user, err := r.validator.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if record.UserID != user.ID {
		return errorx.New(errorx.CodeInvalidPermission, "只有作者本人可以修改日记")
	}
	if _, err := r.validator.GetTagByID(req.TagId); err != nil {
		return err
	}

	record.TagID = req.TagId
	record.Title = req.Title
	record.Body = req.Body
	record.IsPublic = req.IsPublic
	if err := r.repos.Record.Update(record); err != nil {
		zap.L().Error("更新日记失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteRecord 删除日记
// 仅作者本人可删除，同一事务内先删附件记录再删日记
func (r *recordService) DeleteRecord(recordID uint, username string) error {
	record, err := r.validator.GetRecordByID(recordID)
	if err != nil {
		return err
	}
	user, err := r.validator.GetUserByUsername(username)
	if err != nil {
		return err
	}
	if record.UserID != user.ID {
		return errorx.New(errorx.CodeInvalidPermission, "只有作者本人可以删除日记")
	}

	return r.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.RecordFile.SoftDeleteByRecordID(record.ID); err != nil {
			zap.L().Error("删除日记附件失败", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if err := txRepos.Record.SoftDeleteByID(record.ID); err != nil {
			zap.L().Error("删除日记失败", zap.Error(err))
			return errorx.ErrServerBusy
		}
		return nil
	})
}

// GetRecordList 获取宠物在期间内的日记
// token 为 "yyyymmdd"，查询区间为 [from, to) 左闭右开，按创建时间倒序
func (r *recordService) GetRecordList(petID uint, fromToken, toToken, username string) ([]respond.RecordRespond, error) {
	if _, err := r.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	from, err := datetoken.Day(fromToken)
	if err != nil {
		return nil, err
	}
	to, err := datetoken.Day(toToken)
	if err != nil {
		return nil, err
	}

	records, err := r.repos.Record.FindByPetIDAndCreatedBetween(petID, from, to)
	if err != nil {
		zap.L().Error("查询宠物日记失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.RecordRespond, 0, len(records))
	for i := range records {
		rsp = append(rsp, r.toRespond(&records[i]))
	}
	return rsp, nil
}
