// Package tag 实现日记/日程标签的管理
package tag

import (
	"go.uber.org/zap"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
)

// tagService 标签业务逻辑实现
type tagService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewTagService 构造函数，注入所有依赖
func NewTagService(repos *repository.Repositories, v *validator.Validator) *tagService {
	return &tagService{
		repos:     repos,
		validator: v,
	}
}

// CreateTag 在家庭组下创建标签
// 仅组成员可操作
func (t *tagService) CreateTag(groupID uint, req request.CreateTagRequest, username string) (*respond.TagRespond, error) {
	if _, err := t.validator.GetGroupByID(groupID); err != nil {
		return nil, err
	}
	if _, err := t.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return nil, err
	}

	tag := model.Tag{
		GroupID: groupID,
		Name:    req.Name,
	}
	if err := t.repos.Tag.Create(&tag); err != nil {
		zap.L().Error("创建标签失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.TagRespond{
		TagId:   tag.ID,
		GroupId: tag.GroupID,
		Name:    tag.Name,
	}, nil
}

// GetTags 获取家庭组内所有标签
func (t *tagService) GetTags(groupID uint, username string) ([]respond.TagRespond, error) {
	if _, err := t.validator.GetGroupByID(groupID); err != nil {
		return nil, err
	}
	if _, err := t.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return nil, err
	}

	tags, err := t.repos.Tag.FindByGroupID(groupID)
	if err != nil {
		zap.L().Error("查询组内标签失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.TagRespond, 0, len(tags))
	for _, tag := range tags {
		rsp = append(rsp, respond.TagRespond{
			TagId:   tag.ID,
			GroupId: tag.GroupID,
			Name:    tag.Name,
		})
	}
	return rsp, nil
}
