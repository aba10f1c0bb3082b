// Package pet 实现宠物档案的增删改查
package pet

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

// petService 宠物业务逻辑实现
type petService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewPetService 构造函数，注入所有依赖
func NewPetService(repos *repository.Repositories, v *validator.Validator) *petService {
	return &petService{
		repos:     repos,
		validator: v,
	}
}

// toRespond 模型转响应体
func toRespond(pet *model.Pet) *respond.PetRespond {
	return &respond.PetRespond{
		PetId:    pet.ID,
		GroupId:  pet.GroupID,
		Name:     pet.Name,
		Species:  pet.Species,
		Sex:      pet.Sex,
		Birthday: datetoken.FormatDateField(pet.Birthday),
	}
}

// CreatePet 在家庭组下创建宠物
// 仅组成员可操作
func (p *petService) CreatePet(groupID uint, req request.CreatePetRequest, username string) (*respond.PetRespond, error) {
	if _, err := p.validator.GetGroupByID(groupID); err != nil {
		return nil, err
	}
	if _, err := p.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return nil, err
	}
	birthday, err := datetoken.DateField(req.Birthday)
	if err != nil {
		return nil, err
	}

	pet := model.Pet{
		GroupID:  groupID,
		Name:     req.Name,
		Species:  req.Species,
		Sex:      req.Sex,
		Birthday: birthday,
	}
	if err := p.repos.Pet.Create(&pet); err != nil {
		zap.L().Error("创建宠物失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return toRespond(&pet), nil
}

// GetPet 获取宠物信息
func (p *petService) GetPet(petID uint, username string) (*respond.PetRespond, error) {
	pet, err := p.validator.GetPetWithUsername(petID, username)
	if err != nil {
		return nil, err
	}
	return toRespond(pet), nil
}

// ModifyPet 修改宠物信息，所有可变字段整体覆盖
func (p *petService) ModifyPet(petID uint, req request.ModifyPetRequest, username string) error {
	pet, err := p.validator.GetPetWithUsername(petID, username)
	if err != nil {
		return err
	}
	birthday, err := datetoken.DateField(req.Birthday)
	if err != nil {
		return err
	}

	pet.Name = req.Name
	pet.Species = req.Species
	pet.Sex = req.Sex
	pet.Birthday = birthday
	if err := p.repos.Pet.Update(pet); err != nil {
		zap.L().Error("更新宠物失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeletePet 删除宠物（软删除）
func (p *petService) DeletePet(petID uint, username string) error {
	pet, err := p.validator.GetPetWithUsername(petID, username)
	if err != nil {
		return err
	}
	if err := p.repos.Pet.SoftDeleteByID(pet.ID); err != nil {
		zap.L().Error("删除宠物失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetPets 获取家庭组内所有宠物
func (p *petService) GetPets(groupID uint, username string) ([]respond.PetRespond, error) {
	if _, err := p.validator.GetGroupByID(groupID); err != nil {
		return nil, err
	}
	if _, err := p.validator.GetUserGroupListByUsername(groupID, username); err != nil {
		return nil, err
	}

	pets, err := p.repos.Pet.FindByGroupID(groupID)
	if err != nil {
		zap.L().Error("查询组内宠物失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.PetRespond, 0, len(pets))
	for i := range pets {
		rsp = append(rsp, *toRespond(&pets[i]))
	}
	return rsp, nil
}
