// Package disease 实现宠物疾病记录的管理
package disease

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

// diseaseService 疾病记录业务逻辑实现
type diseaseService struct {
	repos     *repository.Repositories
	validator *validator.Validator
}

// NewDiseaseService 构造函数，注入所有依赖
func NewDiseaseService(repos *repository.Repositories, v *validator.Validator) *diseaseService {
	return &diseaseService{
		repos:     repos,
		validator: v,
	}
}

// toRespond 模型转响应体
func toRespond(disease *model.Disease) *respond.DiseaseRespond {
	return &respond.DiseaseRespond{
		DiseaseId: disease.ID,
		PetId:     disease.PetID,
		Name:      disease.Name,
		Category:  disease.Category,
		StartedAt: datetoken.FormatDateField(disease.StartedAt),
		EndedAt:   datetoken.FormatDateField(disease.EndedAt),
	}
}

// CreateDisease 创建疾病记录
// 同一宠物下未删除的同名记录不可重复，软删除后同名可重建
func (d *diseaseService) CreateDisease(petID uint, req request.CreateDiseaseRequest, username string) error {
	if _, err := d.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}

	exists, err := d.repos.Disease.ExistsByPetIDAndName(petID, req.Name)
	if err != nil {
		zap.L().Error("查询疾病名称失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	if exists {
		return errorx.Newf(errorx.CodeDuplicatedDiseaseName, "疾病 %s 已存在", req.Name)
	}

	startedAt, err := datetoken.DateField(req.StartedAt)
	if err != nil {
		return err
	}
	endedAt, err := datetoken.DateField(req.EndedAt)
	if err != nil {
		return err
	}

	disease := model.Disease{
		PetID:     petID,
		Name:      req.Name,
		Category:  req.Category,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
	if err := d.repos.Disease.Create(&disease); err != nil {
		zap.L().Error("创建疾病记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// ModifyDisease 修改疾病记录
// 宠物 ID 与路径参数不一致返回 CodeInvalidRequest
func (d *diseaseService) ModifyDisease(petID, diseaseID uint, req request.ModifyDiseaseRequest, username string) error {
	disease, err := d.validator.GetDiseaseByID(diseaseID)
	if err != nil {
		return err
	}
	if disease.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "疾病记录 %d 不属于宠物 %d", diseaseID, petID)
	}
	if _, err := d.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}

	// 改名时检查重名（排除自身）
	if req.Name != disease.Name {
		exists, err := d.repos.Disease.ExistsByPetIDAndName(petID, req.Name)
		if err != nil {
			zap.L().Error("查询疾病名称失败", zap.Error(err))
			return errorx.ErrServerBusy
		}
		if exists {
			return errorx.Newf(errorx.CodeDuplicatedDiseaseName, "疾病 %s 已存在", req.Name)
		}
	}

	startedAt, err := datetoken.DateField(req.StartedAt)
	if err != nil {
		return err
	}
	endedAt, err := datetoken.DateField(req.EndedAt)
	if err != nil {
		return err
	}

	disease.Name = req.Name
	disease.Category = req.Category
	disease.StartedAt = startedAt
	disease.EndedAt = endedAt
	if err := d.repos.Disease.Update(disease); err != nil {
		zap.L().Error("更新疾病记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeleteDisease 删除疾病记录（软删除）
func (d *diseaseService) DeleteDisease(petID, diseaseID uint, username string) error {
	disease, err := d.validator.GetDiseaseByID(diseaseID)
	if err != nil {
		return err
	}
	if disease.PetID != petID {
		return errorx.Newf(errorx.CodeInvalidRequest, "疾病记录 %d 不属于宠物 %d", diseaseID, petID)
	}
	if _, err := d.validator.GetPetWithUsername(petID, username); err != nil {
		return err
	}
	if err := d.repos.Disease.SoftDeleteByID(disease.ID); err != nil {
		zap.L().Error("删除疾病记录失败", zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// GetDisease 获取疾病记录
func (d *diseaseService) GetDisease(petID, diseaseID uint, username string) (*respond.DiseaseRespond, error) {
	disease, err := d.validator.GetDiseaseByID(diseaseID)
	if err != nil {
		return nil, err
	}
	if disease.PetID != petID {
		return nil, errorx.Newf(errorx.CodeInvalidRequest, "疾病记录 %d 不属于宠物 %d", diseaseID, petID)
	}
	if _, err := d.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	return toRespond(disease), nil
}

// GetDiseases 获取宠物所有疾病记录，按发病日期倒序
func (d *diseaseService) GetDiseases(petID uint, username string) ([]respond.DiseaseRespond, error) {
	if _, err := d.validator.GetPetWithUsername(petID, username); err != nil {
		return nil, err
	}
	diseases, err := d.repos.Disease.FindByPetID(petID)
	if err != nil {
		zap.L().Error("查询疾病记录失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.DiseaseRespond, 0, len(diseases))
	for i := range diseases {
		rsp = append(rsp, *toRespond(&diseases[i]))
	}
	return rsp, nil
}
