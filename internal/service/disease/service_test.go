package disease

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
)

// DiseaseServiceTestSuite 疾病记录 Service 测试套件
type DiseaseServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *diseaseService
	pet     *model.Pet
}

func (suite *DiseaseServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.UserGroup{}, &model.Pet{}, &model.Disease{},
	))

	repos := repository.NewRepositories(suite.db)
	suite.service = NewDiseaseService(repos, validator.NewValidator(repos))

	alice := &model.User{Username: "alice", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(alice).Error)
	group := &model.Group{Name: "我家", OwnerID: alice.ID}
	suite.Require().NoError(suite.db.Create(group).Error)
	suite.Require().NoError(suite.db.Create(&model.UserGroup{UserID: alice.ID, GroupID: group.ID, RoleInGroup: "owner"}).Error)
	suite.pet = &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(suite.pet).Error)
}

func (suite *DiseaseServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *DiseaseServiceTestSuite) lastDisease() *model.Disease {
	var disease model.Disease
	suite.Require().NoError(suite.db.Last(&disease).Error)
	return &disease
}

func (suite *DiseaseServiceTestSuite) TestCreateDisease() {
	err := suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{
		Name:      "皮肤病",
		Category:  "皮肤",
		StartedAt: "2026-03-01",
	}, "alice")
	suite.NoError(err)

	rsp, err := suite.service.GetDisease(suite.pet.ID, suite.lastDisease().ID, "alice")
	suite.NoError(err)
	suite.Equal("皮肤病", rsp.Name)
	suite.Equal("2026-03-01", rsp.StartedAt)
	suite.Equal("", rsp.EndedAt)
}

func (suite *DiseaseServiceTestSuite) TestCreateDiseaseDuplicateName() {
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{Name: "皮肤病"}, "alice"))

	err := suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{Name: "皮肤病"}, "alice")
	suite.Equal(errorx.CodeDuplicatedDiseaseName, errorx.GetCode(err))
}

func (suite *DiseaseServiceTestSuite) TestRecreateAfterSoftDelete() {
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{Name: "皮肤病"}, "alice"))
	disease := suite.lastDisease()
	suite.Require().NoError(suite.service.DeleteDisease(suite.pet.ID, disease.ID, "alice"))

	// 软删除后同名记录可重建
	err := suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{Name: "皮肤病"}, "alice")
	suite.NoError(err)
}

func (suite *DiseaseServiceTestSuite) TestModifyDiseasePetMismatch() {
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{Name: "皮肤病"}, "alice"))
	disease := suite.lastDisease()

	err := suite.service.ModifyDisease(suite.pet.ID+1, disease.ID, request.ModifyDiseaseRequest{Name: "耳炎"}, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))
}

func (suite *DiseaseServiceTestSuite) TestModifyDisease() {
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{
		Name:      "皮肤病",
		StartedAt: "2026-03-01",
	}, "alice"))
	disease := suite.lastDisease()

	err := suite.service.ModifyDisease(suite.pet.ID, disease.ID, request.ModifyDiseaseRequest{
		Name:      "皮肤病",
		Category:  "皮肤",
		StartedAt: "2026-03-01",
		EndedAt:   "2026-04-10",
	}, "alice")
	suite.NoError(err)

	rsp, err := suite.service.GetDisease(suite.pet.ID, disease.ID, "alice")
	suite.NoError(err)
	suite.Equal("2026-04-10", rsp.EndedAt)
}

func (suite *DiseaseServiceTestSuite) TestGetDiseasesOrderedByStartDesc() {
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{
		Name: "皮肤病", StartedAt: "2026-01-01",
	}, "alice"))
	suite.Require().NoError(suite.service.CreateDisease(suite.pet.ID, request.CreateDiseaseRequest{
		Name: "耳炎", StartedAt: "2026-05-01",
	}, "alice"))

	diseases, err := suite.service.GetDiseases(suite.pet.ID, "alice")
	suite.NoError(err)
	suite.Require().Len(diseases, 2)
	// 按发病日期倒序
	suite.Equal("耳炎", diseases[0].Name)
	suite.Equal("皮肤病", diseases[1].Name)
}

func TestDiseaseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiseaseServiceTestSuite))
}
