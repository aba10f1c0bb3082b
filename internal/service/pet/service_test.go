package pet

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/enum/pet/pet_sex_enum"
	"pet_diary_server/pkg/errorx"
)

// PetServiceTestSuite 宠物 Service 测试套件
type PetServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *petService
	group   *model.Group
}

func (suite *PetServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&model.User{}, &model.Group{}, &model.UserGroup{}, &model.Pet{}))

	repos := repository.NewRepositories(suite.db)
	suite.service = NewPetService(repos, validator.NewValidator(repos))

	// 基础数据：alice 是组成员，bob 不是
	alice := &model.User{Username: "alice", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(alice).Error)
	bob := &model.User{Username: "bob", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(bob).Error)
	suite.group = &model.Group{Name: "我家", OwnerID: alice.ID}
	suite.Require().NoError(suite.db.Create(suite.group).Error)
	suite.Require().NoError(suite.db.Create(&model.UserGroup{UserID: alice.ID, GroupID: suite.group.ID, RoleInGroup: "owner"}).Error)
}

func (suite *PetServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PetServiceTestSuite) TestCreatePet() {
	rsp, err := suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{
		Name:     "小白",
		Species:  "dog",
		Sex:      pet_sex_enum.NEUTERED_MALE,
		Birthday: "2020-05-01",
	}, "alice")
	suite.NoError(err)
	suite.Equal("小白", rsp.Name)
	suite.Equal("2020-05-01", rsp.Birthday)

	// 非成员不能创建
	_, err = suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{Name: "小黑", Species: "cat"}, "bob")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func (suite *PetServiceTestSuite) TestCreatePetBadBirthday() {
	_, err := suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{
		Name:     "小白",
		Species:  "dog",
		Birthday: "not-a-date",
	}, "alice")
	suite.Equal(errorx.CodeInvalidParam, errorx.GetCode(err))
}

func (suite *PetServiceTestSuite) TestModifyPet() {
	rsp, err := suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{Name: "小白", Species: "dog"}, "alice")
	suite.Require().NoError(err)

	err = suite.service.ModifyPet(rsp.PetId, request.ModifyPetRequest{
		Name:    "小白白",
		Species: "dog",
		Sex:     pet_sex_enum.MALE,
	}, "alice")
	suite.NoError(err)

	got, err := suite.service.GetPet(rsp.PetId, "alice")
	suite.NoError(err)
	suite.Equal("小白白", got.Name)
	// 覆盖语义：未传生日则清空
	suite.Equal("", got.Birthday)
}

func (suite *PetServiceTestSuite) TestDeletePet() {
	rsp, err := suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{Name: "小白", Species: "dog"}, "alice")
	suite.Require().NoError(err)

	suite.NoError(suite.service.DeletePet(rsp.PetId, "alice"))

	// 软删除后查询返回 CodeNotFound
	_, err = suite.service.GetPet(rsp.PetId, "alice")
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))
}

func (suite *PetServiceTestSuite) TestGetPets() {
	_, err := suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{Name: "小白", Species: "dog"}, "alice")
	suite.Require().NoError(err)
	_, err = suite.service.CreatePet(suite.group.ID, request.CreatePetRequest{Name: "小黑", Species: "cat"}, "alice")
	suite.Require().NoError(err)

	pets, err := suite.service.GetPets(suite.group.ID, "alice")
	suite.NoError(err)
	suite.Len(pets, 2)

	_, err = suite.service.GetPets(suite.group.ID, "bob")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func TestPetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PetServiceTestSuite))
}
