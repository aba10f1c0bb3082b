package validator

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/model"
	"pet_diary_server/pkg/errorx"
)

// ValidatorTestSuite Validator 测试套件
type ValidatorTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repos     *repository.Repositories
	validator *Validator
}

// SetupTest 每个测试前执行，构建内存数据库
func (suite *ValidatorTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.UserGroup{},
		&model.Pet{}, &model.Tag{}, &model.Schedule{},
		&model.Disease{}, &model.Monitoring{},
		&model.Record{}, &model.RecordFile{},
	)
	suite.Require().NoError(err)

	suite.repos = repository.NewRepositories(suite.db)
	suite.validator = NewValidator(suite.repos)
}

func (suite *ValidatorTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// createUser 测试辅助：创建用户
func (suite *ValidatorTestSuite) createUser(username string) *model.User {
	user := &model.User{Username: username, RawPassword: "password123", Email: username + "@test.com"}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

// createGroupWithMember 测试辅助：创建组并加入成员
func (suite *ValidatorTestSuite) createGroupWithMember(name string, user *model.User) *model.Group {
	group := &model.Group{Name: name, OwnerID: user.ID}
	suite.Require().NoError(suite.db.Create(group).Error)
	member := &model.UserGroup{UserID: user.ID, GroupID: group.ID, RoleInGroup: "owner"}
	suite.Require().NoError(suite.db.Create(member).Error)
	return group
}

func (suite *ValidatorTestSuite) TestGetUserByUsernameNotExist() {
	_, err := suite.validator.GetUserByUsername("nobody")
	suite.Error(err)
	suite.Equal(errorx.CodeUserNotExist, errorx.GetCode(err))
}

func (suite *ValidatorTestSuite) TestGetUserByUsernameFound() {
	suite.createUser("alice")
	user, err := suite.validator.GetUserByUsername("alice")
	suite.NoError(err)
	suite.Equal("alice", user.Username)
}

func (suite *ValidatorTestSuite) TestGetPetByIDNotFound() {
	_, err := suite.validator.GetPetByID(999)
	suite.Error(err)
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))
}

func (suite *ValidatorTestSuite) TestSoftDeletedPetNotFound() {
	owner := suite.createUser("alice")
	group := suite.createGroupWithMember("家", owner)
	pet := &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(pet).Error)
	suite.Require().NoError(suite.db.Delete(pet).Error)

	// 软删除后默认查询不可见
	_, err := suite.validator.GetPetByID(pet.ID)
	suite.Error(err)
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))
}

func (suite *ValidatorTestSuite) TestGetUserGroupListByUsernameNotMember() {
	owner := suite.createUser("alice")
	group := suite.createGroupWithMember("家", owner)
	suite.createUser("bob")

	_, err := suite.validator.GetUserGroupListByUsername(group.ID, "bob")
	suite.Error(err)
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func (suite *ValidatorTestSuite) TestGetUserGroupListByUsernameMember() {
	owner := suite.createUser("alice")
	group := suite.createGroupWithMember("家", owner)

	memberships, err := suite.validator.GetUserGroupListByUsername(group.ID, "alice")
	suite.NoError(err)
	suite.Len(memberships, 1)
}

func (suite *ValidatorTestSuite) TestGetPetWithUsername() {
	owner := suite.createUser("alice")
	group := suite.createGroupWithMember("家", owner)
	pet := &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(pet).Error)
	suite.createUser("bob")

	// 成员可见
	got, err := suite.validator.GetPetWithUsername(pet.ID, "alice")
	suite.NoError(err)
	suite.Equal(pet.ID, got.ID)

	// 非成员被拒
	_, err = suite.validator.GetPetWithUsername(pet.ID, "bob")
	suite.Error(err)
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func (suite *ValidatorTestSuite) TestValidateFile() {
	// 空列表
	err := suite.validator.ValidateFile(nil)
	suite.Equal(errorx.CodeInvalidFile, errorx.GetCode(err))

	// 零字节文件
	err = suite.validator.ValidateFile([]*multipart.FileHeader{{Filename: "a.png", Size: 0}})
	suite.Equal(errorx.CodeInvalidFile, errorx.GetCode(err))

	// 正常文件
	err = suite.validator.ValidateFile([]*multipart.FileHeader{{Filename: "a.png", Size: 1024}})
	suite.NoError(err)
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
