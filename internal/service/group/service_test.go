package group

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

// GroupServiceTestSuite 家庭组 Service 测试套件
type GroupServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *groupService
}

func (suite *GroupServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&model.User{}, &model.Group{}, &model.UserGroup{}))

	repos := repository.NewRepositories(suite.db)
	suite.service = NewGroupService(repos, validator.NewValidator(repos))
}

func (suite *GroupServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *GroupServiceTestSuite) createUser(username string) *model.User {
	user := &model.User{Username: username, RawPassword: "password123", Email: username + "@test.com"}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *GroupServiceTestSuite) TestCreateGroup() {
	owner := suite.createUser("alice")

	rsp, err := suite.service.CreateGroup(request.CreateGroupRequest{Name: "我家"}, "alice")
	suite.NoError(err)
	suite.Equal("我家", rsp.Name)
	suite.Equal(owner.ID, rsp.OwnerId)
	suite.Equal(RoleOwner, rsp.RoleInGroup)

	// 创建者自动成为 owner 成员
	var member model.UserGroup
	suite.Require().NoError(suite.db.Where("group_id = ? AND user_id = ?", rsp.GroupId, owner.ID).First(&member).Error)
	suite.Equal(RoleOwner, member.RoleInGroup)
}

func (suite *GroupServiceTestSuite) TestInviteMember() {
	suite.createUser("alice")
	bob := suite.createUser("bob")
	rsp, err := suite.service.CreateGroup(request.CreateGroupRequest{Name: "我家"}, "alice")
	suite.Require().NoError(err)

	err = suite.service.InviteMember(rsp.GroupId, request.InviteMemberRequest{Username: "bob"}, "alice")
	suite.NoError(err)

	var member model.UserGroup
	suite.Require().NoError(suite.db.Where("group_id = ? AND user_id = ?", rsp.GroupId, bob.ID).First(&member).Error)
	suite.Equal(RoleMember, member.RoleInGroup)

	// 重复邀请
	err = suite.service.InviteMember(rsp.GroupId, request.InviteMemberRequest{Username: "bob"}, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))
}

func (suite *GroupServiceTestSuite) TestInviteMemberByNonMember() {
	suite.createUser("alice")
	suite.createUser("bob")
	suite.createUser("carol")
	rsp, err := suite.service.CreateGroup(request.CreateGroupRequest{Name: "我家"}, "alice")
	suite.Require().NoError(err)

	// 非成员不能邀请
	err = suite.service.InviteMember(rsp.GroupId, request.InviteMemberRequest{Username: "carol"}, "bob")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func (suite *GroupServiceTestSuite) TestGetMyGroups() {
	suite.createUser("alice")
	suite.createUser("bob")
	g1, err := suite.service.CreateGroup(request.CreateGroupRequest{Name: "我家"}, "alice")
	suite.Require().NoError(err)
	_, err = suite.service.CreateGroup(request.CreateGroupRequest{Name: "别家"}, "bob")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.InviteMember(g1.GroupId, request.InviteMemberRequest{Username: "bob"}, "alice"))

	groups, err := suite.service.GetMyGroups("bob")
	suite.NoError(err)
	suite.Len(groups, 2)

	groups, err = suite.service.GetMyGroups("alice")
	suite.NoError(err)
	suite.Len(groups, 1)
	suite.Equal("我家", groups[0].Name)
}

func (suite *GroupServiceTestSuite) TestGetMembers() {
	suite.createUser("alice")
	suite.createUser("bob")
	suite.createUser("carol")
	rsp, err := suite.service.CreateGroup(request.CreateGroupRequest{Name: "我家"}, "alice")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.InviteMember(rsp.GroupId, request.InviteMemberRequest{Username: "bob"}, "alice"))

	members, err := suite.service.GetMembers(rsp.GroupId, "alice")
	suite.NoError(err)
	suite.Len(members, 2)

	// 非成员不可见
	_, err = suite.service.GetMembers(rsp.GroupId, "carol")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func TestGroupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GroupServiceTestSuite))
}
