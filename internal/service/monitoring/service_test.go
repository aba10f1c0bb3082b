package monitoring

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

// MonitoringServiceTestSuite 日常监测 Service 测试套件
type MonitoringServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *monitoringService
	pet     *model.Pet
	other   *model.Pet
}

func (suite *MonitoringServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.UserGroup{}, &model.Pet{}, &model.Monitoring{},
	))

	repos := repository.NewRepositories(suite.db)
	suite.service = NewMonitoringService(repos, validator.NewValidator(repos))

	alice := &model.User{Username: "alice", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(alice).Error)
	group := &model.Group{Name: "我家", OwnerID: alice.ID}
	suite.Require().NoError(suite.db.Create(group).Error)
	suite.Require().NoError(suite.db.Create(&model.UserGroup{UserID: alice.ID, GroupID: group.ID, RoleInGroup: "owner"}).Error)
	suite.pet = &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(suite.pet).Error)
	suite.other = &model.Pet{GroupID: group.ID, Name: "小黑", Species: "cat"}
	suite.Require().NoError(suite.db.Create(suite.other).Error)
}

func (suite *MonitoringServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *MonitoringServiceTestSuite) create(petID uint, date string, weight float64) {
	err := suite.service.CreateMonitoring(petID, request.CreateMonitoringRequest{
		Date:     date,
		Weight:   weight,
		FeedGram: 200,
		WalkCnt:  2,
	}, "alice")
	suite.Require().NoError(err)
}

func (suite *MonitoringServiceTestSuite) TestGetMonthlyMonitorings() {
	suite.create(suite.pet.ID, "2026-02-01", 5.2)
	suite.create(suite.pet.ID, "2026-02-28", 5.3)
	suite.create(suite.pet.ID, "2026-03-01", 5.4)
	// 同月内其他宠物的记录不应混入
	suite.create(suite.other.ID, "2026-02-10", 3.1)

	rsp, err := suite.service.GetMonthlyMonitorings(suite.pet.ID, "202602", "alice")
	suite.NoError(err)
	suite.Require().Len(rsp, 2)
	// 按日期升序
	suite.Equal("2026-02-01", rsp[0].Date)
	suite.Equal("2026-02-28", rsp[1].Date)
}

func (suite *MonitoringServiceTestSuite) TestGetMonthlyLeapFebruary() {
	suite.create(suite.pet.ID, "2024-02-29", 5.2)

	rsp, err := suite.service.GetMonthlyMonitorings(suite.pet.ID, "202402", "alice")
	suite.NoError(err)
	suite.Len(rsp, 1)
}

func (suite *MonitoringServiceTestSuite) TestGetMonthlyBadToken() {
	for _, token := range []string{"2026-2", "202613", "abc123", "2026"} {
		_, err := suite.service.GetMonthlyMonitorings(suite.pet.ID, token, "alice")
		suite.Equal(errorx.CodeInvalidParam, errorx.GetCode(err), "token=%s", token)
	}
}

func (suite *MonitoringServiceTestSuite) TestModifyMonitoring() {
	suite.create(suite.pet.ID, "2026-02-01", 5.2)
	var monitoring model.Monitoring
	suite.Require().NoError(suite.db.Last(&monitoring).Error)

	err := suite.service.ModifyMonitoring(suite.pet.ID, monitoring.ID, request.ModifyMonitoringRequest{
		Date:   "2026-02-01",
		Weight: 5.5,
		Vomit:  true,
	}, "alice")
	suite.NoError(err)

	rsp, err := suite.service.GetMonitoring(suite.pet.ID, monitoring.ID, "alice")
	suite.NoError(err)
	suite.Equal(5.5, rsp.Weight)
	suite.True(rsp.Vomit)
	// 覆盖语义：未传的计数被清零
	suite.Equal(0, rsp.FeedGram)
}

func (suite *MonitoringServiceTestSuite) TestPetMismatch() {
	suite.create(suite.pet.ID, "2026-02-01", 5.2)
	var monitoring model.Monitoring
	suite.Require().NoError(suite.db.Last(&monitoring).Error)

	_, err := suite.service.GetMonitoring(suite.other.ID, monitoring.ID, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))

	err = suite.service.DeleteMonitoring(suite.other.ID, monitoring.ID, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))
}

func (suite *MonitoringServiceTestSuite) TestDeleteMonitoring() {
	suite.create(suite.pet.ID, "2026-02-01", 5.2)
	var monitoring model.Monitoring
	suite.Require().NoError(suite.db.Last(&monitoring).Error)

	suite.NoError(suite.service.DeleteMonitoring(suite.pet.ID, monitoring.ID, "alice"))

	_, err := suite.service.GetMonitoring(suite.pet.ID, monitoring.ID, "alice")
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))
}

func TestMonitoringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MonitoringServiceTestSuite))
}
