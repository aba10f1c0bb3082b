package record

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pet_diary_server/internal/dao/mysql/repository"
	myredis "pet_diary_server/internal/dao/redis"
	"pet_diary_server/internal/dto/request"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/notify"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
)

// captureBroker 测试用事件代理，记录收到的全部事件
type captureBroker struct {
	mu     sync.Mutex
	events []notify.RecordCreateEvent
}

func (b *captureBroker) Publish(_ context.Context, event notify.RecordCreateEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *captureBroker) Start() {}
func (b *captureBroker) Close() {}

func (b *captureBroker) all() []notify.RecordCreateEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]notify.RecordCreateEvent(nil), b.events...)
}

// RecordServiceTestSuite 日记 Service 测试套件
type RecordServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	mr      *miniredis.Miniredis
	repos   *repository.Repositories
	broker  *captureBroker
	service *recordService
	alice   *model.User
	bob     *model.User
	pet     *model.Pet
	other   *model.Pet
	tag     *model.Tag
}

func (suite *RecordServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.UserGroup{}, &model.Pet{},
		&model.Tag{}, &model.Record{}, &model.RecordFile{},
	))

	suite.mr = miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: suite.mr.Addr()})
	feedCache := myredis.NewFeedCache(myredis.NewRedisCache(client, 2, 64))

	suite.repos = repository.NewRepositories(suite.db)
	suite.broker = &captureBroker{}
	suite.service = NewRecordService(suite.repos, validator.NewValidator(suite.repos), feedCache, suite.broker)

	suite.alice = &model.User{Username: "alice", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(suite.alice).Error)
	suite.bob = &model.User{Username: "bob", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(suite.bob).Error)
	carol := &model.User{Username: "carol", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(carol).Error)

	group := &model.Group{Name: "我家", OwnerID: suite.alice.ID}
	suite.Require().NoError(suite.db.Create(group).Error)
	suite.Require().NoError(suite.db.Create(&model.UserGroup{UserID: suite.alice.ID, GroupID: group.ID, RoleInGroup: "owner"}).Error)
	suite.Require().NoError(suite.db.Create(&model.UserGroup{UserID: suite.bob.ID, GroupID: group.ID, RoleInGroup: "member"}).Error)

	suite.pet = &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(suite.pet).Error)
	suite.other = &model.Pet{GroupID: group.ID, Name: "小黑", Species: "cat"}
	suite.Require().NoError(suite.db.Create(suite.other).Error)
	suite.tag = &model.Tag{GroupID: group.ID, Name: "日常"}
	suite.Require().NoError(suite.db.Create(suite.tag).Error)
}

func (suite *RecordServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *RecordServiceTestSuite) createRecord(petID uint, title string, isPublic bool, username string) *model.Record {
	err := suite.service.CreateRecord(petID, request.CreateRecordRequest{
		TagId:    suite.tag.ID,
		Title:    title,
		Body:     "今天的日记",
		IsPublic: isPublic,
	}, username)
	suite.Require().NoError(err)

	var record model.Record
	suite.Require().NoError(suite.db.Where("title = ?", title).First(&record).Error)
	return &record
}

func (suite *RecordServiceTestSuite) TestCreateRecordNotifiesMembers() {
	suite.createRecord(suite.pet.ID, "第一篇", false, "alice")

	events := suite.broker.all()
	suite.Require().Len(events, 1)
	suite.Equal("第一篇", events[0].RecordTitle)
	suite.Equal("alice", events[0].FromUsername)
	suite.ElementsMatch([]string{"alice", "bob"}, events[0].Receivers)
}

func (suite *RecordServiceTestSuite) TestCreateRecordNonMember() {
	err := suite.service.CreateRecord(suite.pet.ID, request.CreateRecordRequest{
		TagId: suite.tag.ID, Title: "偷看", IsPublic: true,
	}, "carol")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
	suite.Empty(suite.broker.all())
}

func (suite *RecordServiceTestSuite) TestGetAllRecordsCaching() {
	suite.createRecord(suite.pet.ID, "公开日记", true, "alice")

	rsp, err := suite.service.GetAllRecords(1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), rsp.Total)
	suite.Require().Len(rsp.Records, 1)
	suite.Equal("alice", rsp.Records[0].AuthorUsername)

	// 直接写库绕开缓存失效，命中缓存时应返回旧页
	suite.Require().NoError(suite.db.Create(&model.Record{
		UserID: suite.alice.ID, PetID: suite.pet.ID, TagID: suite.tag.ID,
		Title: "绕过缓存", IsPublic: true,
	}).Error)

	cached, err := suite.service.GetAllRecords(1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), cached.Total)
}

func (suite *RecordServiceTestSuite) TestCreatePublicInvalidatesFeed() {
	suite.createRecord(suite.pet.ID, "第一篇", true, "alice")
	_, err := suite.service.GetAllRecords(1, 10)
	suite.Require().NoError(err)
	suite.Require().True(suite.mr.Exists("feed_page_1_10"))

	// 失效是同步的，创建返回后紧接着的读取必须看到新日记
	suite.createRecord(suite.pet.ID, "第二篇", true, "alice")
	suite.False(suite.mr.Exists("feed_page_1_10"))

	rsp, err := suite.service.GetAllRecords(1, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(2), rsp.Total)
}

func (suite *RecordServiceTestSuite) TestCreatePrivateKeepsFeedCache() {
	suite.createRecord(suite.pet.ID, "第一篇", true, "alice")
	_, err := suite.service.GetAllRecords(1, 10)
	suite.Require().NoError(err)

	suite.createRecord(suite.pet.ID, "私密日记", false, "alice")
	suite.True(suite.mr.Exists("feed_page_1_10"))
}

func (suite *RecordServiceTestSuite) TestGetOneRecordVisibility() {
	private := suite.createRecord(suite.pet.ID, "私密", false, "alice")
	public := suite.createRecord(suite.pet.ID, "公开", true, "alice")

	// 组成员可以看私密日记
	rsp, err := suite.service.GetOneRecord(suite.pet.ID, private.ID, "bob")
	suite.Require().NoError(err)
	suite.Equal("私密", rsp.Title)

	// 非组成员看不了私密日记，但可以看公开日记
	_, err = suite.service.GetOneRecord(suite.pet.ID, private.ID, "carol")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
	rsp, err = suite.service.GetOneRecord(suite.pet.ID, public.ID, "carol")
	suite.Require().NoError(err)
	suite.Equal("公开", rsp.Title)

	// 公开日记对不存在的用户也要先报用户不存在
	_, err = suite.service.GetOneRecord(suite.pet.ID, public.ID, "ghost")
	suite.Equal(errorx.CodeUserNotExist, errorx.GetCode(err))
}

func (suite *RecordServiceTestSuite) TestRecordPetMismatch() {
	record := suite.createRecord(suite.pet.ID, "错位", false, "alice")

	_, err := suite.service.GetOneRecord(suite.other.ID, record.ID, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))

	err = suite.service.ModifyRecord(suite.other.ID, record.ID, request.ModifyRecordRequest{
		TagId: suite.tag.ID, Title: "改", IsPublic: false,
	}, "alice")
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))
}

func (suite *RecordServiceTestSuite) TestModifyRecordAuthorOnly() {
	record := suite.createRecord(suite.pet.ID, "原标题", false, "alice")

	// 同组成员也不能改别人的日记
	err := suite.service.ModifyRecord(suite.pet.ID, record.ID, request.ModifyRecordRequest{
		TagId: suite.tag.ID, Title: "篡改", IsPublic: false,
	}, "bob")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))

	err = suite.service.ModifyRecord(suite.pet.ID, record.ID, request.ModifyRecordRequest{
		TagId: suite.tag.ID, Title: "新标题", Body: "", IsPublic: true,
	}, "alice")
	suite.Require().NoError(err)

	var updated model.Record
	suite.Require().NoError(suite.db.First(&updated, record.ID).Error)
	suite.Equal("新标题", updated.Title)
	// 整体覆盖，未填字段被清空
	suite.Equal("", updated.Body)
	suite.True(updated.IsPublic)
}

func (suite *RecordServiceTestSuite) TestModifyRecordAfterLeavingGroup() {
	record := suite.createRecord(suite.pet.ID, "旧日记", false, "alice")

	// 作者退组后不再能修改自己留下的日记
	suite.Require().NoError(suite.db.Where("user_id = ?", suite.alice.ID).Delete(&model.UserGroup{}).Error)

	err := suite.service.ModifyRecord(suite.pet.ID, record.ID, request.ModifyRecordRequest{
		TagId: suite.tag.ID, Title: "退组后改", IsPublic: false,
	}, "alice")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

func (suite *RecordServiceTestSuite) TestDeleteRecord() {
	record := suite.createRecord(suite.pet.ID, "要删的", false, "alice")
	suite.Require().NoError(suite.db.Create(&model.RecordFile{
		RecordID: record.ID, UploadFileName: "photo.jpg", StoredFileURL: "http://minio/record/a.jpg",
	}).Error)

	err := suite.service.DeleteRecord(record.ID, "bob")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))

	suite.Require().NoError(suite.service.DeleteRecord(record.ID, "alice"))
	_, err = suite.service.GetOneRecord(suite.pet.ID, record.ID, "alice")
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))

	// 附件一并软删除
	var count int64
	suite.Require().NoError(suite.db.Model(&model.RecordFile{}).Where("record_id = ?", record.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *RecordServiceTestSuite) TestGetPetAllRecords() {
	suite.createRecord(suite.pet.ID, "公开A", true, "alice")
	suite.createRecord(suite.pet.ID, "私密B", false, "alice")
	suite.createRecord(suite.other.ID, "别家公开", true, "alice")

	rsp, err := suite.service.GetPetAllRecords(suite.pet.ID, 1, 10, "bob")
	suite.Require().NoError(err)
	suite.Equal(int64(1), rsp.Total)
	suite.Require().Len(rsp.Records, 1)
	suite.Equal("公开A", rsp.Records[0].Title)

	_, err = suite.service.GetPetAllRecords(suite.pet.ID, 1, 10, "carol")
	suite.Equal(errorx.CodeInvalidPermission, errorx.GetCode(err))
}

// setCreatedAt 直接改写创建时间，构造期间查询数据
func (suite *RecordServiceTestSuite) setCreatedAt(id uint, at time.Time) {
	suite.Require().NoError(suite.db.Model(&model.Record{}).Where("id = ?", id).Update("created_at", at).Error)
}

func (suite *RecordServiceTestSuite) TestGetRecordList() {
	r1 := suite.createRecord(suite.pet.ID, "边界内起点", false, "alice")
	r2 := suite.createRecord(suite.pet.ID, "期间中间", false, "alice")
	r3 := suite.createRecord(suite.pet.ID, "终点当天", false, "alice")
	suite.setCreatedAt(r1.ID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local))
	suite.setCreatedAt(r2.ID, time.Date(2026, 3, 5, 12, 0, 0, 0, time.Local))
	suite.setCreatedAt(r3.ID, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local))

	// 区间为 [from, to)，3 月 10 日零点的记录不在 [0301, 0310) 内
	rsp, err := suite.service.GetRecordList(suite.pet.ID, "20260301", "20260310", "alice")
	suite.Require().NoError(err)
	suite.Require().Len(rsp, 2)
	// 按创建时间倒序
	suite.Equal("期间中间", rsp[0].Title)
	suite.Equal("边界内起点", rsp[1].Title)

	_, err = suite.service.GetRecordList(suite.pet.ID, "2026031", "20260310", "alice")
	suite.Equal(errorx.CodeInvalidParam, errorx.GetCode(err))
}

func TestRecordServiceSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
