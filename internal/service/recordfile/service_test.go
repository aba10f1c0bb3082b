package recordfile

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/errorx"
)

// fakeStore 测试用对象存储，记录写入的对象
type fakeStore struct {
	objects map[string][]byte
	failPut bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if f.failPut {
		return errorx.New(errorx.CodeFileUploadError, "storage down")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStore) PublicURL(key string) string {
	return "http://minio.test/pet-diary/" + key
}

// RecordFileServiceTestSuite 日记附件 Service 测试套件
type RecordFileServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	store   *fakeStore
	service *recordFileService
	pet     *model.Pet
	other   *model.Pet
	record  *model.Record
}

func (suite *RecordFileServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.UserGroup{}, &model.Pet{},
		&model.Tag{}, &model.Record{}, &model.RecordFile{},
	))

	repos := repository.NewRepositories(suite.db)
	suite.store = newFakeStore()
	suite.service = NewRecordFileService(repos, validator.NewValidator(repos), suite.store)

	alice := &model.User{Username: "alice", RawPassword: "password123"}
	suite.Require().NoError(suite.db.Create(alice).Error)
	group := &model.Group{Name: "我家", OwnerID: alice.ID}
	suite.Require().NoError(suite.db.Create(group).Error)
	suite.pet = &model.Pet{GroupID: group.ID, Name: "小白", Species: "dog"}
	suite.Require().NoError(suite.db.Create(suite.pet).Error)
	suite.other = &model.Pet{GroupID: group.ID, Name: "小黑", Species: "cat"}
	suite.Require().NoError(suite.db.Create(suite.other).Error)
	tag := &model.Tag{GroupID: group.ID, Name: "日常"}
	suite.Require().NoError(suite.db.Create(tag).Error)
	suite.record = &model.Record{UserID: alice.ID, PetID: suite.pet.ID, TagID: tag.ID, Title: "散步"}
	suite.Require().NoError(suite.db.Create(suite.record).Error)
}

func (suite *RecordFileServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// makeFileHeader 构造真实的 multipart.FileHeader
func (suite *RecordFileServiceTestSuite) makeFileHeader(name, content string) *multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("files", name)
	suite.Require().NoError(err)
	_, err = fw.Write([]byte(content))
	suite.Require().NoError(err)
	suite.Require().NoError(w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	suite.Require().NoError(err)
	return form.File["files"][0]
}

func (suite *RecordFileServiceTestSuite) TestUploadFile() {
	files := []*multipart.FileHeader{
		suite.makeFileHeader("photo.jpg", "jpeg-bytes"),
		suite.makeFileHeader("video.mp4", "mp4-bytes"),
	}

	rsp, err := suite.service.UploadFile(suite.pet.ID, suite.record.ID, files)
	suite.Require().NoError(err)
	suite.Require().Len(rsp, 2)
	suite.Equal("photo.jpg", rsp[0].UploadFileName)
	suite.Contains(rsp[0].Url, "http://minio.test/pet-diary/record/")
	// 存储键用 uuid 而非原始文件名
	suite.NotContains(rsp[0].Url, "photo")
	suite.True(strings.HasSuffix(rsp[0].Url, ".jpg"))
	suite.True(strings.HasSuffix(rsp[1].Url, ".mp4"))

	suite.Len(suite.store.objects, 2)

	var count int64
	suite.Require().NoError(suite.db.Model(&model.RecordFile{}).Where("record_id = ?", suite.record.ID).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *RecordFileServiceTestSuite) TestUploadEmptyList() {
	_, err := suite.service.UploadFile(suite.pet.ID, suite.record.ID, nil)
	suite.Equal(errorx.CodeInvalidFile, errorx.GetCode(err))
}

func (suite *RecordFileServiceTestSuite) TestUploadMissingExtension() {
	files := []*multipart.FileHeader{suite.makeFileHeader("noext", "data")}
	_, err := suite.service.UploadFile(suite.pet.ID, suite.record.ID, files)
	suite.Equal(errorx.CodeWrongFileFormat, errorx.GetCode(err))
}

func (suite *RecordFileServiceTestSuite) TestUploadStorageFailure() {
	suite.store.failPut = true
	files := []*multipart.FileHeader{suite.makeFileHeader("photo.jpg", "jpeg-bytes")}

	_, err := suite.service.UploadFile(suite.pet.ID, suite.record.ID, files)
	suite.Equal(errorx.CodeFileUploadError, errorx.GetCode(err))

	// 整批中止，不留数据库记录
	var count int64
	suite.Require().NoError(suite.db.Model(&model.RecordFile{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *RecordFileServiceTestSuite) TestUploadRecordPetMismatch() {
	files := []*multipart.FileHeader{suite.makeFileHeader("photo.jpg", "jpeg-bytes")}
	_, err := suite.service.UploadFile(suite.other.ID, suite.record.ID, files)
	suite.Equal(errorx.CodeInvalidRequest, errorx.GetCode(err))
}

func (suite *RecordFileServiceTestSuite) TestUploadRecordNotFound() {
	files := []*multipart.FileHeader{suite.makeFileHeader("photo.jpg", "jpeg-bytes")}
	_, err := suite.service.UploadFile(suite.pet.ID, 9999, files)
	suite.Equal(errorx.CodeNotFound, errorx.GetCode(err))
}

func TestRecordFileServiceSuite(t *testing.T) {
	suite.Run(t, new(RecordFileServiceTestSuite))
}
