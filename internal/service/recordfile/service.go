// Package recordfile 实现日记附件的上传
package recordfile

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pet_diary_server/internal/dao/minio"
	"pet_diary_server/internal/dao/mysql/repository"
	"pet_diary_server/internal/dto/respond"
	"pet_diary_server/internal/model"
	"pet_diary_server/internal/service/validator"
	"pet_diary_server/pkg/constants"
	"pet_diary_server/pkg/errorx"
)

// recordFileService 日记附件业务逻辑实现
type recordFileService struct {
	repos     *repository.Repositories
	validator *validator.Validator
	store     minio.ObjectStore
}

// NewRecordFileService 构造函数
func NewRecordFileService(repos *repository.Repositories, v *validator.Validator, store minio.ObjectStore) *recordFileService {
	return &recordFileService{
		repos:     repos,
		validator: v,
		store:     store,
	}
}

// storedKey 生成对象存储键：目录前缀 + uuid + 原扩展名
// 原始文件名只存数据库，不进对象存储键，避免路径穿越和重名
func storedKey(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", errorx.Newf(errorx.CodeWrongFileFormat, "文件 %s 缺少扩展名", filename)
	}
	return constants.RECORD_FILE_PREFIX + uuid.NewString() + filename[idx:], nil
}

// UploadFile 批量上传日记附件
// 先全部写入对象存储，再在同一事务内写入附件记录；任一文件失败则整批中止
func (r *recordFileService) UploadFile(petID, recordID uint, files []*multipart.FileHeader) ([]respond.RecordFileRespond, error) {
	if err := r.validator.ValidateFile(files); err != nil {
		return nil, err
	}
	if _, err := r.validator.GetPetByID(petID); err != nil {
		return nil, err
	}
	record, err := r.validator.GetRecordByID(recordID)
	if err != nil {
		return nil, err
	}
	if record.PetID != petID {
		return nil, errorx.Newf(errorx.CodeInvalidRequest, "日记 %d 不属于宠物 %d", recordID, petID)
	}

	ctx := context.Background()
	rows := make([]model.RecordFile, 0, len(files))
	for _, fh := range files {
		key, err := storedKey(fh.Filename)
		if err != nil {
			return nil, err
		}

		src, err := fh.Open()
		if err != nil {
			zap.L().Error("打开上传文件失败", zap.String("filename", fh.Filename), zap.Error(err))
			return nil, errorx.Newf(errorx.CodeFileUploadError, "文件 %s 上传失败", fh.Filename)
		}
		err = r.store.Put(ctx, key, src, fh.Size, fh.Header.Get("Content-Type"))
		src.Close()
		if err != nil {
			zap.L().Error("写入对象存储失败", zap.String("key", key), zap.Error(err))
			return nil, errorx.Newf(errorx.CodeFileUploadError, "文件 %s 上传失败", fh.Filename)
		}

		rows = append(rows, model.RecordFile{
			RecordID:       recordID,
			UploadFileName: fh.Filename,
			StoredFileURL:  r.store.PublicURL(key),
		})
	}

	err = r.repos.Transaction(func(txRepos *repository.Repositories) error {
		for i := range rows {
			if err := txRepos.RecordFile.Create(&rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("保存附件记录失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.RecordFileRespond, 0, len(rows))
	for _, row := range rows {
		rsp = append(rsp, respond.RecordFileRespond{
			FileId:         row.ID,
			UploadFileName: row.UploadFileName,
			Url:            row.StoredFileURL,
		})
	}
	return rsp, nil
}
