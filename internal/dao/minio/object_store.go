// Package minio 提供对象存储操作的封装
// 日记附件上传后通过公开读 URL 直接访问
// 使用 github.com/minio/minio-go/v7 作为底层客户端
package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"pet_diary_server/internal/config"
	"pet_diary_server/pkg/errorx"
)

// ObjectStore 对象存储接口
// 抽象附件的上传与访问，便于测试时替换实现
type ObjectStore interface {
	// Put 上传对象
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// PublicURL 返回对象的公开访问 URL
	PublicURL(key string) string
}

// MinioStore ObjectStore 的 MinIO 实现
type MinioStore struct {
	client   *miniogo.Client
	bucket   string
	endpoint string
	useSSL   bool
}

// publicReadPolicy 桶级公开读策略模板
const publicReadPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`

// Init 初始化 MinIO 客户端并确保桶存在
// 桶不存在时创建并设置公开读策略
func Init() (*MinioStore, error) {
	conf := config.GetConfig().MinioConfig
	client, err := miniogo.New(conf.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "初始化 MinIO 客户端失败")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, conf.Bucket)
	if err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeServerBusy, "检查桶 %s 失败", conf.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, conf.Bucket, miniogo.MakeBucketOptions{}); err != nil {
			return nil, errorx.Wrapf(err, errorx.CodeServerBusy, "创建桶 %s 失败", conf.Bucket)
		}
		if err := client.SetBucketPolicy(ctx, conf.Bucket, fmt.Sprintf(publicReadPolicy, conf.Bucket)); err != nil {
			return nil, errorx.Wrapf(err, errorx.CodeServerBusy, "设置桶 %s 公开读策略失败", conf.Bucket)
		}
	}

	zap.L().Info("MinIO 初始化成功", zap.String("endpoint", conf.Endpoint), zap.String("bucket", conf.Bucket))
	return &MinioStore{
		client:   client,
		bucket:   conf.Bucket,
		endpoint: conf.Endpoint,
		useSSL:   conf.UseSSL,
	}, nil
}

// Put 上传对象
func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if _, err := m.client.PutObject(ctx, m.bucket, key, r, size, miniogo.PutObjectOptions{ContentType: contentType}); err != nil {
		return errorx.Wrapf(err, errorx.CodeFileUploadError, "上传对象 %s 失败", key)
	}
	return nil
}

// PublicURL 返回对象的公开访问 URL
func (m *MinioStore) PublicURL(key string) string {
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key)
}

// 确保 MinioStore 实现了 ObjectStore 接口
var _ ObjectStore = (*MinioStore)(nil)
