// Package redis 提供 Redis 缓存操作的封装
// 本文件实现公开日记流（Feed）的页级缓存
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"pet_diary_server/pkg/constants"
	"pet_diary_server/pkg/errorx"
)

// FeedCache 公开日记流缓存
// 以分页参数为键缓存整页响应，公开日记新增时整体失效
type FeedCache struct {
	cache AsyncCacheService
}

// NewFeedCache 创建 FeedCache 实例
func NewFeedCache(cache AsyncCacheService) *FeedCache {
	return &FeedCache{cache: cache}
}

// feedKey 生成页级缓存键：feed_page_<page>_<pageSize>
func feedKey(page, pageSize int) string {
	return fmt.Sprintf("feed_page_%d_%d", page, pageSize)
}

// Get 读取某页的缓存，未命中返回 (false, nil)
// dest 为页响应的反序列化目标
func (f *FeedCache) Get(ctx context.Context, page, pageSize int, dest interface{}) (bool, error) {
	value, err := f.cache.Get(ctx, feedKey(page, pageSize))
	if err != nil {
		return false, err
	}
	if value == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		return false, errorx.Wrap(err, errorx.CodeCacheError, "反序列化 feed 缓存失败")
	}
	return true, nil
}

// Put 写入某页的缓存，失败只记日志不影响主流程
func (f *FeedCache) Put(ctx context.Context, page, pageSize int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("序列化 feed 缓存失败", zap.Error(err))
		return
	}
	if err := f.cache.Set(ctx, feedKey(page, pageSize), string(data), constants.FEED_CACHE_TTL); err != nil {
		zap.L().Warn("写入 feed 缓存失败", zap.Error(err))
	}
}

// InvalidateAll 同步失效所有页的缓存
// 公开日记新增后调用，返回前保证后续读取不会命中旧页；私密日记的写入不触发
func (f *FeedCache) InvalidateAll() {
	if err := f.cache.DeleteByPattern(context.Background(), "feed_page_*"); err != nil {
		zap.L().Warn("失效 feed 缓存失败", zap.Error(err))
	}
}
