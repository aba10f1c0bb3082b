package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedPage 测试用的页响应结构
type feedPage struct {
	Total int      `json:"total"`
	Items []string `json:"items"`
}

// newTestFeedCache 基于 miniredis 构建测试用 FeedCache
func newTestFeedCache(t *testing.T) (*FeedCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewFeedCache(NewRedisCache(client, 1, 16)), mr
}

func TestFeedCachePutAndGet(t *testing.T) {
	fc, _ := newTestFeedCache(t)
	ctx := context.Background()

	page := feedPage{Total: 2, Items: []string{"散步日记", "体检日记"}}
	fc.Put(ctx, 1, 10, page)

	var got feedPage
	hit, err := fc.Get(ctx, 1, 10, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, page, got)
}

func TestFeedCacheMiss(t *testing.T) {
	fc, _ := newTestFeedCache(t)

	var got feedPage
	hit, err := fc.Get(context.Background(), 3, 10, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFeedCacheKeyIsPageScoped(t *testing.T) {
	fc, _ := newTestFeedCache(t)
	ctx := context.Background()

	fc.Put(ctx, 1, 10, feedPage{Total: 1, Items: []string{"第一页"}})

	// 不同分页参数互不命中
	var got feedPage
	hit, err := fc.Get(ctx, 1, 20, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = fc.Get(ctx, 2, 10, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestFeedCacheInvalidateAll(t *testing.T) {
	fc, _ := newTestFeedCache(t)
	ctx := context.Background()

	fc.Put(ctx, 1, 10, feedPage{Total: 1})
	fc.Put(ctx, 2, 10, feedPage{Total: 1})

	fc.InvalidateAll()

	// 同步失效，返回后立即不可命中
	var got feedPage
	hit, err := fc.Get(ctx, 1, 10, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	hit, err = fc.Get(ctx, 2, 10, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}
