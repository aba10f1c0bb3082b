package constants

import "time"

const (
	CHANNEL_SIZE               = 100              // 通知事件通道大小
	FILE_MAX_SIZE              = 50 << 20         // 单次上传 multipart 内存上限（字节）
	FEED_CACHE_TTL             = 10 * time.Minute // 公开日记 feed 缓存有效期
	USER_INFO_CACHE_TTL        = time.Hour        // 用户信息缓存有效期
	REFRESH_TOKEN_TTL          = 168 * time.Hour  // Refresh Token 有效期，168小时 = 7天
	RECORD_FILE_PREFIX         = "record/"        // 对象存储中日记附件的目录前缀
)
