package redis_ser

import (
	"context"
	"time"

	"paperly/global"

	"github.com/redis/go-redis/v9"
)

const (
	PageCachePrefix = "page_cache"
	PageCacheTTL    = 5 * time.Minute
)

// GetPageCache 读取页面缓存，未命中返回空串
func GetPageCache(path string) (string, bool) {
	key := BuildKey(PageCachePrefix, path)
	val, err := global.Redis.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return val, true
}

// SetPageCache 写入页面缓存
func SetPageCache(path string, body string) error {
	key := BuildKey(PageCachePrefix, path)
	return global.Redis.Set(context.Background(), key, body, PageCacheTTL).Err()
}

// ClearPageCache 文章状态变化后清空页面缓存
func ClearPageCache() error {
	ctx := context.Background()
	pattern := BuildKey(PageCachePrefix, "*")

	iter := global.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := global.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
