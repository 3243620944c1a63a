package redis_ser

import (
	"context"
	"strconv"
	"strings"
	"time"

	"paperly/global"
)

const (
	Prefix        = "paperly:"
	ArticlePrefix = "article"
	RefreshToken  = "refresh_token:user_id:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}

// BuildKey 拼接多段Redis键
func BuildKey(parts ...string) string {
	return Prefix + strings.Join(parts, ":")
}

// SetRefreshToken 保存用户的刷新令牌
func SetRefreshToken(userID uint, rToken string, expire time.Duration) error {
	key := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Set(context.Background(), key, rToken, expire).Err()
}

// GetRefreshToken 获取用户保存的刷新令牌
func GetRefreshToken(userID uint) (string, error) {
	key := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Get(context.Background(), key).Result()
}
