package redis_ser

import (
	"context"
	"strconv"
	"time"

	"paperly/global"

	"github.com/redis/go-redis/v9"
)

// 令牌黑名单相关
const (
	TokenBlacklist = "token_blacklist:"
	BlacklistTTL   = 30 * time.Minute // 略大于 access token 的有效期
)

// InvalidateTokens 登出时将访问令牌拉黑并删除刷新令牌
func InvalidateTokens(userID uint, accessToken string) error {
	accessTokenKey := GetRedisKey(TokenBlacklist + accessToken)
	err := global.Redis.Set(context.Background(),
		accessTokenKey,
		"invalid",
		BlacklistTTL).Err()
	if err != nil {
		return err
	}

	refreshTokenKey := GetRedisKey(RefreshToken + strconv.Itoa(int(userID)))
	return global.Redis.Del(context.Background(), refreshTokenKey).Err()
}

// IsTokenBlacklisted 检查访问令牌是否已被拉黑
func IsTokenBlacklisted(accessToken string) (bool, error) {
	key := GetRedisKey(TokenBlacklist + accessToken)
	_, err := global.Redis.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
