package utils

import (
	"errors"
	"time"

	"paperly/global"
	"paperly/service/redis_ser"
)

// RefreshAccessToken 使用Redis中保存的刷新令牌换取新的访问令牌
func RefreshAccessToken(aToken string, userID uint) (newAToken string, err error) {
	rToken, err := redis_ser.GetRefreshToken(userID)
	if err != nil {
		return "", errors.New("刷新令牌不存在或已过期")
	}

	newAToken, newRToken, err := RefreshToken(aToken, rToken)
	if err != nil {
		return "", err
	}

	// 刷新令牌轮换后同步到Redis
	if newRToken != rToken {
		expire := time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour
		if err := redis_ser.SetRefreshToken(userID, newRToken, expire); err != nil {
			return "", err
		}
	}

	return newAToken, nil
}
