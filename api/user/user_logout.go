package user

import (
	"paperly/global"
	"paperly/middleware"
	"paperly/models/res"
	"paperly/service/redis_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (u *User) UserLogout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	tokenString := c.Request.Header.Get("Authorization")
	if len(tokenString) > 7 {
		tokenString = tokenString[7:]
	}

	if err := redis_ser.InvalidateTokens(claims.UserID, tokenString); err != nil {
		global.Log.Error("redis_ser.InvalidateTokens() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "登出失败")
		return
	}

	res.SuccessWithMsg(c, nil, "登出成功")
}
