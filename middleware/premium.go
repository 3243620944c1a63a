package middleware

import (
	"net/http"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireSubscription 中间件，付费内容需要有效订阅或更高角色能力
func RequireSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
			c.Abort()
			return
		}

		if !claims.Role.Can(ctypes.CapReadPremium) {
			res.HttpError(c, http.StatusForbidden, res.SubscriptionRequired, "该文章为付费内容，需要有效订阅")
			c.Abort()
			return
		}

		// 订阅者角色还要求订阅仍在有效期内
		if claims.Role == ctypes.RoleSubscriber {
			active, err := models.HasActiveSubscription(claims.UserID)
			if err != nil {
				global.Log.Error("检查订阅状态失败", zap.Error(err))
				res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
				c.Abort()
				return
			}
			if !active {
				res.HttpError(c, http.StatusForbidden, res.SubscriptionExpired, "订阅已过期")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
