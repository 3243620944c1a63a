package middleware

import (
	"net/http"

	"paperly/global"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/service/redis_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JwtAuth 中间件，负责验证 Token 并将用户信息存储到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Request.Header.Get("Authorization")
		// 检查 Token 是否存在并去除 "Bearer " 前缀
		if len(tokenString) < 7 || tokenString[:7] != "Bearer " {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
			c.Abort()
			return
		}
		tokenString = tokenString[7:]

		// 检查令牌是否在黑名单中
		isBlacklisted, err := redis_ser.IsTokenBlacklisted(tokenString)
		if err != nil {
			global.Log.Error("检查令牌黑名单失败", zap.Error(err))
			res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
			c.Abort()
			return
		}
		if isBlacklisted {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token已失效")
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			// 尝试从过期的token中解析出用户ID并刷新
			expiredClaims, parseErr := utils.ParseExpiredToken(tokenString)
			if parseErr != nil {
				res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, "token无效")
				c.Abort()
				return
			}

			newAccessToken, refreshErr := utils.RefreshAccessToken(tokenString, expiredClaims.UserID)
			if refreshErr != nil || newAccessToken == "" {
				global.Log.Error("utils.RefreshAccessToken() failed", zap.Error(refreshErr))
				res.HttpError(c, http.StatusUnauthorized, res.TokenRefreshFailed, "token已过期且刷新失败")
				c.Abort()
				return
			}

			// 刷新成功，将新的 Token 设置到响应头中
			c.Header("X-New-Token", newAccessToken)
			c.Set("claims", expiredClaims)
			c.Next()
			return
		}

		// 将用户信息保存到上下文中，方便后续使用
		c.Set("claims", claims)

		c.Next()
	}
}

// GetClaims 从上下文取出用户信息
func GetClaims(c *gin.Context) *utils.CustomClaims {
	_claims, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, ok := _claims.(*utils.CustomClaims)
	if !ok {
		return nil
	}
	return claims
}

// RequireCapability 中间件，基于 JwtAuth 并检查角色能力
func RequireCapability(cap ctypes.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		JwtAuth()(c)
		if c.IsAborted() {
			return
		}

		claims := GetClaims(c)
		if claims == nil || !claims.Role.Can(cap) {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}

// JwtAdmin 中间件，基于 JwtAuth 并检查用户角色
func JwtAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		JwtAuth()(c)
		if c.IsAborted() {
			return
		}

		claims := GetClaims(c)
		if claims == nil || claims.Role != ctypes.RoleAdmin {
			res.HttpError(c, http.StatusForbidden, res.PermissionDenied, "权限不足")
			c.Abort()
			return
		}

		c.Next()
	}
}
