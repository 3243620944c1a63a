package user

import (
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
)

type UserInfoResponse struct {
	models.UserModel
	Subscription *models.SubscriptionModel `json:"subscription,omitempty"`
}

// UserInfo 获取当前用户信息与订阅状态
func (u *User) UserInfo(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	var user models.UserModel
	if err := user.FindByID(claims.UserID); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	sub, _ := models.SubscriptionOf(user.ID)
	res.Success(c, UserInfoResponse{UserModel: user, Subscription: sub})
}
