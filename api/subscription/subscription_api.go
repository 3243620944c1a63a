package subscription

import (
	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type SubscriptionRequestCreate struct {
	Days int `json:"days" validate:"required,gt=0"`
}

// RequestCreate 提交订阅申请，由管理员审批
func (s *Subscription) RequestCreate(c *gin.Context) {
	var req SubscriptionRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)
	request := models.SubscriptionRequestModel{
		UserID: claims.UserID,
		Days:   req.Days,
	}
	if err := request.Create(); err != nil {
		global.Log.Error("request.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "提交订阅申请失败")
		return
	}
	res.Success(c, request)
}

// Me 查看自己的订阅状态
func (s *Subscription) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	sub, err := models.SubscriptionOf(claims.UserID)
	if err != nil {
		global.Log.Error("models.SubscriptionOf() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取订阅信息失败")
		return
	}
	res.Success(c, sub)
}
