package user

import (
	"errors"

	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Code     string `json:"code" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// ResetPassword 使用验证码重置密码
func (u *User) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := models.ConsumeOtp(req.Email, req.Code); err != nil {
		if errors.Is(err, models.ErrOtpInvalid) {
			res.Error(c, res.OtpInvalid, "验证码无效或已过期")
			return
		}
		global.Log.Error("models.ConsumeOtp() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "验证码校验失败")
		return
	}

	var user models.UserModel
	if err := user.FindByEmail(req.Email); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	if err := user.UpdatePassword(req.Password); err != nil {
		global.Log.Error("user.UpdatePassword() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "重置密码失败")
		return
	}

	res.SuccessWithMsg(c, nil, "密码重置成功")
}
