package user

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/email_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword 发送找回密码验证码
// 为避免暴露邮箱是否注册，无论邮箱是否存在都返回成功
func (u *User) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var user models.UserModel
	if err := user.FindByEmail(req.Email); err != nil {
		res.SuccessWithMsg(c, nil, "如果邮箱已注册，验证码已发送")
		return
	}

	code := utils.GenOtpCode()
	if err := models.SaveOtp(req.Email, code); err != nil {
		global.Log.Error("models.SaveOtp() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "验证码生成失败")
		return
	}

	if err := email_ser.SendOtpMail(req.Email, code); err != nil {
		res.Error(c, res.EmailSendFailed, "邮件发送失败")
		return
	}

	res.SuccessWithMsg(c, nil, "如果邮箱已注册，验证码已发送")
}
