package user

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserRegisterRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// UserRegister 用户注册，新用户默认为访客角色
func (u *User) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	user := models.UserModel{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     ctypes.RoleGuest,
	}
	if err := user.Create(c.ClientIP()); err != nil {
		global.Log.Error("user.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.UserAlreadyExists, err.Error())
		return
	}

	global.Log.Info("用户注册成功", zap.String("email", req.Email))
	res.Success(c, user)
}
