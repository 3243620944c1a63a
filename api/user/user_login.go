package user

import (
	"time"

	"paperly/api/system"
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/redis_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserLoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Captcha   string `json:"captcha"`
	CaptchaId string `json:"captcha_id"`
}

type UserLoginResponse struct {
	Token string           `json:"token"`
	User  models.UserModel `json:"user"`
}

func (u *User) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaId == "" || !system.Store.Verify(req.CaptchaId, req.Captcha, true) {
			res.Error(c, res.InvalidParameter, "验证码错误")
			return
		}
	}

	var user models.UserModel
	err = user.FindByEmail(req.Email)
	if err != nil {
		res.Error(c, res.UserNotFound, "邮箱或密码错误")
		return
	}

	if !user.ValidatePassword(req.Password) {
		res.Error(c, res.PasswordError, "邮箱或密码错误")
		return
	}

	userPayload := utils.PayLoad{
		Email:  req.Email,
		Role:   user.Role,
		UserID: user.ID,
	}
	accessToken, err := utils.GenerateAccessToken(userPayload)
	if err != nil {
		global.Log.Error("utils.GenerateAccessToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成access token失败")
		return
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		global.Log.Error("utils.GenerateRefreshToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成refresh token失败")
		return
	}

	expiration := time.Duration(global.Config.Jwt.Expires) * 24 * time.Hour
	if err := redis_ser.SetRefreshToken(user.ID, refreshToken, expiration); err != nil {
		global.Log.Error("redis_ser.SetRefreshToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "设置 refresh token 到 redis 失败")
		return
	}

	// 记录登录地区
	_ = user.UpdateProfile(map[string]interface{}{"address": utils.GetAddrByGin(c)})

	global.Log.Info("用户登录成功", zap.String("email", req.Email))
	res.Success(c, UserLoginResponse{Token: accessToken, User: user})
}
