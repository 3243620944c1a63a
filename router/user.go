package router

import (
	"paperly/api"
	"paperly/middleware"
)

func (router RouterGroup) UserRouter() {
	userApi := api.AppGroupApp.UserApi
	userRouter := router.Group("user")
	userRouter.POST("register", userApi.UserRegister)
	userRouter.POST("login", userApi.UserLogin)
	userRouter.POST("logout", middleware.JwtAuth(), userApi.UserLogout)
	userRouter.GET("", middleware.JwtAuth(), userApi.UserInfo)
	userRouter.POST("forgot_password", userApi.ForgotPassword)
	userRouter.POST("reset_password", userApi.ResetPassword)
}
