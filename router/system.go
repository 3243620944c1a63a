package router

import (
	"paperly/api"
)

func (router RouterGroup) SystemRouter() {
	systemApi := api.AppGroupApp.SystemApi
	systemRouter := router.Group("system")
	systemRouter.GET("captcha", systemApi.CaptchaCreate)
	systemRouter.POST("refresh_token", systemApi.RefreshToken)
}
