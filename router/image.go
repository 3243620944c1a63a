package router

import (
	"paperly/api"
	"paperly/middleware"
	"paperly/models/ctypes"
)

func (router RouterGroup) ImageRouter() {
	imageApi := api.AppGroupApp.ImageApi
	imageRouter := router.Group("image")
	imageRouter.POST("upload", middleware.RequireCapability(ctypes.CapWriteArticle), imageApi.ImageUpload)
	imageRouter.DELETE(":id", middleware.JwtAdmin(), imageApi.ImageDelete)
}
