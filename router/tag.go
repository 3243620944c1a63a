package router

import (
	"paperly/api"
	"paperly/middleware"
	"paperly/models/ctypes"
)

func (router RouterGroup) TagRouter() {
	tagApi := api.AppGroupApp.TagApi
	tagRouter := router.Group("tag")
	tagRouter.GET("list", tagApi.TagList)
	tagRouter.POST("", middleware.RequireCapability(ctypes.CapManageCategories), tagApi.TagCreate)
	tagRouter.DELETE(":id", middleware.RequireCapability(ctypes.CapManageCategories), tagApi.TagDelete)
}
