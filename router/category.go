package router

import (
	"paperly/api"
	"paperly/middleware"
	"paperly/models/ctypes"
)

func (router RouterGroup) CategoryRouter() {
	categoryApi := api.AppGroupApp.CategoryApi
	categoryRouter := router.Group("category")
	categoryRouter.GET("list", categoryApi.CategoryList)
	categoryRouter.POST("", middleware.RequireCapability(ctypes.CapManageCategories), categoryApi.CategoryCreate)
	categoryRouter.PUT("", middleware.RequireCapability(ctypes.CapManageCategories), categoryApi.CategoryUpdate)
	categoryRouter.DELETE(":id", middleware.RequireCapability(ctypes.CapManageCategories), categoryApi.CategoryDelete)
}
