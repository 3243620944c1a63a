package router

import (
	"paperly/api"
	"paperly/middleware"
)

func (router RouterGroup) AdminRouter() {
	adminApi := api.AppGroupApp.AdminApi
	adminRouter := router.Group("admin")
	adminRouter.Use(middleware.JwtAdmin())
	adminRouter.GET("dashboard", adminApi.Dashboard)
	adminRouter.GET("user/list", adminApi.UserList)
	adminRouter.PUT("user/role", adminApi.UserRoleUpdate)
	adminRouter.DELETE("user/:id", adminApi.UserDelete)
	adminRouter.POST("editor/categories", adminApi.AssignCategories)
	adminRouter.POST("editor/category", adminApi.GrantCategory)
	adminRouter.DELETE("editor/category", adminApi.RevokeCategory)
	adminRouter.GET("editor/:id/categories", adminApi.EditorCategoryList)
	adminRouter.GET("category/:id/editors", adminApi.CategoryEditorList)
	adminRouter.GET("subscription/requests", adminApi.SubscriptionRequestList)
	adminRouter.POST("subscription/requests/:id/approve", adminApi.SubscriptionRequestApprove)
	adminRouter.POST("subscription/requests/:id/reject", adminApi.SubscriptionRequestReject)
}
