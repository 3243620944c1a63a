package router

import (
	"paperly/api"
	"paperly/middleware"
	"paperly/models/ctypes"
)

func (router RouterGroup) EditorRouter() {
	editorApi := api.AppGroupApp.EditorApi
	editorRouter := router.Group("editor")
	editorRouter.Use(middleware.RequireCapability(ctypes.CapModerateArticle))
	editorRouter.GET("pending", editorApi.PendingList)
	editorRouter.GET("categories", editorApi.MyCategories)
	editorRouter.POST("approve", editorApi.ArticleApprove)
	editorRouter.POST("reject", editorApi.ArticleReject)
	editorRouter.POST("article/:id/publish", editorApi.ArticlePublish)
	editorRouter.POST("article/:id/unpublish", editorApi.ArticleUnpublish)
}
