package router

import (
	"paperly/api"
	"paperly/middleware"
	"paperly/models/ctypes"
)

func (router RouterGroup) WriterRouter() {
	writerApi := api.AppGroupApp.WriterApi
	writerRouter := router.Group("writer")
	writerRouter.Use(middleware.RequireCapability(ctypes.CapWriteArticle))
	writerRouter.POST("article", writerApi.ArticleCreate)
	writerRouter.PUT("article", writerApi.ArticleUpdate)
	writerRouter.POST("article/:id/submit", writerApi.ArticleSubmit)
	writerRouter.DELETE("article/:id", writerApi.ArticleDelete)
	writerRouter.GET("article/list", writerApi.ArticleMine)
	writerRouter.GET("article/:id/rejections", writerApi.ArticleRejections)
}
