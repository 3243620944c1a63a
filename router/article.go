package router

import (
	"paperly/api"
	"paperly/middleware"
)

func (router RouterGroup) ArticleRouter() {
	articleApi := api.AppGroupApp.ArticleApi
	articleRouter := router.Group("article")
	articleRouter.GET("home", middleware.PageCache(), articleApi.ArticleHome)
	articleRouter.GET("list", middleware.PageCache(), articleApi.ArticleList)
	articleRouter.GET("search", articleApi.ArticleSearch)
	articleRouter.GET(":id", middleware.OptionalJwt(), articleApi.ArticleDetail)
	articleRouter.GET(":id/download", middleware.OptionalJwt(), articleApi.ArticleDownload)
}
