package router

import (
	"paperly/api"
	"paperly/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("comment")
	commentRouter.GET("article/:id", commentApi.CommentList)
	commentRouter.POST("", middleware.JwtAuth(), commentApi.CommentCreate)
	commentRouter.DELETE(":id", middleware.JwtAuth(), commentApi.CommentDelete)
}
