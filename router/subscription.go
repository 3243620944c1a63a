package router

import (
	"paperly/api"
	"paperly/middleware"
)

func (router RouterGroup) SubscriptionRouter() {
	subscriptionApi := api.AppGroupApp.SubscriptionApi
	subscriptionRouter := router.Group("subscription")
	subscriptionRouter.Use(middleware.JwtAuth())
	subscriptionRouter.GET("me", subscriptionApi.Me)
	subscriptionRouter.POST("request", subscriptionApi.RequestCreate)
}
