package router

import (
	"net/http"

	"paperly/core"
	"paperly/global"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	//设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	//将指定目录下的文件提供给客户端
	router.StaticFS("uploads", http.Dir("uploads"))
	//创建路由组
	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.SystemRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.ArticleRouter()
	routerGroupApp.WriterRouter()
	routerGroupApp.EditorRouter()
	routerGroupApp.AdminRouter()
	routerGroupApp.CategoryRouter()
	routerGroupApp.TagRouter()
	routerGroupApp.CommentRouter()
	routerGroupApp.SubscriptionRouter()
	routerGroupApp.ImageRouter()
	return router
}
