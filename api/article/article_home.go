package article

import (
	"paperly/global"
	"paperly/models/res"
	"paperly/service/search_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleHome 首页聚合数据
func (a *Article) ArticleHome(c *gin.Context) {
	data, err := search_ser.HomePage()
	if err != nil {
		global.Log.Error("search_ser.HomePage() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取首页数据失败")
		return
	}
	res.Success(c, data)
}
