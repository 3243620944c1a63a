package article

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/search_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ArticleSearch 全文搜索已发布文章，按相关度排序
func (a *Article) ArticleSearch(c *gin.Context) {
	var req models.PageInfo
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, total, err := search_ser.Search(req.Key, req)
	if err != nil {
		global.Log.Error("search_ser.Search() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "搜索失败")
		return
	}

	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}
