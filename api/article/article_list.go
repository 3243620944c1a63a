package article

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ArticleList 公开文章列表，只返回已发布文章
func (a *Article) ArticleList(c *gin.Context) {
	var req models.ArticleListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req.PageInfo); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	req.Status = ctypes.StatusPublished
	list, total, err := models.ArticleList(req)
	if err != nil {
		global.Log.Error("models.ArticleList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取文章列表失败")
		return
	}

	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}
