package writer

import (
	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ArticleMine 作者查看自己的稿件列表
func (w *Writer) ArticleMine(c *gin.Context) {
	var req models.ArticleListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req.PageInfo); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)
	req.AuthorID = claims.UserID

	list, total, err := models.ArticleList(req)
	if err != nil {
		global.Log.Error("models.ArticleList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取文章列表失败")
		return
	}

	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

// ArticleRejections 作者查看某篇稿件的拒绝记录
func (w *Writer) ArticleRejections(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)

	var article models.ArticleModel
	if err := article.FindByID(req.ID); err != nil {
		res.Error(c, res.ArticleNotFound, "文章不存在")
		return
	}
	if article.AuthorID != claims.UserID {
		res.Error(c, res.NotAuthor, "只有作者本人可以操作该文章")
		return
	}

	list, err := models.ArticleRejections(req.ID)
	if err != nil {
		res.Error(c, res.DBError, "获取拒绝记录失败")
		return
	}
	res.Success(c, list)
}
