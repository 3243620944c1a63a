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

type ArticleCreateRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Thumbnail string `json:"thumbnail"`
	Abstract  string `json:"abstract" validate:"max=500"`
	Content   string `json:"content" validate:"required"`
	Markdown  bool   `json:"markdown"` // 内容为Markdown时先转为HTML
}

// ArticleCreate 作者创建草稿
func (w *Writer) ArticleCreate(c *gin.Context) {
	var req ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)

	content := req.Content
	if req.Markdown {
		content = utils.MarkdownToHTML(content)
	}

	abstract := req.Abstract
	if abstract == "" {
		abstract = utils.ExtractText(content, 200)
	}

	article := models.ArticleModel{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Abstract:  abstract,
		Content:   content,
		AuthorID:  claims.UserID,
	}
	if err := article.Create(); err != nil {
		global.Log.Error("article.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "创建文章失败")
		return
	}

	res.Success(c, article)
}
