package writer

import (
	"errors"

	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/workflow_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ArticleUpdateRequest struct {
	ID        uint   `json:"id" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Thumbnail string `json:"thumbnail"`
	Abstract  string `json:"abstract" validate:"max=500"`
	Content   string `json:"content" validate:"required"`
	Markdown  bool   `json:"markdown"`
	TagIDs    []uint `json:"tag_ids"`
}

// ArticleUpdate 作者修改稿件，修改后回到草稿状态
func (w *Writer) ArticleUpdate(c *gin.Context) {
	var req ArticleUpdateRequest
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

	err := workflow_ser.Update(req.ID, claims.UserID, workflow_ser.UpdateContent{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Abstract:  abstract,
		Content:   content,
		TagIDs:    req.TagIDs,
	})
	if err != nil {
		writerWorkflowError(c, err, "更新文章失败")
		return
	}

	res.SuccessWithMsg(c, nil, "更新成功")
}

// writerWorkflowError 统一翻译工作流错误
func writerWorkflowError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrArticleNotFound):
		res.Error(c, res.ArticleNotFound, "文章不存在")
	case errors.Is(err, models.ErrNotAuthor):
		res.Error(c, res.NotAuthor, "只有作者本人可以操作该文章")
	case errors.Is(err, models.ErrInvalidState):
		res.Error(c, res.InvalidState, "文章当前状态不允许该操作")
	case errors.Is(err, models.ErrTagNotFound):
		res.Error(c, res.NotFound, "标签不存在")
	default:
		global.Log.Error("workflow failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, fallback)
	}
}
