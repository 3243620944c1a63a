package editor

import (
	"errors"

	"paperly/global"
	"paperly/models"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Editor struct{}

// editorWorkflowError 统一翻译审稿流程错误
func editorWorkflowError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrArticleNotFound):
		res.Error(c, res.ArticleNotFound, "文章不存在")
	case errors.Is(err, models.ErrInvalidState):
		res.Error(c, res.InvalidState, "文章当前状态不允许该操作")
	case errors.Is(err, models.ErrCategoryDenied):
		res.Error(c, res.CategoryDenied, "编辑未被分配该分类")
	case errors.Is(err, models.ErrCategoryNotFound):
		res.Error(c, res.NotFound, "分类不存在")
	case errors.Is(err, models.ErrTagNotFound):
		res.Error(c, res.NotFound, "标签不存在")
	default:
		global.Log.Error("workflow failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, fallback)
	}
}
