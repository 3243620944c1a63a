package comment

import (
	"errors"

	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CommentCreateRequest struct {
	ArticleID       uint   `json:"article_id" validate:"required,gt=0"`
	ParentCommentID *uint  `json:"parent_comment_id"`
	Content         string `json:"content" validate:"required"`
}

// CommentCreate 发表评论
func (co *Comment) CommentCreate(c *gin.Context) {
	var req CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)

	comment := models.CommentModel{
		ArticleID:       req.ArticleID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
		UserID:          claims.UserID,
	}
	if err := models.CommentCreate(&comment); err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyContent), errors.Is(err, models.ErrContentTooLong):
			res.Error(c, res.InvalidParameter, err.Error())
		case errors.Is(err, models.ErrParentCommentNotExist):
			res.Error(c, res.NotFound, "父评论不存在")
		case errors.Is(err, models.ErrArticleNotFound):
			res.Error(c, res.ArticleNotFound, "文章不存在")
		default:
			global.Log.Error("models.CommentCreate() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "发表评论失败")
		}
		return
	}

	res.Success(c, comment)
}
