package comment

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CommentList 文章评论树
func (co *Comment) CommentList(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	tree, err := models.GetArticleCommentsWithTree(req.ID)
	if err != nil {
		global.Log.Error("models.GetArticleCommentsWithTree() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取评论失败")
		return
	}
	res.Success(c, tree)
}
