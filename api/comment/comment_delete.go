package comment

import (
	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CommentDelete 删除评论，评论作者和管理员可操作
func (co *Comment) CommentDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var comment models.CommentModel
	if err := global.DB.Take(&comment, req.ID).Error; err != nil {
		res.Error(c, res.NotFound, "评论不存在")
		return
	}

	claims := middleware.GetClaims(c)
	if claims.UserID != comment.UserID && claims.Role != ctypes.RoleAdmin {
		res.Error(c, res.PermissionDenied, "权限不足")
		return
	}

	if err := models.CommentDelete(comment.ID, comment.ArticleID); err != nil {
		global.Log.Error("models.CommentDelete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除评论失败")
		return
	}
	res.SuccessWithMsg(c, nil, "删除成功")
}
