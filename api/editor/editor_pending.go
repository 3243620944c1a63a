package editor

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

// PendingList 待审稿件列表
func (e *Editor) PendingList(c *gin.Context) {
	var req models.PageInfo
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, total, err := models.ArticleList(models.ArticleListQuery{
		PageInfo: req,
		Status:   ctypes.StatusPending,
	})
	if err != nil {
		global.Log.Error("models.ArticleList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取待审稿件失败")
		return
	}

	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

// MyCategories 编辑查看自己被授权的分类
func (e *Editor) MyCategories(c *gin.Context) {
	claims := middleware.GetClaims(c)
	list, err := models.EditorCategories(claims.UserID)
	if err != nil {
		res.Error(c, res.DBError, "获取分类失败")
		return
	}
	res.Success(c, list)
}
