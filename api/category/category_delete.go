package category

import (
	"errors"

	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// CategoryDelete 删除分类，分类下仍有文章或子分类时拒绝
func (ca *Category) CategoryDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var category models.CategoryModel
	if err := global.DB.Take(&category, req.ID).Error; err != nil {
		res.Error(c, res.NotFound, "分类不存在")
		return
	}

	if err := category.Delete(); err != nil {
		if errors.Is(err, models.ErrCategoryInUse) {
			res.Error(c, res.Conflict, "分类下仍有文章或子分类")
			return
		}
		global.Log.Error("category.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除分类失败")
		return
	}

	res.SuccessWithMsg(c, nil, "删除成功")
}
