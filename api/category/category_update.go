package category

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CategoryUpdateRequest struct {
	ID   uint   `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// CategoryUpdate 更新分类名称
func (ca *Category) CategoryUpdate(c *gin.Context) {
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
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

	if err := category.Update(req.Name); err != nil {
		global.Log.Error("category.Update() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新分类失败")
		return
	}

	res.Success(c, category)
}
