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

type CategoryCreateRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID *uint  `json:"parent_id"`
}

// CategoryCreate 创建分类，最多两级
func (ca *Category) CategoryCreate(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	category := models.CategoryModel{Name: req.Name, ParentID: req.ParentID}
	if err := category.Create(); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			res.Error(c, res.NotFound, "父分类不存在")
		case errors.Is(err, models.ErrCategoryTooDeep):
			res.Error(c, res.InvalidParameter, "分类最多支持两级")
		default:
			global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
			res.Error(c, res.Conflict, err.Error())
		}
		return
	}

	res.Success(c, category)
}
