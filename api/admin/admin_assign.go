package admin

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

type AssignCategoriesRequest struct {
	EditorID    uint   `json:"editor_id" validate:"required,gt=0"`
	CategoryIDs []uint `json:"category_ids"`
}

// AssignCategories 整体替换编辑的分类授权
func (a *Admin) AssignCategories(c *gin.Context) {
	var req AssignCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	err := models.AssignEditorCategories(req.EditorID, req.CategoryIDs)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotEditor):
			res.Error(c, res.InvalidParameter, "目标用户不是编辑")
		case errors.Is(err, models.ErrCategoryNotFound):
			res.Error(c, res.NotFound, "分类不存在")
		default:
			global.Log.Error("models.AssignEditorCategories() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "分配分类失败")
		}
		return
	}

	res.SuccessWithMsg(c, nil, "分配成功")
}

type EditorCategoryRequest struct {
	EditorID   uint `json:"editor_id" validate:"required,gt=0"`
	CategoryID uint `json:"category_id" validate:"required,gt=0"`
}

// GrantCategory 为编辑增加单个分类授权
func (a *Admin) GrantCategory(c *gin.Context) {
	var req EditorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := models.GrantEditorCategory(req.EditorID, req.CategoryID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotEditor):
			res.Error(c, res.InvalidParameter, "目标用户不是编辑")
		case errors.Is(err, models.ErrCategoryNotFound):
			res.Error(c, res.NotFound, "分类不存在")
		default:
			global.Log.Error("models.GrantEditorCategory() failed", zap.String("error", err.Error()))
			res.Error(c, res.DBError, "分配分类失败")
		}
		return
	}
	res.SuccessWithMsg(c, nil, "分配成功")
}

// RevokeCategory 撤销编辑的单个分类授权
func (a *Admin) RevokeCategory(c *gin.Context) {
	var req EditorCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := models.RevokeEditorCategory(req.EditorID, req.CategoryID); err != nil {
		global.Log.Error("models.RevokeEditorCategory() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "撤销授权失败")
		return
	}
	res.SuccessWithMsg(c, nil, "已撤销")
}

// CategoryEditorList 查看被授权某分类的编辑
func (a *Admin) CategoryEditorList(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, err := models.CategoryEditors(req.ID)
	if err != nil {
		res.Error(c, res.DBError, "获取编辑列表失败")
		return
	}
	res.Success(c, list)
}

// EditorCategoryList 查看某编辑的分类授权
func (a *Admin) EditorCategoryList(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, err := models.EditorCategories(req.ID)
	if err != nil {
		res.Error(c, res.DBError, "获取分类授权失败")
		return
	}
	res.Success(c, list)
}
