package tag

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type TagCreateRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// TagCreate 创建标签
func (t *Tag) TagCreate(c *gin.Context) {
	var req TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	tag := models.TagModel{Name: req.Name}
	if err := tag.Create(); err != nil {
		global.Log.Error("tag.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.Conflict, err.Error())
		return
	}
	res.Success(c, tag)
}

// TagDelete 删除标签
func (t *Tag) TagDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var tag models.TagModel
	if err := global.DB.Take(&tag, req.ID).Error; err != nil {
		res.Error(c, res.NotFound, "标签不存在")
		return
	}

	if err := tag.Delete(); err != nil {
		global.Log.Error("tag.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除标签失败")
		return
	}
	res.SuccessWithMsg(c, nil, "删除成功")
}

// TagList 标签列表
func (t *Tag) TagList(c *gin.Context) {
	list, err := models.TagList()
	if err != nil {
		global.Log.Error("models.TagList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取标签失败")
		return
	}
	res.Success(c, list)
}
