package image

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ImageDelete 删除图片
func (i *Image) ImageDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var image models.ImageModel
	if err := global.DB.First(&image, req.ID).Error; err != nil {
		res.Error(c, res.NotFound, "图片不存在")
		return
	}

	if err := global.DB.Delete(&image).Error; err != nil {
		global.Log.Error("image.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "图片删除失败")
		return
	}
	res.SuccessWithMsg(c, nil, "删除成功")
}
