package writer

import (
	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/workflow_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ArticleSubmit 作者提交稿件进入审核
func (w *Writer) ArticleSubmit(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)
	if err := workflow_ser.Submit(req.ID, claims.UserID); err != nil {
		writerWorkflowError(c, err, "提交审核失败")
		return
	}

	res.SuccessWithMsg(c, nil, "已提交审核")
}
