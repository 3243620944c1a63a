package editor

import (
	"paperly/middleware"
	"paperly/models/res"
	"paperly/service/workflow_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ArticleRejectRequest struct {
	ID     uint   `json:"id" validate:"required,gt=0"`
	Reason string `json:"reason" validate:"required,min=1,max=1000"`
}

// ArticleReject 拒绝稿件并记录原因
func (e *Editor) ArticleReject(c *gin.Context) {
	var req ArticleRejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)
	if err := workflow_ser.Reject(req.ID, claims.UserID, req.Reason); err != nil {
		editorWorkflowError(c, err, "拒绝稿件失败")
		return
	}

	res.SuccessWithMsg(c, nil, "已拒绝")
}
