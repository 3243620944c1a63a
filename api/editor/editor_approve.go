package editor

import (
	"paperly/middleware"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/service/workflow_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ArticleApproveRequest struct {
	ID          uint           `json:"id" validate:"required,gt=0"`
	CategoryID  uint           `json:"category_id" validate:"required,gt=0"`
	TagIDs      []uint         `json:"tag_ids"`
	IsPremium   bool           `json:"is_premium"`
	PublishedAt *ctypes.MyTime `json:"published_at"`
}

// ArticleApprove 批准稿件并指定分类和标签，可以预设发布时间
func (e *Editor) ArticleApprove(c *gin.Context) {
	var req ArticleApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	claims := middleware.GetClaims(c)
	if err := workflow_ser.Approve(req.ID, claims.UserID, req.CategoryID, req.TagIDs, req.IsPremium, req.PublishedAt); err != nil {
		editorWorkflowError(c, err, "批准稿件失败")
		return
	}

	res.SuccessWithMsg(c, nil, "已批准")
}
