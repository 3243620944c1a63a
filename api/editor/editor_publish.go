package editor

import (
	"strconv"

	"paperly/middleware"
	"paperly/models"
	"paperly/models/res"
	"paperly/service/redis_ser"
	"paperly/service/workflow_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ArticlePublish 上线稿件
func (e *Editor) ArticlePublish(c *gin.Context) {
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
	if err := workflow_ser.Publish(req.ID, claims.UserID); err != nil {
		editorWorkflowError(c, err, "上线稿件失败")
		return
	}

	_ = redis_ser.AddToBloomFilter(strconv.Itoa(int(req.ID)))
	_ = redis_ser.ClearPageCache()
	res.SuccessWithMsg(c, nil, "已上线")
}

// ArticleUnpublish 下线稿件
func (e *Editor) ArticleUnpublish(c *gin.Context) {
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
	if err := workflow_ser.Unpublish(req.ID, claims.UserID); err != nil {
		editorWorkflowError(c, err, "下线稿件失败")
		return
	}

	_ = redis_ser.ClearPageCache()
	res.SuccessWithMsg(c, nil, "已下线")
}
