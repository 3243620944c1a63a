package admin

import (
	"errors"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type RequestListRequest struct {
	models.PageInfo
	Status ctypes.RequestStatus `json:"status" form:"status"`
}

// SubscriptionRequestList 订阅申请列表
func (a *Admin) SubscriptionRequestList(c *gin.Context) {
	var req RequestListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req.PageInfo); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, total, err := models.SubscriptionRequestList(req.PageInfo, req.Status)
	if err != nil {
		global.Log.Error("models.SubscriptionRequestList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取订阅申请失败")
		return
	}
	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

// SubscriptionRequestApprove 批准订阅申请
func (a *Admin) SubscriptionRequestApprove(c *gin.Context) {
	request, ok := a.findRequest(c)
	if !ok {
		return
	}

	if err := request.Approve(); err != nil {
		if errors.Is(err, models.ErrRequestHandled) {
			res.Error(c, res.InvalidState, "订阅申请已处理")
			return
		}
		global.Log.Error("request.Approve() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "批准订阅申请失败")
		return
	}

	res.SuccessWithMsg(c, nil, "已批准")
}

// SubscriptionRequestReject 驳回订阅申请
func (a *Admin) SubscriptionRequestReject(c *gin.Context) {
	request, ok := a.findRequest(c)
	if !ok {
		return
	}

	if err := request.Reject(); err != nil {
		if errors.Is(err, models.ErrRequestHandled) {
			res.Error(c, res.InvalidState, "订阅申请已处理")
			return
		}
		global.Log.Error("request.Reject() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "驳回订阅申请失败")
		return
	}

	res.SuccessWithMsg(c, nil, "已驳回")
}

func (a *Admin) findRequest(c *gin.Context) (*models.SubscriptionRequestModel, bool) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return nil, false
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return nil, false
	}

	var request models.SubscriptionRequestModel
	if err := global.DB.Take(&request, req.ID).Error; err != nil {
		res.Error(c, res.RequestNotFound, "订阅申请不存在")
		return nil, false
	}
	return &request, true
}
