package admin

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserListRequest struct {
	models.PageInfo
	Role ctypes.UserRole `json:"role" form:"role"`
}

// UserList 用户列表，支持按角色过滤
func (a *Admin) UserList(c *gin.Context) {
	var req UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req.PageInfo); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	list, total, err := models.UserList(req.PageInfo, req.Role)
	if err != nil {
		global.Log.Error("models.UserList() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取用户列表失败")
		return
	}

	res.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

type UserRoleRequest struct {
	ID   uint            `json:"id" validate:"required,gt=0"`
	Role ctypes.UserRole `json:"role" validate:"required"`
}

// UserRoleUpdate 调整用户角色
func (a *Admin) UserRoleUpdate(c *gin.Context) {
	var req UserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}
	if !req.Role.IsValid() {
		res.Error(c, res.InvalidParameter, "无效的用户角色")
		return
	}

	var user models.UserModel
	if err := user.FindByID(req.ID); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	if err := user.UpdateRole(req.Role); err != nil {
		global.Log.Error("user.UpdateRole() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "更新用户角色失败")
		return
	}

	res.Success(c, user)
}

// UserDelete 删除用户
func (a *Admin) UserDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var user models.UserModel
	if err := user.FindByID(req.ID); err != nil {
		res.Error(c, res.UserNotFound, "用户不存在")
		return
	}

	if err := user.Delete(); err != nil {
		global.Log.Error("user.Delete() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "删除用户失败")
		return
	}

	res.SuccessWithMsg(c, nil, "删除成功")
}
