package flags

import (
	"fmt"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/utils"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	fullName := c.String("full_name")
	email := c.String("email")
	password := c.String("password")
	role := ctypes.UserRole(c.String("role"))
	ip := "127.0.0.1"

	if !role.IsValid() {
		role = ctypes.RoleAdmin
	}

	// 未指定邮箱时用雪花ID生成一个
	if email == "" {
		id, err := utils.GenerateID()
		if err != nil {
			global.Log.Error("生成邮箱失败", zap.String("error", err.Error()))
			return err
		}
		email = fmt.Sprintf("user%d@paperly.local", id)
	}

	user := &models.UserModel{
		FullName: fullName,
		Email:    email,
		Password: password,
		Role:     role,
	}

	if err := user.Create(ip); err != nil {
		global.Log.Error("用户创建失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Infof("用户%s创建成功,email:%s,role:%s", fullName, user.Email, string(role))
	return nil
}
