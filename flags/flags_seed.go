package flags

import (
	"paperly/global"
	"paperly/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Seed 写入初始顶级分类
func Seed(c *cli.Context) error {
	names := []string{"时政", "财经", "科技", "文化", "体育"}
	for _, name := range names {
		category := models.CategoryModel{Name: name}
		if err := category.Create(); err != nil {
			global.Log.Warn("初始分类写入跳过",
				zap.String("name", name),
				zap.String("error", err.Error()),
			)
			continue
		}
	}
	global.Log.Info("初始分类写入完成")
	return nil
}
