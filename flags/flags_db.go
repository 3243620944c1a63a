package flags

import (
	"paperly/global"
	"paperly/models"
	"paperly/service/search_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.AutoMigrate(
		&models.UserModel{},
		&models.ArticleModel{},
		&models.ArticleTagModel{},
		&models.ArticleRejectionModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.EditorCategoryModel{},
		&models.SubscriptionModel{},
		&models.SubscriptionRequestModel{},
		&models.CommentModel{},
		&models.OtpModel{},
		&models.ImageModel{},
		&models.LogModel{},
	)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}

	if err = search_ser.InstallSearchVector(); err != nil {
		global.Log.Error("安装全文搜索触发器失败", zap.String("error", err.Error()))
		return nil
	}

	global.Log.Info("生成数据库表结构成功")
	return nil
}
