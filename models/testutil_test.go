package models

import (
	"fmt"
	"testing"

	"paperly/global"
	"paperly/models/ctypes"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 在内存sqlite上建表并接管全局句柄
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&UserModel{},
		&ArticleModel{},
		&ArticleTagModel{},
		&ArticleRejectionModel{},
		&CategoryModel{},
		&TagModel{},
		&EditorCategoryModel{},
		&SubscriptionModel{},
		&SubscriptionRequestModel{},
		&CommentModel{},
		&OtpModel{},
		&LogModel{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	global.DB = db
	global.Log = zap.NewNop().Sugar()

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
}

// createTestUser 直接写库，绕过密码加密以加快测试
func createTestUser(t *testing.T, email string, role ctypes.UserRole) UserModel {
	t.Helper()

	user := UserModel{
		FullName: "测试用户",
		Email:    email,
		Password: "test-password-hash",
		Role:     role,
	}
	if err := global.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

func createTestCategory(t *testing.T, name string) CategoryModel {
	t.Helper()

	category := CategoryModel{Name: name}
	if err := global.DB.Create(&category).Error; err != nil {
		t.Fatalf("创建测试分类失败: %v", err)
	}
	return category
}
