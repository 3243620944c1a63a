package models

import (
	"testing"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate(t *testing.T) {
	setupTestDB(t)

	user := UserModel{
		FullName: "张三",
		Email:    "zhangsan@test.local",
		Password: "password123",
		Role:     ctypes.RoleGuest,
	}
	require.NoError(t, user.Create("127.0.0.1"))
	assert.NotZero(t, user.ID)

	// 密码已加密存储
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, user.ValidatePassword("password123"))
	assert.False(t, user.ValidatePassword("wrong"))
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "dup@test.local", ctypes.RoleGuest)

	user := UserModel{
		FullName: "李四",
		Email:    "dup@test.local",
		Password: "password123",
		Role:     ctypes.RoleGuest,
	}
	assert.Error(t, user.Create("127.0.0.1"))
}

func TestUserCreateInvalidRole(t *testing.T) {
	setupTestDB(t)

	user := UserModel{
		FullName: "王五",
		Email:    "wangwu@test.local",
		Password: "password123",
		Role:     ctypes.UserRole("superuser"),
	}
	assert.Error(t, user.Create("127.0.0.1"))
}

func TestUserUpdateProfileFiltersSensitive(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "user@test.local", ctypes.RoleGuest)

	err := user.UpdateProfile(map[string]interface{}{
		"full_name": "新名字",
		"role":      ctypes.RoleAdmin,
		"email":     "hacker@test.local",
		"password":  "plain",
	})
	require.NoError(t, err)

	var fresh UserModel
	require.NoError(t, fresh.FindByID(user.ID))
	assert.Equal(t, "新名字", fresh.FullName)
	assert.Equal(t, ctypes.RoleGuest, fresh.Role)
	assert.Equal(t, "user@test.local", fresh.Email)
}

func TestUserUpdateRoleClearsAssignments(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	category := createTestCategory(t, "时政")
	require.NoError(t, AssignEditorCategories(editor.ID, []uint{category.ID}))

	// 失去编辑身份后分类授权被清空
	require.NoError(t, editor.UpdateRole(ctypes.RoleWriter))

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestUserDeleteClearsAssignments(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	category := createTestCategory(t, "时政")
	require.NoError(t, AssignEditorCategories(editor.ID, []uint{category.ID}))

	require.NoError(t, editor.Delete())

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestUserDeleteCascades(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)
	reader := createTestUser(t, "reader@test.local", ctypes.RoleGuest)

	article := ArticleModel{Title: "文章", Content: "正文", AuthorID: writer.ID, Status: ctypes.StatusPublished}
	require.NoError(t, global.DB.Create(&article).Error)

	comment := CommentModel{Content: "评论", ArticleID: article.ID, UserID: reader.ID}
	require.NoError(t, CommentCreate(&comment))
	_, err := ExtendSubscription(reader.ID, 7)
	require.NoError(t, err)
	request := SubscriptionRequestModel{UserID: reader.ID, Days: 30}
	require.NoError(t, request.Create())

	require.NoError(t, reader.Delete())

	// 评论、订阅和订阅申请随用户一并清理
	var comments, subs, requests int64
	require.NoError(t, global.DB.Model(&CommentModel{}).Where("user_id = ?", reader.ID).Count(&comments).Error)
	require.NoError(t, global.DB.Model(&SubscriptionModel{}).Where("user_id = ?", reader.ID).Count(&subs).Error)
	require.NoError(t, global.DB.Model(&SubscriptionRequestModel{}).Where("user_id = ?", reader.ID).Count(&requests).Error)
	assert.Zero(t, comments)
	assert.Zero(t, subs)
	assert.Zero(t, requests)
}

func TestUserListByRole(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "w1@test.local", ctypes.RoleWriter)
	createTestUser(t, "w2@test.local", ctypes.RoleWriter)
	createTestUser(t, "e1@test.local", ctypes.RoleEditor)

	list, total, err := UserList(PageInfo{Page: 1, PageSize: 10}, ctypes.RoleWriter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	_, total, err = UserList(PageInfo{Page: 1, PageSize: 10}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}
