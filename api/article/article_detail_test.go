package article

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 在内存sqlite上建表并接管全局句柄
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:article_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.ArticleModel{},
		&models.ArticleTagModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.SubscriptionModel{},
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

// detailRequest 以给定身份请求文章详情，返回响应信封
func detailRequest(t *testing.T, articleID uint, claims *utils.CustomClaims) res.StandardResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/article/"+strconv.Itoa(int(articleID)), nil)
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(articleID))}}
	if claims != nil {
		c.Set("claims", claims)
	}

	var api Article
	api.ArticleDetail(c)

	var body res.StandardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func claimsFor(user models.UserModel) *utils.CustomClaims {
	return &utils.CustomClaims{
		PayLoad: utils.PayLoad{
			Email:  user.Email,
			Role:   user.Role,
			UserID: user.ID,
		},
	}
}

func TestArticleDetailDraftVisibleToAuthor(t *testing.T) {
	setupTestDB(t)
	writer := models.UserModel{FullName: "作者", Email: "writer@test.local", Password: "x", Role: ctypes.RoleWriter}
	require.NoError(t, global.DB.Create(&writer).Error)

	draft := models.ArticleModel{Title: "草稿预览", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, draft.Create())

	// 作者可以预览自己的草稿
	body := detailRequest(t, draft.ID, claimsFor(writer))
	assert.True(t, body.Success)
}

func TestArticleDetailPendingVisibleToEditor(t *testing.T) {
	setupTestDB(t)
	writer := models.UserModel{FullName: "作者", Email: "writer@test.local", Password: "x", Role: ctypes.RoleWriter}
	require.NoError(t, global.DB.Create(&writer).Error)
	editor := models.UserModel{FullName: "编辑", Email: "editor@test.local", Password: "x", Role: ctypes.RoleEditor}
	require.NoError(t, global.DB.Create(&editor).Error)

	pending := models.ArticleModel{Title: "待审稿件", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, pending.Create())
	require.NoError(t, pending.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPending, nil))

	// 编辑可以查看待审稿件
	body := detailRequest(t, pending.ID, claimsFor(editor))
	assert.True(t, body.Success)
}

func TestArticleDetailDraftHiddenFromOthers(t *testing.T) {
	setupTestDB(t)
	writer := models.UserModel{FullName: "作者", Email: "writer@test.local", Password: "x", Role: ctypes.RoleWriter}
	require.NoError(t, global.DB.Create(&writer).Error)
	other := models.UserModel{FullName: "路人", Email: "other@test.local", Password: "x", Role: ctypes.RoleGuest}
	require.NoError(t, global.DB.Create(&other).Error)

	draft := models.ArticleModel{Title: "草稿", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, draft.Create())

	// 匿名访问和无关用户都看不到非发布状态的文章
	body := detailRequest(t, draft.ID, nil)
	assert.Equal(t, res.ArticleNotFound, body.Code)

	body = detailRequest(t, draft.ID, claimsFor(other))
	assert.Equal(t, res.ArticleNotFound, body.Code)
}

func TestArticleDetailNotFound(t *testing.T) {
	setupTestDB(t)

	body := detailRequest(t, 99999, nil)
	assert.Equal(t, res.ArticleNotFound, body.Code)
}
