package workflow_ser

import (
	"fmt"
	"testing"
	"time"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"

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

	dsn := fmt.Sprintf("file:workflow_%s?mode=memory&cache=shared", t.Name())
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
		&models.ArticleRejectionModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.EditorCategoryModel{},
		&models.CommentModel{},
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

type workflowFixture struct {
	writer   models.UserModel
	editor   models.UserModel
	category models.CategoryModel
	article  models.ArticleModel
}

// newFixture 准备一个作者、一个持有分类授权的编辑和一篇草稿
func newFixture(t *testing.T) *workflowFixture {
	t.Helper()
	setupTestDB(t)

	f := &workflowFixture{}
	f.writer = models.UserModel{FullName: "作者", Email: "writer@test.local", Password: "x", Role: ctypes.RoleWriter}
	require.NoError(t, global.DB.Create(&f.writer).Error)
	f.editor = models.UserModel{FullName: "编辑", Email: "editor@test.local", Password: "x", Role: ctypes.RoleEditor}
	require.NoError(t, global.DB.Create(&f.editor).Error)

	f.category = models.CategoryModel{Name: "时政"}
	require.NoError(t, global.DB.Create(&f.category).Error)
	require.NoError(t, models.AssignEditorCategories(f.editor.ID, []uint{f.category.ID}))

	f.article = models.ArticleModel{Title: "稿件", Content: "正文", AuthorID: f.writer.ID}
	require.NoError(t, f.article.Create())
	return f
}

func (f *workflowFixture) reload(t *testing.T) models.ArticleModel {
	t.Helper()
	var fresh models.ArticleModel
	require.NoError(t, fresh.FindByID(f.article.ID))
	return fresh
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	assert.Equal(t, ctypes.StatusPending, f.reload(t).Status)

	// 已在待审状态，重复提交失败
	assert.ErrorIs(t, Submit(f.article.ID, f.writer.ID), models.ErrInvalidState)
}

func TestSubmitNotAuthor(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, Submit(f.article.ID, f.editor.ID), models.ErrNotAuthor)
}

func TestApprove(t *testing.T) {
	f := newFixture(t)
	tag := models.TagModel{Name: "热点"}
	require.NoError(t, global.DB.Create(&tag).Error)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, []uint{tag.ID}, true, nil))

	fresh := f.reload(t)
	assert.Equal(t, ctypes.StatusApproved, fresh.Status)
	assert.True(t, fresh.IsPremium)
	require.NotNil(t, fresh.CategoryID)
	assert.Equal(t, f.category.ID, *fresh.CategoryID)
	require.NotNil(t, fresh.EditorID)
	assert.Equal(t, f.editor.ID, *fresh.EditorID)

	tags, err := models.ArticleTags(f.article.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "热点", tags[0].Name)
}

func TestApproveWithPublishedAt(t *testing.T) {
	f := newFixture(t)

	preset := ctypes.MyTime(time.Date(2026, 8, 15, 8, 0, 0, 0, time.Local))
	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, nil, false, &preset))

	fresh := f.reload(t)
	require.NotNil(t, fresh.PublishedAt)
	assert.True(t, fresh.PublishedAt.Time().Equal(preset.Time()))

	// 上线时不覆盖预设的发布时间
	require.NoError(t, Publish(f.article.ID, f.editor.ID))
	fresh = f.reload(t)
	require.NotNil(t, fresh.PublishedAt)
	assert.True(t, fresh.PublishedAt.Time().Equal(preset.Time()))
}

func TestApproveUnauthorizedCategory(t *testing.T) {
	f := newFixture(t)
	other := models.CategoryModel{Name: "财经"}
	require.NoError(t, global.DB.Create(&other).Error)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	err := Approve(f.article.ID, f.editor.ID, other.ID, nil, false, nil)
	assert.ErrorIs(t, err, models.ErrCategoryDenied)
	assert.Equal(t, ctypes.StatusPending, f.reload(t).Status)
}

func TestApproveNotPending(t *testing.T) {
	f := newFixture(t)
	err := Approve(f.article.ID, f.editor.ID, f.category.ID, nil, false, nil)
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestRejectAndResubmit(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Reject(f.article.ID, f.editor.ID, "事实核查不通过"))
	assert.Equal(t, ctypes.StatusRejected, f.reload(t).Status)

	rejections, err := models.ArticleRejections(f.article.ID)
	require.NoError(t, err)
	require.Len(t, rejections, 1)
	assert.Equal(t, "事实核查不通过", rejections[0].Reason)

	// 被拒稿件可以直接重新提交
	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	assert.Equal(t, ctypes.StatusPending, f.reload(t).Status)
}

func TestRejectRequiresReason(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	assert.Error(t, Reject(f.article.ID, f.editor.ID, ""))
}

func TestApproveClearsRejections(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Reject(f.article.ID, f.editor.ID, "需要补充来源"))
	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, nil, false, nil))

	rejections, err := models.ArticleRejections(f.article.ID)
	require.NoError(t, err)
	assert.Empty(t, rejections)
}

func TestPublishLifecycle(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, nil, false, nil))
	require.NoError(t, Publish(f.article.ID, f.editor.ID))

	fresh := f.reload(t)
	assert.Equal(t, ctypes.StatusPublished, fresh.Status)
	require.NotNil(t, fresh.PublishedAt)
	firstPublished := fresh.PublishedAt.Time()

	// 下线后保留发布时间
	require.NoError(t, Unpublish(f.article.ID, f.editor.ID))
	fresh = f.reload(t)
	assert.Equal(t, ctypes.StatusUnpublished, fresh.Status)
	require.NotNil(t, fresh.PublishedAt)

	// 再次上线不改写首次发布时间
	require.NoError(t, Publish(f.article.ID, f.editor.ID))
	fresh = f.reload(t)
	assert.Equal(t, ctypes.StatusPublished, fresh.Status)
	require.NotNil(t, fresh.PublishedAt)
	assert.Equal(t, firstPublished.Unix(), fresh.PublishedAt.Time().Unix())
}

func TestPublishRequiresApproved(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, Publish(f.article.ID, f.editor.ID), models.ErrInvalidState)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	assert.ErrorIs(t, Publish(f.article.ID, f.editor.ID), models.ErrInvalidState)
}

func TestUnpublishUnauthorizedEditor(t *testing.T) {
	f := newFixture(t)
	outsider := models.UserModel{FullName: "编辑2", Email: "other@test.local", Password: "x", Role: ctypes.RoleEditor}
	require.NoError(t, global.DB.Create(&outsider).Error)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, nil, false, nil))
	require.NoError(t, Publish(f.article.ID, f.editor.ID))

	// 未持有分类授权的编辑不能下线稿件
	assert.ErrorIs(t, Unpublish(f.article.ID, outsider.ID), models.ErrCategoryDenied)
}

func TestUpdateResetsToDraft(t *testing.T) {
	f := newFixture(t)
	tag := models.TagModel{Name: "旧标签"}
	require.NoError(t, global.DB.Create(&tag).Error)
	newTag := models.TagModel{Name: "新标签"}
	require.NoError(t, global.DB.Create(&newTag).Error)

	require.NoError(t, Submit(f.article.ID, f.writer.ID))
	require.NoError(t, Approve(f.article.ID, f.editor.ID, f.category.ID, []uint{tag.ID}, false, nil))
	require.NoError(t, Publish(f.article.ID, f.editor.ID))

	// 已发布稿件被作者修改后回到草稿，标签整体替换
	err := Update(f.article.ID, f.writer.ID, UpdateContent{
		Title:   "修订版",
		Content: "修订后的正文",
		TagIDs:  []uint{newTag.ID},
	})
	require.NoError(t, err)

	fresh := f.reload(t)
	assert.Equal(t, ctypes.StatusDraft, fresh.Status)
	assert.Equal(t, "修订版", fresh.Title)

	tags, err := models.ArticleTags(f.article.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "新标签", tags[0].Name)
}

func TestUpdateDraftStaysDraft(t *testing.T) {
	f := newFixture(t)

	err := Update(f.article.ID, f.writer.ID, UpdateContent{Title: "改标题", Content: "正文"})
	require.NoError(t, err)

	fresh := f.reload(t)
	assert.Equal(t, ctypes.StatusDraft, fresh.Status)
	assert.Equal(t, "改标题", fresh.Title)
}

func TestUpdatePendingBlocked(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, Submit(f.article.ID, f.writer.ID))

	err := Update(f.article.ID, f.writer.ID, UpdateContent{Title: "偷改", Content: "正文"})
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

func TestDeleteAuthorOnly(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, Delete(f.article.ID, f.editor.ID), models.ErrNotAuthor)
	require.NoError(t, Delete(f.article.ID, f.writer.ID))

	var fresh models.ArticleModel
	assert.ErrorIs(t, fresh.FindByID(f.article.ID), models.ErrArticleNotFound)
}
