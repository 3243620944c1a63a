package models

import (
	"testing"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCreateForcesDraft(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{
		Title:    "新文章",
		Content:  "正文",
		AuthorID: writer.ID,
		Status:   ctypes.StatusPublished,
	}
	require.NoError(t, article.Create())
	assert.Equal(t, ctypes.StatusDraft, article.Status)
}

func TestUpdateStatusGuarded(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())

	require.NoError(t, article.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPending, nil))
	assert.Equal(t, ctypes.StatusPending, article.Status)

	var fresh ArticleModel
	require.NoError(t, fresh.FindByID(article.ID))
	assert.Equal(t, ctypes.StatusPending, fresh.Status)
}

func TestUpdateStatusGuardedInvalidTransition(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())

	// 草稿不能直接发布
	err := article.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPublished, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateStatusGuardedStaleState(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())
	require.NoError(t, article.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPending, nil))

	// 数据库状态已变，基于旧状态的更新不命中任何行
	err := article.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPending, nil)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestUpdateStatusGuardedExtraFields(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())
	require.NoError(t, article.UpdateStatusGuarded(global.DB, ctypes.StatusDraft, ctypes.StatusPending, nil))

	err := article.UpdateStatusGuarded(global.DB, ctypes.StatusPending, ctypes.StatusApproved, map[string]interface{}{
		"editor_id": editor.ID,
	})
	require.NoError(t, err)

	var fresh ArticleModel
	require.NoError(t, fresh.FindByID(article.ID))
	require.NotNil(t, fresh.EditorID)
	assert.Equal(t, editor.ID, *fresh.EditorID)
}

func TestIncrementViews(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())

	require.NoError(t, IncrementViews(article.ID, 3))
	require.NoError(t, IncrementViews(article.ID, 0))

	var fresh ArticleModel
	require.NoError(t, fresh.FindByID(article.ID))
	assert.Equal(t, int64(3), fresh.Views)
}

func TestArticleListFilters(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)
	other := createTestUser(t, "other@test.local", ctypes.RoleWriter)
	category := createTestCategory(t, "科技")

	published := ArticleModel{Title: "已发布", Content: "正文", AuthorID: writer.ID, Status: ctypes.StatusPublished, CategoryID: &category.ID}
	require.NoError(t, global.DB.Create(&published).Error)
	draft := ArticleModel{Title: "草稿", Content: "正文", AuthorID: other.ID, Status: ctypes.StatusDraft}
	require.NoError(t, global.DB.Create(&draft).Error)

	list, total, err := ArticleList(ArticleListQuery{
		PageInfo: PageInfo{Page: 1, PageSize: 10},
		Status:   ctypes.StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "已发布", list[0].Title)

	list, total, err = ArticleList(ArticleListQuery{
		PageInfo: PageInfo{Page: 1, PageSize: 10},
		AuthorID: other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, "草稿", list[0].Title)
}

func TestArticleHardDelete(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)

	article := ArticleModel{Title: "新文章", Content: "正文", AuthorID: writer.ID}
	require.NoError(t, article.Create())

	comment := CommentModel{Content: "评论", ArticleID: article.ID, UserID: writer.ID}
	require.NoError(t, CommentCreate(&comment))

	require.NoError(t, article.HardDelete())

	var fresh ArticleModel
	assert.ErrorIs(t, fresh.FindByID(article.ID), ErrArticleNotFound)

	var count int64
	require.NoError(t, global.DB.Model(&CommentModel{}).Where("article_id = ?", article.ID).Count(&count).Error)
	assert.Zero(t, count)
}
