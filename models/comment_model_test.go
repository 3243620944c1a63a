package models

import (
	"testing"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestArticle(t *testing.T, authorID uint) *ArticleModel {
	t.Helper()
	article := ArticleModel{
		Title:    "测试文章",
		Content:  "<p>正文</p>",
		AuthorID: authorID,
		Status:   ctypes.StatusPublished,
	}
	require.NoError(t, global.DB.Create(&article).Error)
	return &article
}

func TestCommentCreate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	article := createTestArticle(t, user.ID)

	comment := CommentModel{Content: "写得不错", ArticleID: article.ID, UserID: user.ID}
	require.NoError(t, CommentCreate(&comment))
	assert.NotZero(t, comment.ID)
}

func TestCommentCreateValidation(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	article := createTestArticle(t, user.ID)

	empty := CommentModel{Content: "   ", ArticleID: article.ID, UserID: user.ID}
	assert.ErrorIs(t, CommentCreate(&empty), ErrEmptyContent)

	missing := CommentModel{Content: "评论", ArticleID: 99999, UserID: user.ID}
	assert.ErrorIs(t, CommentCreate(&missing), ErrArticleNotFound)
}

func TestCommentCreateStripsHTML(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	article := createTestArticle(t, user.ID)

	comment := CommentModel{
		Content:   `好文<script>alert(1)</script>`,
		ArticleID: article.ID,
		UserID:    user.ID,
	}
	require.NoError(t, CommentCreate(&comment))
	assert.NotContains(t, comment.Content, "<script>")
	assert.Contains(t, comment.Content, "好文")
}

func TestCommentReplyCountsAndTree(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	article := createTestArticle(t, user.ID)

	root := CommentModel{Content: "一楼", ArticleID: article.ID, UserID: user.ID}
	require.NoError(t, CommentCreate(&root))

	reply := CommentModel{Content: "回复一楼", ArticleID: article.ID, UserID: user.ID, ParentCommentID: &root.ID}
	require.NoError(t, CommentCreate(&reply))

	// 父评论计数增加
	var fresh CommentModel
	require.NoError(t, global.DB.Take(&fresh, root.ID).Error)
	assert.Equal(t, uint(1), fresh.CommentCount)

	tree, err := GetArticleCommentsWithTree(article.ID)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].SubComments, 1)
	assert.Equal(t, "回复一楼", tree[0].SubComments[0].Content)
}

func TestCommentReplyCrossArticle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	first := createTestArticle(t, user.ID)
	second := createTestArticle(t, user.ID)

	root := CommentModel{Content: "一楼", ArticleID: first.ID, UserID: user.ID}
	require.NoError(t, CommentCreate(&root))

	// 父评论必须属于同一篇文章
	reply := CommentModel{Content: "串楼", ArticleID: second.ID, UserID: user.ID, ParentCommentID: &root.ID}
	assert.ErrorIs(t, CommentCreate(&reply), ErrParentCommentNotExist)
}

func TestCommentDeleteCascades(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "reader@test.local", ctypes.RoleGuest)
	article := createTestArticle(t, user.ID)

	root := CommentModel{Content: "一楼", ArticleID: article.ID, UserID: user.ID}
	require.NoError(t, CommentCreate(&root))
	reply := CommentModel{Content: "回复", ArticleID: article.ID, UserID: user.ID, ParentCommentID: &root.ID}
	require.NoError(t, CommentCreate(&reply))

	require.NoError(t, CommentDelete(root.ID, article.ID))

	tree, err := GetArticleCommentsWithTree(article.ID)
	require.NoError(t, err)
	assert.Empty(t, tree)
}
