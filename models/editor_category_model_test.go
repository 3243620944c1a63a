package models

import (
	"testing"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignEditorCategories(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")
	finance := createTestCategory(t, "财经")

	require.NoError(t, AssignEditorCategories(editor.ID, []uint{politics.ID, finance.ID}))

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestAssignEditorCategoriesReplaces(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")
	finance := createTestCategory(t, "财经")

	require.NoError(t, AssignEditorCategories(editor.ID, []uint{politics.ID}))
	// 整体替换，旧授权被覆盖而不是追加
	require.NoError(t, AssignEditorCategories(editor.ID, []uint{finance.ID}))

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, finance.ID, categories[0].ID)
}

func TestAssignEditorCategoriesEmptyClears(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")

	require.NoError(t, AssignEditorCategories(editor.ID, []uint{politics.ID}))
	require.NoError(t, AssignEditorCategories(editor.ID, nil))

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestAssignEditorCategoriesNotEditor(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)
	politics := createTestCategory(t, "时政")

	err := AssignEditorCategories(writer.ID, []uint{politics.ID})
	assert.ErrorIs(t, err, ErrNotEditor)
}

func TestAssignEditorCategoriesRollback(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")

	require.NoError(t, AssignEditorCategories(editor.ID, []uint{politics.ID}))

	// 包含不存在的分类时整体失败，原有授权保持不变
	err := AssignEditorCategories(editor.ID, []uint{politics.ID, 99999})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, politics.ID, categories[0].ID)
}

func TestGrantAndRevokeEditorCategory(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")

	require.NoError(t, GrantEditorCategory(editor.ID, politics.ID))
	// 重复授权不报错也不产生重复行
	require.NoError(t, GrantEditorCategory(editor.ID, politics.ID))

	categories, err := EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	editors, err := CategoryEditors(politics.ID)
	require.NoError(t, err)
	require.Len(t, editors, 1)
	assert.Equal(t, editor.ID, editors[0].ID)

	require.NoError(t, RevokeEditorCategory(editor.ID, politics.ID))
	categories, err = EditorCategories(editor.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestGrantEditorCategoryValidation(t *testing.T) {
	setupTestDB(t)
	writer := createTestUser(t, "writer@test.local", ctypes.RoleWriter)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")

	assert.ErrorIs(t, GrantEditorCategory(writer.ID, politics.ID), ErrNotEditor)
	assert.ErrorIs(t, GrantEditorCategory(editor.ID, 99999), ErrCategoryNotFound)
}

func TestEditorCanModerate(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)
	politics := createTestCategory(t, "时政")
	finance := createTestCategory(t, "财经")

	require.NoError(t, AssignEditorCategories(editor.ID, []uint{politics.ID}))

	ok, err := EditorCanModerate(global.DB, editor.ID, politics.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = EditorCanModerate(global.DB, editor.ID, finance.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
