package models

import (
	"errors"
	"fmt"

	"paperly/global"
	"paperly/models/ctypes"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EditorCategoryModel 编辑与分类的授权关系
type EditorCategoryModel struct {
	EditorID   uint `json:"editor_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
}

func (EditorCategoryModel) TableName() string {
	return "editor_categories"
}

var (
	ErrNotEditor      = errors.New("目标用户不是编辑")
	ErrCategoryDenied = errors.New("编辑未被授权该分类")
)

// AssignEditorCategories 整体替换某编辑的分类授权，整个操作在一个事务内完成
func AssignEditorCategories(editorID uint, categoryIDs []uint) error {
	categoryIDs = dedupIDs(categoryIDs)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		var editor UserModel
		if err := tx.Take(&editor, editorID).Error; err != nil {
			return errors.New("用户不存在")
		}
		if editor.Role != ctypes.RoleEditor {
			return ErrNotEditor
		}

		if len(categoryIDs) > 0 {
			var count int64
			if err := tx.Model(&CategoryModel{}).Where("id IN ?", categoryIDs).Count(&count).Error; err != nil {
				return fmt.Errorf("检查分类失败: %w", err)
			}
			if count != int64(len(categoryIDs)) {
				return ErrCategoryNotFound
			}
		}

		if err := tx.Where("editor_id = ?", editorID).Delete(&EditorCategoryModel{}).Error; err != nil {
			return fmt.Errorf("清理旧授权失败: %w", err)
		}

		if len(categoryIDs) == 0 {
			return nil
		}

		rows := make([]EditorCategoryModel, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			rows = append(rows, EditorCategoryModel{EditorID: editorID, CategoryID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("写入授权失败: %w", err)
		}
		return nil
	})
}

// GrantEditorCategory 为编辑增加单个分类授权，重复授权不报错
func GrantEditorCategory(editorID uint, categoryID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var editor UserModel
		if err := tx.Take(&editor, editorID).Error; err != nil {
			return errors.New("用户不存在")
		}
		if editor.Role != ctypes.RoleEditor {
			return ErrNotEditor
		}

		exists, err := CategoryExist(tx, categoryID)
		if err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if !exists {
			return ErrCategoryNotFound
		}

		row := EditorCategoryModel{EditorID: editorID, CategoryID: categoryID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	})
}

// RevokeEditorCategory 撤销编辑的单个分类授权
func RevokeEditorCategory(editorID uint, categoryID uint) error {
	return global.DB.
		Where("editor_id = ? AND category_id = ?", editorID, categoryID).
		Delete(&EditorCategoryModel{}).Error
}

// EditorCategories 获取某编辑被授权的分类
func EditorCategories(editorID uint) ([]CategoryModel, error) {
	var categories []CategoryModel
	err := global.DB.Model(&CategoryModel{}).
		Joins("JOIN editor_categories ON editor_categories.category_id = category_models.id").
		Where("editor_categories.editor_id = ?", editorID).
		Find(&categories).Error
	return categories, err
}

// CategoryEditors 获取被授权某分类的编辑
func CategoryEditors(categoryID uint) ([]UserModel, error) {
	var editors []UserModel
	err := global.DB.Model(&UserModel{}).
		Joins("JOIN editor_categories ON editor_categories.editor_id = user_models.id").
		Where("editor_categories.category_id = ?", categoryID).
		Find(&editors).Error
	return editors, err
}

// EditorCanModerate 检查编辑是否被授权某分类
func EditorCanModerate(tx *gorm.DB, editorID uint, categoryID uint) (bool, error) {
	var count int64
	err := tx.Model(&EditorCategoryModel{}).
		Where("editor_id = ? AND category_id = ?", editorID, categoryID).
		Count(&count).Error
	return count > 0, err
}
