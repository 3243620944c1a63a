package models

import (
	"errors"
	"fmt"

	"paperly/global"

	"gorm.io/gorm"
)

// CategoryModel 分类模型，最多两级
type CategoryModel struct {
	MODEL    `json:","`
	Name     string           `json:"name" gorm:"size:100;uniqueIndex:idx_category_name,length:100" validate:"required,min=1,max=100"`
	ParentID *uint            `json:"parent_id" gorm:"index"`
	Children []*CategoryModel `json:"children,omitempty" gorm:"foreignKey:ParentID"`
}

var (
	ErrCategoryNotFound = errors.New("分类不存在")
	ErrCategoryTooDeep  = errors.New("分类最多支持两级")
	ErrCategoryInUse    = errors.New("分类下仍有文章或子分类")
)

// Create 创建分类
func (c *CategoryModel) Create() error {
	if err := categoryValidate(c); err != nil {
		return err
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if c.ParentID != nil {
			var parent CategoryModel
			if err := tx.Take(&parent, *c.ParentID).Error; err != nil {
				return ErrCategoryNotFound
			}
			// 父分类必须是顶级分类
			if parent.ParentID != nil {
				return ErrCategoryTooDeep
			}
		}

		var count int64
		if err := tx.Model(&CategoryModel{}).Where("name = ?", c.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("检查分类名称失败: %w", err)
		}
		if count > 0 {
			return errors.New("分类名称已存在")
		}

		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("创建分类失败: %w", err)
		}
		return nil
	})
}

func categoryValidate(c *CategoryModel) error {
	if c.Name == "" {
		return errors.New("分类名称不能为空")
	}
	return nil
}

// Update 更新分类名称
func (c *CategoryModel) Update(name string) error {
	if name == "" {
		return errors.New("分类名称不能为空")
	}
	return global.DB.Model(c).Update("name", name).Error
}

// Delete 删除分类，存在文章或子分类时拒绝
func (c *CategoryModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var childCount int64
		if err := tx.Model(&CategoryModel{}).Where("parent_id = ?", c.ID).Count(&childCount).Error; err != nil {
			return fmt.Errorf("检查子分类失败: %w", err)
		}
		if childCount > 0 {
			return ErrCategoryInUse
		}

		var articleCount int64
		if err := tx.Model(&ArticleModel{}).Where("category_id = ?", c.ID).Count(&articleCount).Error; err != nil {
			return fmt.Errorf("检查分类下文章失败: %w", err)
		}
		if articleCount > 0 {
			return ErrCategoryInUse
		}

		if err := tx.Where("category_id = ?", c.ID).Delete(&EditorCategoryModel{}).Error; err != nil {
			return fmt.Errorf("清理编辑分类授权失败: %w", err)
		}

		if err := tx.Delete(c).Error; err != nil {
			return fmt.Errorf("删除分类失败: %w", err)
		}
		return nil
	})
}

// CategoryExist 检查分类是否存在
func CategoryExist(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.Model(&CategoryModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CategoryTree 获取两级分类树
func CategoryTree() ([]*CategoryModel, error) {
	var all []*CategoryModel
	if err := global.DB.Order("created_at ASC").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("获取分类失败: %w", err)
	}

	categoryMap := make(map[uint]*CategoryModel)
	var roots []*CategoryModel

	for _, c := range all {
		categoryMap[c.ID] = c
	}
	for _, c := range all {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else if parent, ok := categoryMap[*c.ParentID]; ok {
			parent.Children = append(parent.Children, c)
		}
	}
	return roots, nil
}
