package models

import (
	"errors"
	"fmt"

	"paperly/global"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagModel 标签模型
type TagModel struct {
	MODEL `json:","`
	Name  string `json:"name" gorm:"size:50;uniqueIndex:idx_tag_name,length:50" validate:"required,min=1,max=50"`
}

var ErrTagNotFound = errors.New("标签不存在")

// Create 创建标签
func (t *TagModel) Create() error {
	if t.Name == "" {
		return errors.New("标签名称不能为空")
	}

	var count int64
	if err := global.DB.Model(&TagModel{}).Where("name = ?", t.Name).Count(&count).Error; err != nil {
		return fmt.Errorf("检查标签名称失败: %w", err)
	}
	if count > 0 {
		return errors.New("标签名称已存在")
	}

	return global.DB.Create(t).Error
}

// Delete 删除标签及其文章关联
func (t *TagModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", t.ID).Delete(&ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("清理标签关联失败: %w", err)
		}
		if err := tx.Delete(t).Error; err != nil {
			return fmt.Errorf("删除标签失败: %w", err)
		}
		return nil
	})
}

// TagList 获取全部标签
func TagList() ([]TagModel, error) {
	var list []TagModel
	err := global.DB.Order("name ASC").Find(&list).Error
	return list, err
}

// tagsExist 检查标签ID是否全部存在
func tagsExist(tx *gorm.DB, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&TagModel{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
		return fmt.Errorf("检查标签失败: %w", err)
	}
	if count != int64(len(dedupIDs(tagIDs))) {
		return ErrTagNotFound
	}
	return nil
}

func dedupIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ArticleTagModel 文章与标签的关联
type ArticleTagModel struct {
	ArticleID uint `json:"article_id" gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `json:"tag_id" gorm:"primaryKey;autoIncrement:false"`
}

func (ArticleTagModel) TableName() string {
	return "article_tags"
}

// AttachTags 为文章追加标签，重复关联忽略
func AttachTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	tagIDs = dedupIDs(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}
	if err := tagsExist(tx, tagIDs); err != nil {
		return err
	}

	rows := make([]ArticleTagModel, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, ArticleTagModel{ArticleID: articleID, TagID: id})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// ReplaceTags 整体替换文章的标签
func ReplaceTags(tx *gorm.DB, articleID uint, tagIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&ArticleTagModel{}).Error; err != nil {
		return fmt.Errorf("清理文章标签失败: %w", err)
	}
	return AttachTags(tx, articleID, tagIDs)
}

// ArticleTags 获取文章的标签列表
func ArticleTags(articleID uint) ([]TagModel, error) {
	var tags []TagModel
	err := global.DB.Model(&TagModel{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tag_models.id").
		Where("article_tags.article_id = ?", articleID).
		Order("tag_models.name ASC").
		Find(&tags).Error
	return tags, err
}
