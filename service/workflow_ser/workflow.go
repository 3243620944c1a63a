package workflow_ser

import (
	"errors"
	"fmt"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"

	"gorm.io/gorm"
)

// Submit 作者将草稿提交审核，被拒稿件可以直接重新提交
func Submit(articleID uint, authorID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}
		if article.AuthorID != authorID {
			return models.ErrNotAuthor
		}

		// 被拒稿件先回到草稿再进入待审
		if article.Status == ctypes.StatusRejected {
			if err := article.UpdateStatusGuarded(tx, ctypes.StatusRejected, ctypes.StatusDraft, nil); err != nil {
				return err
			}
		}

		return article.UpdateStatusGuarded(tx, ctypes.StatusDraft, ctypes.StatusPending, nil)
	})
}

// Approve 编辑批准稿件：定分类、挂标签、清除历史拒绝记录
// 编辑必须持有目标分类的授权，publishedAt可预设发布时间，为空则在首次上线时补记
func Approve(articleID uint, editorID uint, categoryID uint, tagIDs []uint, isPremium bool, publishedAt *ctypes.MyTime) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}

		exists, err := models.CategoryExist(tx, categoryID)
		if err != nil {
			return fmt.Errorf("检查分类失败: %w", err)
		}
		if !exists {
			return models.ErrCategoryNotFound
		}

		allowed, err := models.EditorCanModerate(tx, editorID, categoryID)
		if err != nil {
			return fmt.Errorf("检查编辑授权失败: %w", err)
		}
		if !allowed {
			return models.ErrCategoryDenied
		}

		extra := map[string]interface{}{
			"category_id": categoryID,
			"editor_id":   editorID,
			"is_premium":  isPremium,
		}
		if publishedAt != nil {
			extra["published_at"] = *publishedAt
		}

		err = article.UpdateStatusGuarded(tx, ctypes.StatusPending, ctypes.StatusApproved, extra)
		if err != nil {
			return err
		}

		if err := models.AttachTags(tx, articleID, tagIDs); err != nil {
			return err
		}

		// 批准后历史拒绝记录不再保留
		if err := tx.Unscoped().
			Where("article_id = ?", articleID).
			Delete(&models.ArticleRejectionModel{}).Error; err != nil {
			return fmt.Errorf("清理拒绝记录失败: %w", err)
		}
		return nil
	})
}

// Reject 编辑拒绝稿件并记录原因
func Reject(articleID uint, editorID uint, reason string) error {
	if reason == "" {
		return errors.New("拒绝原因不能为空")
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}

		// 稿件已有分类时要求编辑持有该分类授权
		if article.CategoryID != nil {
			allowed, err := models.EditorCanModerate(tx, editorID, *article.CategoryID)
			if err != nil {
				return fmt.Errorf("检查编辑授权失败: %w", err)
			}
			if !allowed {
				return models.ErrCategoryDenied
			}
		}

		err := article.UpdateStatusGuarded(tx, ctypes.StatusPending, ctypes.StatusRejected, map[string]interface{}{
			"editor_id": editorID,
		})
		if err != nil {
			return err
		}

		rejection := models.ArticleRejectionModel{
			ArticleID: articleID,
			EditorID:  editorID,
			Reason:    reason,
		}
		if err := tx.Create(&rejection).Error; err != nil {
			return fmt.Errorf("记录拒绝原因失败: %w", err)
		}
		return nil
	})
}

// Publish 编辑上线已批准或已下线的稿件，首次上线记录发布时间
func Publish(articleID uint, editorID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}

		if err := checkCategoryAuthority(tx, &article, editorID); err != nil {
			return err
		}

		extra := map[string]interface{}{}
		if article.PublishedAt == nil {
			extra["published_at"] = models.NowTime()
		}

		from := article.Status
		if from != ctypes.StatusApproved && from != ctypes.StatusUnpublished {
			return models.ErrInvalidState
		}
		return article.UpdateStatusGuarded(tx, from, ctypes.StatusPublished, extra)
	})
}

// Unpublish 编辑下线已发布的稿件，稿件保留发布时间以便再次上线
func Unpublish(articleID uint, editorID uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}

		if err := checkCategoryAuthority(tx, &article, editorID); err != nil {
			return err
		}

		return article.UpdateStatusGuarded(tx, ctypes.StatusPublished, ctypes.StatusUnpublished, nil)
	})
}

// checkCategoryAuthority 检查编辑对稿件所属分类的授权
func checkCategoryAuthority(tx *gorm.DB, article *models.ArticleModel, editorID uint) error {
	if article.CategoryID == nil {
		return nil
	}
	allowed, err := models.EditorCanModerate(tx, editorID, *article.CategoryID)
	if err != nil {
		return fmt.Errorf("检查编辑授权失败: %w", err)
	}
	if !allowed {
		return models.ErrCategoryDenied
	}
	return nil
}

// UpdateContent 作者修改稿件，任何非待审状态都会回到草稿并整体替换标签
type UpdateContent struct {
	Title     string
	Thumbnail string
	Abstract  string
	Content   string
	TagIDs    []uint
}

// Update 作者修改稿件内容
func Update(articleID uint, authorID uint, content UpdateContent) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var article models.ArticleModel
		if err := tx.Take(&article, articleID).Error; err != nil {
			return models.ErrArticleNotFound
		}
		if article.AuthorID != authorID {
			return models.ErrNotAuthor
		}

		// 待审稿件不允许修改
		if article.Status == ctypes.StatusPending {
			return models.ErrInvalidState
		}

		updates := map[string]interface{}{
			"title":     content.Title,
			"thumbnail": content.Thumbnail,
			"abstract":  content.Abstract,
			"content":   content.Content,
		}
		if article.Status == ctypes.StatusDraft {
			result := tx.Model(&models.ArticleModel{}).
				Where("id = ? AND status = ?", articleID, ctypes.StatusDraft).
				Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("更新文章失败: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return models.ErrInvalidState
			}
		} else if err := article.UpdateStatusGuarded(tx, article.Status, ctypes.StatusDraft, updates); err != nil {
			return err
		}

		return models.ReplaceTags(tx, articleID, content.TagIDs)
	})
}

// Delete 作者删除自己的稿件，物理删除
func Delete(articleID uint, authorID uint) error {
	var article models.ArticleModel
	if err := article.FindByID(articleID); err != nil {
		return err
	}
	if article.AuthorID != authorID {
		return models.ErrNotAuthor
	}
	return article.HardDelete()
}
