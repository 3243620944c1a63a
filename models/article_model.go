package models

import (
	"errors"
	"fmt"
	"time"

	"paperly/global"
	"paperly/models/ctypes"

	"gorm.io/gorm"
)

// ArticleModel 文章模型
type ArticleModel struct {
	MODEL       `json:","`
	Title       string               `json:"title" gorm:"size:200" validate:"required,min=1,max=200"`
	Thumbnail   string               `json:"thumbnail"`
	Abstract    string               `json:"abstract" gorm:"type:text"`
	Content     string               `json:"content" gorm:"type:text" validate:"required"`
	AuthorID    uint                 `json:"author_id" gorm:"index"`
	EditorID    *uint                `json:"editor_id"`
	CategoryID  *uint                `json:"category_id" gorm:"index"`
	Status      ctypes.ArticleStatus `json:"status" gorm:"size:20;index"`
	PublishedAt *ctypes.MyTime       `json:"published_at"`
	Views       int64                `json:"views"`
	IsPremium   bool                 `json:"is_premium"`

	Author   UserModel      `json:"author" gorm:"foreignKey:AuthorID"`
	Category *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags     []TagModel     `json:"tags" gorm:"-"`
}

// ArticleRejectionModel 文章拒绝记录
type ArticleRejectionModel struct {
	MODEL     `json:","`
	ArticleID uint      `json:"article_id" gorm:"index"`
	EditorID  uint      `json:"editor_id"`
	Reason    string    `json:"reason" gorm:"type:text" validate:"required"`
	Editor    UserModel `json:"editor" gorm:"foreignKey:EditorID"`
}

func (ArticleRejectionModel) TableName() string {
	return "article_rejections"
}

var (
	ErrArticleNotFound = errors.New("文章不存在")
	ErrInvalidState    = errors.New("文章当前状态不允许该操作")
	ErrNotAuthor       = errors.New("只有作者本人可以操作该文章")
)

// Create 创建草稿
func (a *ArticleModel) Create() error {
	a.Status = ctypes.StatusDraft
	return global.DB.Create(a).Error
}

// FindByID 根据ID查找文章
func (a *ArticleModel) FindByID(id uint) error {
	err := global.DB.Preload("Author").Preload("Category").Take(a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrArticleNotFound
	}
	return err
}

// UpdateStatusGuarded 带状态守卫的状态更新，并发下只有一个调用会成功
func (a *ArticleModel) UpdateStatusGuarded(tx *gorm.DB, from, to ctypes.ArticleStatus, extra map[string]interface{}) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidState
	}

	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}

	result := tx.Model(&ArticleModel{}).
		Where("id = ? AND status = ?", a.ID, from).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("更新文章状态失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInvalidState
	}

	a.Status = to
	return nil
}

// IncrementViews 累加文章浏览数
func IncrementViews(articleID uint, delta int64) error {
	if delta <= 0 {
		return nil
	}
	return global.DB.Model(&ArticleModel{}).
		Where("id = ?", articleID).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}

// HardDelete 物理删除文章及其关联数据
func (a *ArticleModel) HardDelete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", a.ID).Delete(&ArticleTagModel{}).Error; err != nil {
			return fmt.Errorf("清理文章标签失败: %w", err)
		}
		if err := tx.Unscoped().Where("article_id = ?", a.ID).Delete(&ArticleRejectionModel{}).Error; err != nil {
			return fmt.Errorf("清理拒绝记录失败: %w", err)
		}
		if err := tx.Unscoped().Where("article_id = ?", a.ID).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("清理文章评论失败: %w", err)
		}
		if err := tx.Unscoped().Delete(a).Error; err != nil {
			return fmt.Errorf("删除文章失败: %w", err)
		}
		return nil
	})
}

// ArticleListQuery 文章列表查询条件
type ArticleListQuery struct {
	PageInfo
	Status     ctypes.ArticleStatus `json:"status" form:"status"`
	CategoryID uint                 `json:"category_id" form:"category_id"`
	TagID      uint                 `json:"tag_id" form:"tag_id"`
	AuthorID   uint                 `json:"author_id" form:"author_id"`
	Premium    *bool                `json:"premium" form:"premium"`
}

// ArticleList 分页获取文章列表
func ArticleList(q ArticleListQuery) (list []ArticleModel, total int64, err error) {
	query := global.DB.Model(&ArticleModel{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.CategoryID > 0 {
		query = query.Where("category_id = ?", q.CategoryID)
	}
	if q.AuthorID > 0 {
		query = query.Where("author_id = ?", q.AuthorID)
	}
	if q.Premium != nil {
		query = query.Where("is_premium = ?", *q.Premium)
	}
	if q.TagID > 0 {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = article_models.id").
			Where("article_tags.tag_id = ?", q.TagID)
	}
	if q.Key != "" {
		query = query.Where("title LIKE ?", "%"+q.Key+"%")
	}

	if err = query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计文章数量失败: %w", err)
	}

	err = query.Preload("Author").Preload("Category").
		Order("created_at DESC").
		Limit(q.PageSize).
		Offset(q.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("获取文章列表失败: %w", err)
	}
	return list, total, nil
}

// ArticleRejections 获取文章的拒绝记录
func ArticleRejections(articleID uint) ([]ArticleRejectionModel, error) {
	var list []ArticleRejectionModel
	err := global.DB.Preload("Editor").
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// CountArticlesByStatus 按状态统计文章数量
func CountArticlesByStatus(status ctypes.ArticleStatus) (int64, error) {
	var count int64
	err := global.DB.Model(&ArticleModel{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// RecentPublished 获取最近发布的文章
func RecentPublished(limit int) ([]ArticleModel, error) {
	var list []ArticleModel
	err := global.DB.Preload("Author").Preload("Category").
		Where("status = ?", ctypes.StatusPublished).
		Order("published_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// MostViewed 获取浏览最多的已发布文章
func MostViewed(limit int) ([]ArticleModel, error) {
	var list []ArticleModel
	err := global.DB.Preload("Author").Preload("Category").
		Where("status = ?", ctypes.StatusPublished).
		Order("views DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// NowTime 当前时间，写入published_at等字段
func NowTime() ctypes.MyTime {
	return ctypes.MyTime(time.Now())
}
