package models

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"paperly/global"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// CommentModel 评论模型，用于存储文章评论信息
type CommentModel struct {
	MODEL           `json:","`
	SubComments     []*CommentModel `json:"sub_comments" gorm:"foreignKey:ParentCommentID;constraint:OnDelete:CASCADE"`
	ParentCommentID *uint           `json:"parent_comment_id" gorm:"index:idx_parent_article"`
	Content         string          `json:"content"`                                  // 评论内容
	CommentCount    uint            `json:"comment_count"`                            // 子评论数
	ArticleID       uint            `json:"article_id" gorm:"index:idx_parent_article"` // 关联的文章ID
	UserID          uint            `json:"user_id"`                                  // 评论用户ID
	User            UserModel       `json:"user" gorm:"foreignKey:UserID"`            // 关联的用户信息
}

var (
	ErrEmptyContent          = errors.New("评论内容不能为空")
	ErrContentTooLong        = errors.New("评论内容不能超过1000字")
	ErrParentCommentNotExist = errors.New("父评论不存在")
)

var sensitiveFilter *sensitive.Filter

// loadSensitiveWordsFromFile 从配置文件加载Base64编码的敏感词
func loadSensitiveWordsFromFile() error {
	filePath := "sensitive_words.txt"

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("打开敏感词文件失败: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		decodedBytes, err := base64.StdEncoding.DecodeString(line)
		if err != nil {
			continue
		}

		decodedStr := strings.TrimSpace(string(decodedBytes))
		if decodedStr == "" {
			continue
		}

		sensitiveFilter.AddWord(decodedStr)
	}

	return scanner.Err()
}

func init() {
	// 敏感词过滤器初始化，词库文件缺失时只做HTML净化
	sensitiveFilter = sensitive.New()
	_ = loadSensitiveWordsFromFile()
}

// filterContent 过滤评论内容
func filterContent(content string) string {
	// 清理HTML
	content = bluemonday.UGCPolicy().Sanitize(content)
	// 过滤敏感词
	if sensitiveFilter != nil {
		content = sensitiveFilter.Replace(content, '*')
	}
	return content
}

// GetArticleCommentsWithTree 获取文章评论树
func GetArticleCommentsWithTree(articleID uint) ([]*CommentModel, error) {
	var allComments []*CommentModel
	if err := global.DB.Model(&CommentModel{}).
		Where("article_id = ?", articleID).
		Preload("User").
		Order("created_at DESC").
		Find(&allComments).Error; err != nil {
		return nil, fmt.Errorf("获取评论失败: %w", err)
	}

	return buildCommentTree(allComments), nil
}

// buildCommentTree 将评论列表构建成树形结构
func buildCommentTree(allComments []*CommentModel) []*CommentModel {
	commentMap := make(map[uint]*CommentModel)
	var rootComments []*CommentModel

	for _, comment := range allComments {
		commentMap[comment.ID] = comment
	}

	for _, comment := range allComments {
		if comment.ParentCommentID == nil {
			rootComments = append(rootComments, comment)
		} else {
			if parent, exists := commentMap[*comment.ParentCommentID]; exists {
				parent.SubComments = append(parent.SubComments, comment)
			}
		}
	}

	return rootComments
}

// commentValidate 验证评论
func commentValidate(comment *CommentModel) error {
	content := strings.TrimSpace(comment.Content)
	if content == "" {
		return ErrEmptyContent
	}
	if len(content) > 1000 {
		return ErrContentTooLong
	}
	return nil
}

// CommentCreate 创建评论
func CommentCreate(comment *CommentModel) error {
	if err := commentValidate(comment); err != nil {
		return err
	}
	comment.Content = filterContent(comment.Content)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		// 只允许评论已发布的文章
		var article ArticleModel
		if err := tx.Take(&article, comment.ArticleID).Error; err != nil {
			return ErrArticleNotFound
		}

		// 检查父评论是否存在且属于同一篇文章
		if comment.ParentCommentID != nil {
			var parentCount int64
			if err := tx.Model(&CommentModel{}).
				Where("id = ? AND article_id = ?", *comment.ParentCommentID, comment.ArticleID).
				Count(&parentCount).Error; err != nil {
				return fmt.Errorf("检查父评论失败: %w", err)
			}
			if parentCount == 0 {
				return ErrParentCommentNotExist
			}
		}

		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("创建评论失败: %w", err)
		}

		// 更新父评论的评论计数
		if comment.ParentCommentID != nil {
			if err := tx.Model(&CommentModel{}).
				Where("id = ?", *comment.ParentCommentID).
				UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).
				Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// CommentDelete 删除评论及其子评论
func CommentDelete(commentID uint, articleID uint) error {
	var comment CommentModel
	if err := global.DB.First(&comment, commentID).Error; err != nil {
		return err
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("id = ? OR parent_comment_id = ?", commentID, commentID).
			Where("article_id = ?", articleID).
			Delete(&CommentModel{}).Error
	})
}
