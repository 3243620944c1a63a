package search_ser

import (
	"fmt"
	"strings"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
)

// FormatQuery 将用户输入的关键词转为tsquery表达式，空白分词之间取与
func FormatQuery(keyword string) string {
	fields := strings.Fields(strings.TrimSpace(keyword))
	return strings.Join(fields, " & ")
}

// SearchResult 搜索结果项
type SearchResult struct {
	models.ArticleModel
	Rank float64 `json:"rank" gorm:"column:rank"`
}

// Search 对已发布文章做全文搜索
// search_vector由触发器维护：标题权重A、摘要权重B、正文权重C
func Search(keyword string, info models.PageInfo) (list []SearchResult, total int64, err error) {
	query := FormatQuery(keyword)
	if query == "" {
		return nil, 0, nil
	}

	err = global.DB.Model(&models.ArticleModel{}).
		Where("status = ?", ctypes.StatusPublished).
		Where("search_vector @@ to_tsquery('simple', ?)", query).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("统计搜索结果失败: %w", err)
	}

	err = global.DB.Model(&models.ArticleModel{}).
		Select("article_models.*, ts_rank_cd(search_vector, to_tsquery('simple', ?)) AS rank", query).
		Where("status = ?", ctypes.StatusPublished).
		Where("search_vector @@ to_tsquery('simple', ?)", query).
		Order("rank DESC").
		Limit(info.PageSize).
		Offset(info.Offset()).
		Preload("Author").
		Preload("Category").
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("搜索文章失败: %w", err)
	}
	return list, total, nil
}

// InstallSearchVector 安装全文搜索列与触发器，建库时调用
func InstallSearchVector() error {
	stmts := []string{
		`ALTER TABLE article_models ADD COLUMN IF NOT EXISTS search_vector tsvector`,
		`CREATE INDEX IF NOT EXISTS idx_article_search_vector ON article_models USING GIN (search_vector)`,
		`CREATE OR REPLACE FUNCTION article_search_vector_update() RETURNS trigger AS $$
		BEGIN
			NEW.search_vector :=
				setweight(to_tsvector('simple', coalesce(NEW.title, '')), 'A') ||
				setweight(to_tsvector('simple', coalesce(NEW.abstract, '')), 'B') ||
				setweight(to_tsvector('simple', coalesce(NEW.content, '')), 'C');
			RETURN NEW;
		END
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_article_search_vector ON article_models`,
		`CREATE TRIGGER trg_article_search_vector
			BEFORE INSERT OR UPDATE OF title, abstract, content ON article_models
			FOR EACH ROW EXECUTE FUNCTION article_search_vector_update()`,
	}

	for _, stmt := range stmts {
		if err := global.DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("安装搜索触发器失败: %w", err)
		}
	}
	return nil
}
