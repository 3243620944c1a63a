package corn_ser

import (
	"strconv"

	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/service/redis_ser"

	"go.uber.org/zap"
)

// RebuildArticleFilter 用数据库中的已发布文章ID重建布隆过滤器
// Redis被清空后过滤器也能在下一轮重建中恢复
func RebuildArticleFilter() {
	var ids []uint
	err := global.DB.Model(&models.ArticleModel{}).
		Where("status = ?", ctypes.StatusPublished).
		Pluck("id", &ids).Error
	if err != nil {
		global.Log.Error("查询已发布文章ID失败", zap.String("error", err.Error()))
		return
	}

	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, strconv.Itoa(int(id)))
	}
	if err := redis_ser.ResetBloomFilter(idStrs); err != nil {
		global.Log.Error("重建布隆过滤器失败", zap.String("error", err.Error()))
	}
}

// SyncArticleViews 将Redis中累计的浏览增量落库
func SyncArticleViews() {
	counts, err := redis_ser.PopArticleViewCounts()
	if err != nil {
		global.Log.Error("获取Redis浏览增量失败", zap.String("error", err.Error()))
		return
	}

	for articleID, delta := range counts {
		if err := models.IncrementViews(articleID, delta); err != nil {
			global.Log.Error("同步文章浏览数失败",
				zap.Uint("article_id", articleID),
				zap.Int64("delta", delta),
				zap.String("error", err.Error()),
			)
			continue
		}
	}
}
