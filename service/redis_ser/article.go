package redis_ser

import (
	"context"
	"strconv"
	"time"

	"paperly/global"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// 统计字段名
	FieldViewCount = "view_count"

	ViewIPExpire = 10 * time.Minute // 同一IP重复访问的去重窗口

	// 布隆过滤器相关常量
	BloomFilterKey     = "paperly:article:bloom" // 布隆过滤器的键
	BloomFilterSize    = 100000                  // 预期元素数量
	BloomFalsePositive = 0.01                    // 期望的误判率
)

// GetArticleStatsKey 获取文章统计数据的Redis键
func GetArticleStatsKey(articleID string) string {
	return BuildKey(ArticlePrefix, "stats", articleID)
}

// GetArticleViewCount 获取文章在缓存中的浏览增量
func GetArticleViewCount(articleID string) (int64, error) {
	count, err := global.Redis.HGet(
		context.Background(),
		GetArticleStatsKey(articleID),
		FieldViewCount,
	).Int64()
	if err != nil {
		return 0, err
	}
	return count, nil
}

// 检查IP是否最近访问过文章
func checkIPViewArticle(articleID, ip string) (bool, error) {
	key := BuildKey(ArticlePrefix, "view", "ip", articleID, ip)
	// SetNX：该IP在窗口内首次访问则设置成功返回true，否则返回false
	return global.Redis.SetNX(
		context.Background(),
		key,
		1,
		ViewIPExpire,
	).Result()
}

// IncrArticleViewCount 增加文章浏览数，同一IP在窗口内只计一次
func IncrArticleViewCount(articleID, ip string) error {
	ctx := context.Background()

	isNewView, err := checkIPViewArticle(articleID, ip)
	if err != nil {
		global.Log.Error("检查IP访问记录失败",
			zap.String("articleID", articleID),
			zap.String("ip", ip),
			zap.String("error", err.Error()),
		)
		return err
	}

	if !isNewView {
		return nil
	}

	return global.Redis.HIncrBy(
		ctx,
		GetArticleStatsKey(articleID),
		FieldViewCount,
		1,
	).Err()
}

// PopArticleViewCounts 取出并清空所有文章的浏览增量，供定时任务落库
func PopArticleViewCounts() (map[uint]int64, error) {
	ctx := context.Background()
	pattern := BuildKey(ArticlePrefix, "stats", "*")

	counts := make(map[uint]int64)
	iter := global.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := global.Redis.HGet(ctx, key, FieldViewCount).Int64()
		if err == redis.Nil || val == 0 {
			continue
		}
		if err != nil {
			return nil, err
		}

		// 键格式：paperly:article:stats:<id>
		idStr := key[len(BuildKey(ArticlePrefix, "stats", "")):]
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}

		if err := global.Redis.HDel(ctx, key, FieldViewCount).Err(); err != nil {
			return nil, err
		}
		counts[uint(id)] = val
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// 获取布隆过滤器
func getBloomFilter() (*bloom.BloomFilter, error) {
	ctx := context.Background()

	data, err := global.Redis.Get(ctx, BloomFilterKey).Bytes()
	if err != nil && err != redis.Nil {
		return nil, err
	}

	filter := bloom.NewWithEstimates(BloomFilterSize, BloomFalsePositive)

	// Redis中已有数据时恢复过滤器状态
	if len(data) > 0 {
		filter.UnmarshalBinary(data)
	}

	return filter, nil
}

// 保存布隆过滤器到Redis
func saveBloomFilter(filter *bloom.BloomFilter) error {
	data, err := filter.MarshalBinary()
	if err != nil {
		return err
	}
	return global.Redis.Set(context.Background(), BloomFilterKey, data, 0).Err()
}

// AddToBloomFilter 将文章ID添加到布隆过滤器
func AddToBloomFilter(articleID string) error {
	filter, err := getBloomFilter()
	if err != nil {
		global.Log.Error("获取布隆过滤器失败", zap.Error(err))
		return err
	}

	filter.Add([]byte(articleID))

	if err := saveBloomFilter(filter); err != nil {
		global.Log.Error("保存布隆过滤器失败", zap.Error(err))
		return err
	}

	return nil
}

// ResetBloomFilter 用给定的文章ID集合重建布隆过滤器，覆盖Redis中的旧状态
func ResetBloomFilter(articleIDs []string) error {
	filter := bloom.NewWithEstimates(BloomFilterSize, BloomFalsePositive)
	for _, id := range articleIDs {
		filter.Add([]byte(id))
	}

	if err := saveBloomFilter(filter); err != nil {
		global.Log.Error("保存布隆过滤器失败", zap.Error(err))
		return err
	}
	return nil
}

// CheckBloomFilter 检查文章ID是否可能存在
func CheckBloomFilter(articleID string) (bool, error) {
	filter, err := getBloomFilter()
	if err != nil {
		global.Log.Error("获取布隆过滤器失败", zap.Error(err))
		return false, err
	}

	return filter.Test([]byte(articleID)), nil
}

// DeleteArticleStats 删除文章统计数据
func DeleteArticleStats(articleID string) error {
	return global.Redis.Del(
		context.Background(),
		GetArticleStatsKey(articleID),
	).Err()
}
