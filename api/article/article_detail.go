package article

import (
	"errors"
	"net/http"
	"strconv"

	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/service/redis_ser"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ArticleDetail 文章详情，付费文章要求订阅权限
func (a *Article) ArticleDetail(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	if err := utils.Validate(req); err != nil {
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	var article models.ArticleModel
	if err := article.FindByID(req.ID); err != nil {
		if errors.Is(err, models.ErrArticleNotFound) {
			res.Error(c, res.ArticleNotFound, "文章不存在")
			return
		}
		global.Log.Error("article.FindByID() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取文章失败")
		return
	}

	// 非发布状态的文章只对作者和有审稿能力的角色可见
	if article.Status != ctypes.StatusPublished {
		claims := middleware.GetClaims(c)
		if claims == nil || (claims.UserID != article.AuthorID && !claims.Role.Can(ctypes.CapModerateArticle)) {
			res.Error(c, res.ArticleNotFound, "文章不存在")
			return
		}
	}

	// 付费文章校验订阅
	if article.IsPremium {
		claims := middleware.GetClaims(c)
		if claims == nil || !claims.Role.Can(ctypes.CapReadPremium) {
			res.HttpError(c, http.StatusForbidden, res.SubscriptionRequired, "该文章为付费内容，需要有效订阅")
			return
		}
		if claims.Role == ctypes.RoleSubscriber {
			active, err := models.HasActiveSubscription(claims.UserID)
			if err != nil || !active {
				res.HttpError(c, http.StatusForbidden, res.SubscriptionExpired, "订阅已过期")
				return
			}
		}
	}

	article.Tags, _ = models.ArticleTags(article.ID)

	// 浏览计数走Redis，定时任务落库
	// 布隆过滤器只用来挡掉对统计键的无效写入，不参与文章本身的查找
	if article.Status == ctypes.StatusPublished {
		idStr := strconv.Itoa(int(article.ID))
		if exists, err := redis_ser.CheckBloomFilter(idStr); err == nil && exists {
			_ = redis_ser.IncrArticleViewCount(idStr, c.ClientIP())
		}
	}

	res.Success(c, article)
}
