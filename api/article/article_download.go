package article

import (
	"errors"
	"fmt"
	"net/http"

	"paperly/global"
	"paperly/middleware"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"
	"paperly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ArticleDownload 将文章导出为Markdown文件
func (a *Article) ArticleDownload(c *gin.Context) {
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
		res.Error(c, res.DBError, "获取文章失败")
		return
	}

	if article.Status != ctypes.StatusPublished {
		res.Error(c, res.ArticleNotFound, "文章不存在")
		return
	}

	if article.IsPremium {
		claims := middleware.GetClaims(c)
		if claims == nil || !claims.Role.Can(ctypes.CapReadPremium) {
			res.HttpError(c, http.StatusForbidden, res.SubscriptionRequired, "该文章为付费内容，需要有效订阅")
			return
		}
		// 订阅者还要校验订阅是否仍在有效期内
		if claims.Role == ctypes.RoleSubscriber {
			active, err := models.HasActiveSubscription(claims.UserID)
			if err != nil || !active {
				res.HttpError(c, http.StatusForbidden, res.SubscriptionExpired, "订阅已过期")
				return
			}
		}
	}

	markdown, err := utils.HTMLToMarkdown(article.Content)
	if err != nil {
		global.Log.Error("utils.HTMLToMarkdown() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "导出失败")
		return
	}

	body := fmt.Sprintf("# %s\n\n%s\n", article.Title, markdown)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="article-%d.md"`, article.ID))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(body))
}
