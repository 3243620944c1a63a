package category

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryList 两级分类树
func (ca *Category) CategoryList(c *gin.Context) {
	tree, err := models.CategoryTree()
	if err != nil {
		global.Log.Error("models.CategoryTree() failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取分类失败")
		return
	}
	res.Success(c, tree)
}
