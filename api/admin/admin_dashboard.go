package admin

import (
	"paperly/global"
	"paperly/models"
	"paperly/models/ctypes"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardResponse struct {
	TotalUsers     int64 `json:"total_users"`
	PendingCount   int64 `json:"pending_count"`
	PublishedCount int64 `json:"published_count"`
	DraftCount     int64 `json:"draft_count"`
	RejectedCount  int64 `json:"rejected_count"`
}

// Dashboard 后台数据总览
func (a *Admin) Dashboard(c *gin.Context) {
	var data DashboardResponse
	var g errgroup.Group

	g.Go(func() (err error) {
		data.TotalUsers, err = models.GetTotalUsers()
		return err
	})
	g.Go(func() (err error) {
		data.PendingCount, err = models.CountArticlesByStatus(ctypes.StatusPending)
		return err
	})
	g.Go(func() (err error) {
		data.PublishedCount, err = models.CountArticlesByStatus(ctypes.StatusPublished)
		return err
	})
	g.Go(func() (err error) {
		data.DraftCount, err = models.CountArticlesByStatus(ctypes.StatusDraft)
		return err
	})
	g.Go(func() (err error) {
		data.RejectedCount, err = models.CountArticlesByStatus(ctypes.StatusRejected)
		return err
	})

	if err := g.Wait(); err != nil {
		global.Log.Error("dashboard statistics failed", zap.String("error", err.Error()))
		res.Error(c, res.DBError, "获取统计数据失败")
		return
	}

	res.Success(c, data)
}
