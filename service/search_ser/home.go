package search_ser

import (
	"paperly/models"

	"golang.org/x/sync/errgroup"
)

// HomeData 首页聚合数据
type HomeData struct {
	Recent     []models.ArticleModel   `json:"recent"`
	MostViewed []models.ArticleModel   `json:"most_viewed"`
	Categories []*models.CategoryModel `json:"categories"`
	Tags       []models.TagModel       `json:"tags"`
}

// HomePage 并发聚合首页各板块
func HomePage() (*HomeData, error) {
	var data HomeData
	var g errgroup.Group

	g.Go(func() (err error) {
		data.Recent, err = models.RecentPublished(10)
		return err
	})
	g.Go(func() (err error) {
		data.MostViewed, err = models.MostViewed(10)
		return err
	})
	g.Go(func() (err error) {
		data.Categories, err = models.CategoryTree()
		return err
	})
	g.Go(func() (err error) {
		data.Tags, err = models.TagList()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
