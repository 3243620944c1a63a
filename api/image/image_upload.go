package image

import (
	"mime/multipart"
	"sync"

	"paperly/global"
	"paperly/models"
	"paperly/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageUpload 上传图片，支持多文件并发处理
func (i *Image) ImageUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		global.Log.Error("c.MultipartForm() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "获取MultipartForm失败")
		return
	}

	fileList, ok := form.File["images"]
	if !ok || len(fileList) == 0 {
		res.Error(c, res.InvalidParameter, "参数验证失败")
		return
	}

	var (
		wg      sync.WaitGroup
		resList []models.UploadResponse
		mutex   sync.Mutex
	)

	for _, file := range fileList {
		wg.Add(1)
		go func(file *multipart.FileHeader) {
			defer wg.Done()

			serviceRes := (&models.ImageModel{}).Upload(file)

			mutex.Lock()
			resList = append(resList, serviceRes)
			mutex.Unlock()
		}(file)
	}
	wg.Wait()

	res.Success(c, resList)
}
