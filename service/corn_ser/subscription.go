package corn_ser

import (
	"paperly/global"
	"paperly/models"

	"go.uber.org/zap"
)

// SweepExpiredSubscriptions 每日将订阅过期的订阅者降级为访客
func SweepExpiredSubscriptions() {
	affected, err := models.DowngradeExpiredSubscribers()
	if err != nil {
		global.Log.Error("清理过期订阅失败", zap.String("error", err.Error()))
		return
	}
	if affected > 0 {
		global.Log.Info("过期订阅者已降级", zap.Int64("count", affected))
	}
}
