package models

import (
	"errors"
	"fmt"
	"time"

	"paperly/global"
	"paperly/models/ctypes"

	"gorm.io/gorm"
)

// SubscriptionModel 用户订阅，每个用户至多一行
type SubscriptionModel struct {
	MODEL     `json:","`
	UserID    uint          `json:"user_id" gorm:"uniqueIndex:idx_subscription_user"`
	ExpiresAt ctypes.MyTime `json:"expires_at"`
	User      UserModel     `json:"user" gorm:"foreignKey:UserID"`
}

var ErrInvalidDays = errors.New("订阅天数必须大于0")

// IsActive 判断订阅是否在有效期内
func (s *SubscriptionModel) IsActive() bool {
	return s.ExpiresAt.Time().After(time.Now())
}

// ExtendSubscription 为用户延长订阅
// 始终在已存储的到期时间上叠加，首次订阅从当前时间起算，访客同时提升为订阅者角色
func ExtendSubscription(userID uint, days int) (*SubscriptionModel, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	var sub *SubscriptionModel
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		sub, txErr = extendSubscriptionTx(tx, userID, days)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// extendSubscriptionTx 在既有事务内延长订阅
func extendSubscriptionTx(tx *gorm.DB, userID uint, days int) (*SubscriptionModel, error) {
	if days <= 0 {
		return nil, ErrInvalidDays
	}

	var user UserModel
	if err := tx.Take(&user, userID).Error; err != nil {
		return nil, errors.New("用户不存在")
	}

	var sub SubscriptionModel
	err := tx.Where("user_id = ?", userID).Take(&sub).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub = SubscriptionModel{
			UserID:    userID,
			ExpiresAt: ctypes.MyTime(time.Now().AddDate(0, 0, days)),
		}
		if err := tx.Create(&sub).Error; err != nil {
			return nil, fmt.Errorf("创建订阅失败: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("查询订阅失败: %w", err)
	default:
		// 始终在已存储的到期时间上叠加，过期的订阅也不回拨到当前时间
		sub.ExpiresAt = ctypes.MyTime(sub.ExpiresAt.Time().AddDate(0, 0, days))
		if err := tx.Model(&sub).Update("expires_at", sub.ExpiresAt).Error; err != nil {
			return nil, fmt.Errorf("延长订阅失败: %w", err)
		}
	}

	// 访客续费后提升为订阅者，其他角色保持不变
	if user.Role == ctypes.RoleGuest {
		if err := tx.Model(&user).Update("role", ctypes.RoleSubscriber).Error; err != nil {
			return nil, fmt.Errorf("更新用户角色失败: %w", err)
		}
	}
	return &sub, nil
}

// SubscriptionOf 获取用户的订阅记录
func SubscriptionOf(userID uint) (*SubscriptionModel, error) {
	var sub SubscriptionModel
	err := global.DB.Where("user_id = ?", userID).Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// HasActiveSubscription 检查用户是否有有效订阅
func HasActiveSubscription(userID uint) (bool, error) {
	var count int64
	err := global.DB.Model(&SubscriptionModel{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Count(&count).Error
	return count > 0, err
}

// DowngradeExpiredSubscribers 将订阅已过期的订阅者降级为访客，返回降级人数
func DowngradeExpiredSubscribers() (int64, error) {
	var affected int64
	err := global.DB.Transaction(func(tx *gorm.DB) error {
		var expiredUserIDs []uint
		if err := tx.Model(&SubscriptionModel{}).
			Where("expires_at <= ?", time.Now()).
			Pluck("user_id", &expiredUserIDs).Error; err != nil {
			return fmt.Errorf("查询过期订阅失败: %w", err)
		}
		if len(expiredUserIDs) == 0 {
			return nil
		}

		result := tx.Model(&UserModel{}).
			Where("id IN ? AND role = ?", expiredUserIDs, ctypes.RoleSubscriber).
			Update("role", ctypes.RoleGuest)
		if result.Error != nil {
			return fmt.Errorf("降级过期订阅者失败: %w", result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	return affected, err
}
