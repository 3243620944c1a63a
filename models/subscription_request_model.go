package models

import (
	"errors"
	"fmt"

	"paperly/global"
	"paperly/models/ctypes"

	"gorm.io/gorm"
)

// SubscriptionRequestModel 订阅申请，由管理员审批
type SubscriptionRequestModel struct {
	MODEL  `json:","`
	UserID uint                 `json:"user_id" gorm:"index"`
	Days   int                  `json:"days" validate:"required,gt=0"`
	Status ctypes.RequestStatus `json:"status" gorm:"size:20;index"`
	User   UserModel            `json:"user" gorm:"foreignKey:UserID"`
}

func (SubscriptionRequestModel) TableName() string {
	return "subscription_requests"
}

var (
	ErrRequestNotFound = errors.New("订阅申请不存在")
	ErrRequestHandled  = errors.New("订阅申请已处理")
)

// Create 提交订阅申请
func (r *SubscriptionRequestModel) Create() error {
	if r.Days <= 0 {
		return ErrInvalidDays
	}
	r.Status = ctypes.RequestPending
	return global.DB.Create(r).Error
}

// Approve 批准订阅申请并延长订阅，状态守卫保证只处理一次
func (r *SubscriptionRequestModel) Approve() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&SubscriptionRequestModel{}).
			Where("id = ? AND status = ?", r.ID, ctypes.RequestPending).
			Update("status", ctypes.RequestApproved)
		if result.Error != nil {
			return fmt.Errorf("更新申请状态失败: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrRequestHandled
		}

		if _, err := extendSubscriptionTx(tx, r.UserID, r.Days); err != nil {
			return err
		}
		r.Status = ctypes.RequestApproved
		return nil
	})
}

// Reject 驳回订阅申请
func (r *SubscriptionRequestModel) Reject() error {
	result := global.DB.Model(&SubscriptionRequestModel{}).
		Where("id = ? AND status = ?", r.ID, ctypes.RequestPending).
		Update("status", ctypes.RequestRejected)
	if result.Error != nil {
		return fmt.Errorf("更新申请状态失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRequestHandled
	}
	r.Status = ctypes.RequestRejected
	return nil
}

// SubscriptionRequestList 分页获取订阅申请
func SubscriptionRequestList(info PageInfo, status ctypes.RequestStatus) (list []SubscriptionRequestModel, total int64, err error) {
	query := global.DB.Model(&SubscriptionRequestModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err = query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计订阅申请失败: %w", err)
	}

	err = query.Preload("User").
		Order("created_at DESC").
		Limit(info.PageSize).
		Offset(info.Offset()).
		Find(&list).Error
	return list, total, err
}
