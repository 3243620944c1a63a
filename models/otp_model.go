package models

import (
	"errors"
	"time"

	"paperly/global"
	"paperly/models/ctypes"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OtpModel 找回密码验证码，每个邮箱只保留最新一条
type OtpModel struct {
	MODEL     `json:","`
	Email     string        `json:"email" gorm:"uniqueIndex:idx_otp_email,length:191"`
	Code      string        `json:"-" gorm:"size:10"`
	ExpiresAt ctypes.MyTime `json:"expires_at"`
}

const OtpTTL = 10 * time.Minute

var ErrOtpInvalid = errors.New("验证码无效或已过期")

// SaveOtp 写入验证码，同邮箱覆盖旧记录
func SaveOtp(email, code string) error {
	otp := OtpModel{
		Email:     email,
		Code:      code,
		ExpiresAt: ctypes.MyTime(time.Now().Add(OtpTTL)),
	}
	return global.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "updated_at"}),
	}).Create(&otp).Error
}

// ConsumeOtp 校验验证码并删除，校验失败不消耗
func ConsumeOtp(email, code string) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var otp OtpModel
		err := tx.Where("email = ?", email).Take(&otp).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOtpInvalid
		}
		if err != nil {
			return err
		}

		if otp.Code != code || otp.ExpiresAt.Time().Before(time.Now()) {
			return ErrOtpInvalid
		}

		return tx.Unscoped().Delete(&otp).Error
	})
}
