package models

import (
	"testing"
	"time"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpConsume(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveOtp("user@test.local", "123456"))
	require.NoError(t, ConsumeOtp("user@test.local", "123456"))

	// 验证码一次性，消耗后再次使用失败
	assert.ErrorIs(t, ConsumeOtp("user@test.local", "123456"), ErrOtpInvalid)
}

func TestOtpWrongCode(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveOtp("user@test.local", "123456"))
	assert.ErrorIs(t, ConsumeOtp("user@test.local", "654321"), ErrOtpInvalid)

	// 校验失败不消耗，正确的验证码依然可用
	require.NoError(t, ConsumeOtp("user@test.local", "123456"))
}

func TestOtpOverwrite(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SaveOtp("user@test.local", "111111"))
	require.NoError(t, SaveOtp("user@test.local", "222222"))

	// 同邮箱只保留最新一条
	assert.ErrorIs(t, ConsumeOtp("user@test.local", "111111"), ErrOtpInvalid)
	require.NoError(t, ConsumeOtp("user@test.local", "222222"))
}

func TestOtpExpired(t *testing.T) {
	setupTestDB(t)

	expired := OtpModel{
		Email:     "user@test.local",
		Code:      "123456",
		ExpiresAt: ctypes.MyTime(time.Now().Add(-time.Minute)),
	}
	require.NoError(t, global.DB.Create(&expired).Error)

	assert.ErrorIs(t, ConsumeOtp("user@test.local", "123456"), ErrOtpInvalid)
}
