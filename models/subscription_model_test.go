package models

import (
	"testing"
	"time"

	"paperly/global"
	"paperly/models/ctypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendSubscriptionCreates(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "guest@test.local", ctypes.RoleGuest)

	sub, err := ExtendSubscription(user.ID, 7)
	require.NoError(t, err)

	expected := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, expected, sub.ExpiresAt.Time(), time.Minute)

	// 访客续费后提升为订阅者
	var fresh UserModel
	require.NoError(t, fresh.FindByID(user.ID))
	assert.Equal(t, ctypes.RoleSubscriber, fresh.Role)
}

func TestExtendSubscriptionIsAdditive(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "guest@test.local", ctypes.RoleGuest)

	_, err := ExtendSubscription(user.ID, 7)
	require.NoError(t, err)
	sub, err := ExtendSubscription(user.ID, 7)
	require.NoError(t, err)

	// 有效期内续费在到期时间上叠加
	expected := time.Now().AddDate(0, 0, 14)
	assert.WithinDuration(t, expected, sub.ExpiresAt.Time(), time.Minute)
}

func TestExtendSubscriptionAfterExpiry(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "guest@test.local", ctypes.RoleGuest)

	// 先写入一条已过期的订阅
	expired := SubscriptionModel{
		UserID:    user.ID,
		ExpiresAt: ctypes.MyTime(time.Now().AddDate(0, 0, -30)),
	}
	require.NoError(t, global.DB.Create(&expired).Error)

	sub, err := ExtendSubscription(user.ID, 7)
	require.NoError(t, err)

	// 过期的订阅也在存储的到期时间上叠加，不回拨到当前时间
	expected := time.Now().AddDate(0, 0, -23)
	assert.WithinDuration(t, expected, sub.ExpiresAt.Time(), time.Minute)
	assert.False(t, sub.IsActive())
}

func TestExtendSubscriptionInvalidDays(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "guest@test.local", ctypes.RoleGuest)

	_, err := ExtendSubscription(user.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidDays)
	_, err = ExtendSubscription(user.ID, -3)
	assert.ErrorIs(t, err, ErrInvalidDays)
}

func TestExtendSubscriptionKeepsHigherRoles(t *testing.T) {
	setupTestDB(t)
	editor := createTestUser(t, "editor@test.local", ctypes.RoleEditor)

	_, err := ExtendSubscription(editor.ID, 7)
	require.NoError(t, err)

	var fresh UserModel
	require.NoError(t, fresh.FindByID(editor.ID))
	assert.Equal(t, ctypes.RoleEditor, fresh.Role)
}

func TestDowngradeExpiredSubscribers(t *testing.T) {
	setupTestDB(t)
	expired := createTestUser(t, "expired@test.local", ctypes.RoleSubscriber)
	active := createTestUser(t, "active@test.local", ctypes.RoleSubscriber)

	require.NoError(t, global.DB.Create(&SubscriptionModel{
		UserID:    expired.ID,
		ExpiresAt: ctypes.MyTime(time.Now().AddDate(0, 0, -1)),
	}).Error)
	require.NoError(t, global.DB.Create(&SubscriptionModel{
		UserID:    active.ID,
		ExpiresAt: ctypes.MyTime(time.Now().AddDate(0, 0, 10)),
	}).Error)

	affected, err := DowngradeExpiredSubscribers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var u1, u2 UserModel
	require.NoError(t, u1.FindByID(expired.ID))
	require.NoError(t, u2.FindByID(active.ID))
	assert.Equal(t, ctypes.RoleGuest, u1.Role)
	assert.Equal(t, ctypes.RoleSubscriber, u2.Role)
}

func TestSubscriptionRequestLifecycle(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "guest@test.local", ctypes.RoleGuest)

	request := SubscriptionRequestModel{UserID: user.ID, Days: 30}
	require.NoError(t, request.Create())
	assert.Equal(t, ctypes.RequestPending, request.Status)

	require.NoError(t, request.Approve())
	assert.Equal(t, ctypes.RequestApproved, request.Status)

	// 已处理的申请不能再处理
	assert.ErrorIs(t, request.Approve(), ErrRequestHandled)
	assert.ErrorIs(t, request.Reject(), ErrRequestHandled)

	// 批准后订阅生效
	sub, err := SubscriptionOf(user.ID)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.True(t, sub.IsActive())
}
