package ctypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleCapabilities(t *testing.T) {
	assert.False(t, RoleGuest.Can(CapReadPremium))
	assert.True(t, RoleSubscriber.Can(CapReadPremium))
	assert.False(t, RoleSubscriber.Can(CapWriteArticle))

	// 作者可以阅读付费文章，自己的付费稿件不受订阅限制
	assert.True(t, RoleWriter.Can(CapWriteArticle))
	assert.True(t, RoleWriter.Can(CapReadPremium))
	assert.False(t, RoleWriter.Can(CapModerateArticle))

	assert.True(t, RoleEditor.Can(CapModerateArticle))
	assert.True(t, RoleEditor.Can(CapReadPremium))
	assert.False(t, RoleEditor.Can(CapManageUsers))

	// 管理员具备全部能力
	for _, cap := range []Capability{CapReadPremium, CapWriteArticle, CapModerateArticle, CapManageUsers, CapManageCategories, CapManageEditors} {
		assert.True(t, RoleAdmin.Can(cap), string(cap))
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []UserRole{RoleGuest, RoleSubscriber, RoleWriter, RoleEditor, RoleAdmin} {
		assert.True(t, r.IsValid(), string(r))
	}
	assert.False(t, UserRole("superuser").IsValid())
	assert.False(t, UserRole("").IsValid())
}

func TestRequestStatusIsValid(t *testing.T) {
	for _, s := range []RequestStatus{RequestPending, RequestApproved, RequestRejected} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, RequestStatus("cancelled").IsValid())
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	assert.False(t, UserRole("superuser").Can(CapManageUsers))
}
