package ctypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ArticleStatus
		allowed  bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusPublished, false},
		{StatusDraft, StatusApproved, false},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPublished, false},
		{StatusApproved, StatusPublished, true},
		{StatusApproved, StatusDraft, true},
		{StatusPublished, StatusUnpublished, true},
		{StatusPublished, StatusDraft, true},
		{StatusPublished, StatusPending, false},
		{StatusRejected, StatusDraft, true},
		{StatusRejected, StatusPending, false},
		{StatusUnpublished, StatusPublished, true},
		{StatusUnpublished, StatusDraft, true},
		{StatusUnpublished, StatusPending, false},
	}

	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		assert.Equal(t, c.allowed, got, "%s -> %s", c.from, c.to)
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []ArticleStatus{StatusDraft, StatusPending, StatusApproved, StatusPublished, StatusRejected, StatusUnpublished} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, ArticleStatus("archived").IsValid())
	assert.False(t, ArticleStatus("").IsValid())
}
