package ctypes

// ArticleStatus 文章状态
type ArticleStatus string

const (
	StatusDraft       ArticleStatus = "draft"       // 草稿
	StatusPending     ArticleStatus = "pending"     // 待审核
	StatusApproved    ArticleStatus = "approved"    // 已批准
	StatusPublished   ArticleStatus = "published"   // 已发布
	StatusRejected    ArticleStatus = "rejected"    // 已拒绝
	StatusUnpublished ArticleStatus = "unpublished" // 已下线
)

// statusTransitions 状态机转移表，文章状态只能沿着这张表流转
var statusTransitions = map[ArticleStatus][]ArticleStatus{
	StatusDraft:       {StatusPending},
	StatusPending:     {StatusApproved, StatusRejected},
	StatusApproved:    {StatusPublished, StatusDraft},
	StatusPublished:   {StatusUnpublished, StatusDraft},
	StatusRejected:    {StatusDraft},
	StatusUnpublished: {StatusPublished, StatusDraft},
}

// IsValid 检查状态是否在封闭集合内
func (s ArticleStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo 检查状态能否转移到目标状态
func (s ArticleStatus) CanTransitionTo(target ArticleStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
