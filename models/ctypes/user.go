package ctypes

// UserRole 用户角色
type UserRole string

const (
	RoleGuest      UserRole = "guest"
	RoleSubscriber UserRole = "subscriber"
	RoleWriter     UserRole = "writer"
	RoleEditor     UserRole = "editor"
	RoleAdmin      UserRole = "admin"
)

// Capability 角色能力
type Capability string

const (
	CapReadPremium      Capability = "read_premium"      // 阅读付费文章
	CapWriteArticle     Capability = "write_article"     // 创建和管理自己的文章
	CapModerateArticle  Capability = "moderate_article"  // 审核文章（批准/拒绝/发布）
	CapManageUsers      Capability = "manage_users"      // 管理用户和角色
	CapManageCategories Capability = "manage_categories" // 管理分类和标签
	CapManageEditors    Capability = "manage_editors"    // 管理编辑的分类分配
)

// roleCapabilities 各角色的能力集合，取代散落在各处的角色判断
var roleCapabilities = map[UserRole]map[Capability]bool{
	RoleGuest:      {},
	RoleSubscriber: {CapReadPremium: true},
	RoleWriter:     {CapWriteArticle: true, CapReadPremium: true},
	RoleEditor:     {CapModerateArticle: true, CapReadPremium: true},
	RoleAdmin: {
		CapReadPremium:      true,
		CapWriteArticle:     true,
		CapModerateArticle:  true,
		CapManageUsers:      true,
		CapManageCategories: true,
		CapManageEditors:    true,
	},
}

// IsValid 检查角色是否在封闭集合内
func (r UserRole) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can 检查角色是否具备指定能力
func (r UserRole) Can(cap Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	return caps[cap]
}
