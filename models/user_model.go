package models

import (
	"errors"
	"fmt"

	"paperly/global"
	"paperly/models/ctypes"
	"paperly/utils"

	"gorm.io/gorm"
)

// UserModel 用户模型
type UserModel struct {
	MODEL    `json:","`
	FullName string          `json:"full_name" gorm:"column:full_name;size:100" validate:"required,min=2,max=100"`
	Email    string          `json:"email" gorm:"uniqueIndex:idx_email,length:191" validate:"required,email"`
	Password string          `json:"-" validate:"required,min=6"`
	Address  string          `json:"address"`
	Role     ctypes.UserRole `json:"role" validate:"required"`
}

// Create 创建用户
func (u *UserModel) Create(ip string) error {
	// 验证用户输入
	if err := utils.Validate(u); err != nil {
		return fmt.Errorf("输入验证失败: %w", err)
	}
	if !u.Role.IsValid() {
		return errors.New("无效的用户角色")
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		// 检查邮箱是否已注册
		if err := u.checkExist(tx); err != nil {
			return fmt.Errorf("用户检查失败: %w", err)
		}

		// 密码加密
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("密码处理失败: %w", err)
		}
		u.Password = hashedPassword

		// 获取地址信息
		u.Address = utils.GetAddrByIp(ip)

		if err := tx.Create(u).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}

		return nil
	})
}

// checkExist 检查邮箱是否已存在
func (u *UserModel) checkExist(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&UserModel{}).
		Where("email = ?", u.Email).
		Count(&count).
		Error

	if err != nil {
		return fmt.Errorf("检查用户存在性失败: %w", err)
	}
	if count > 0 {
		return errors.New("邮箱已注册")
	}
	return nil
}

// FindByEmail 根据邮箱查找用户
func (u *UserModel) FindByEmail(email string) error {
	return global.DB.Where("email = ?", email).Take(u).Error
}

// FindByID 根据ID查找用户
func (u *UserModel) FindByID(id uint) error {
	return global.DB.Take(u, id).Error
}

// UpdatePassword 更新用户密码
func (u *UserModel) UpdatePassword(newPassword string) error {
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("密码处理失败: %w", err)
	}

	return global.DB.Model(u).Update("password", hashedPassword).Error
}

// UpdateProfile 更新用户信息
func (u *UserModel) UpdateProfile(updates map[string]interface{}) error {
	// 过滤敏感字段
	sensitiveFields := []string{"password", "email", "role"}
	for _, field := range sensitiveFields {
		delete(updates, field)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(u).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新用户信息失败: %w", err)
		}
		return nil
	})
}

// UpdateRole 更新用户角色
func (u *UserModel) UpdateRole(role ctypes.UserRole) error {
	if !role.IsValid() {
		return errors.New("无效的用户角色")
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(u).Update("role", role).Error; err != nil {
			return fmt.Errorf("更新用户角色失败: %w", err)
		}
		// 失去编辑身份后清空其分类授权
		if role != ctypes.RoleEditor && u.Role == ctypes.RoleEditor {
			if err := tx.Where("editor_id = ?", u.ID).Delete(&EditorCategoryModel{}).Error; err != nil {
				return fmt.Errorf("清空编辑分类授权失败: %w", err)
			}
		}
		u.Role = role
		return nil
	})
}

// Delete 删除用户并级联清理其评论、订阅、订阅申请和编辑分类授权
func (u *UserModel) Delete() error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("editor_id = ?", u.ID).Delete(&EditorCategoryModel{}).Error; err != nil {
			return fmt.Errorf("清理编辑分类授权失败: %w", err)
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&CommentModel{}).Error; err != nil {
			return fmt.Errorf("清理用户评论失败: %w", err)
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&SubscriptionModel{}).Error; err != nil {
			return fmt.Errorf("清理用户订阅失败: %w", err)
		}
		if err := tx.Where("user_id = ?", u.ID).Delete(&SubscriptionRequestModel{}).Error; err != nil {
			return fmt.Errorf("清理订阅申请失败: %w", err)
		}
		if err := tx.Delete(u).Error; err != nil {
			return fmt.Errorf("删除用户失败: %w", err)
		}
		return nil
	})
}

// ValidatePassword 验证密码
func (u *UserModel) ValidatePassword(password string) bool {
	return utils.CheckPassword(u.Password, password)
}

// IsAdmin 检查是否为管理员
func (u *UserModel) IsAdmin() bool {
	return u.Role == ctypes.RoleAdmin
}

// UserList 分页获取用户列表，可按角色过滤
func UserList(info PageInfo, role ctypes.UserRole) (list []UserModel, total int64, err error) {
	query := global.DB.Model(&UserModel{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if info.Key != "" {
		query = query.Where("email LIKE ? OR full_name LIKE ?", "%"+info.Key+"%", "%"+info.Key+"%")
	}

	if err = query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("统计用户数量失败: %w", err)
	}

	err = query.Order("created_at DESC").
		Limit(info.PageSize).
		Offset(info.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("获取用户列表失败: %w", err)
	}
	return list, total, nil
}

// GetTotalUsers 获取用户总数
func GetTotalUsers() (int64, error) {
	var count int64
	err := global.DB.Model(&UserModel{}).Count(&count).Error
	return count, err
}
