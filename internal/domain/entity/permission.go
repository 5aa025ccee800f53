package entity

type Permission struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Permission) TableName() string {
	return "permissions"
}

// Seeded permission names
const (
	PermissionUserCreate      = "user:create"
	PermissionUserRead        = "user:read"
	PermissionUserUpdate      = "user:update"
	PermissionUserManageRoles = "user:manage_roles"
	PermissionRoleManage      = "role:manage"
	PermissionRoleRead        = "role:read"
	PermissionManage          = "permission:manage"
	PermissionRead            = "permission:read"
)
