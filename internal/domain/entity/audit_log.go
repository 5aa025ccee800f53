package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserLogin        = "user.login"
	AuditActionUserWeChatLogin  = "user.wechat_login"
	AuditActionUserLogout       = "user.logout"
	AuditActionUserCreate       = "user.create"
	AuditActionUserUpdate       = "user.update"
	AuditActionUserRoleAssign   = "user.role_assign"
	AuditActionUserRoleRemove   = "user.role_remove"
	AuditActionRoleCreate       = "role.create"
	AuditActionRolePermAssign   = "role.permission_assign"
	AuditActionRolePermRemove   = "role.permission_remove"
	AuditActionPermissionCreate = "permission.create"
	AuditActionWorkoutStart     = "workout.start"
	AuditActionWorkoutStop      = "workout.stop"
	AuditActionWorkoutDelete    = "workout.delete"
)
