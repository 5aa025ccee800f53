package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in with a password or a WeChat code.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password   string    `gorm:"type:text;not null" json:"-"`
	Email      *string   `gorm:"type:varchar(255);uniqueIndex" json:"email,omitempty"`
	Nickname   string    `gorm:"type:varchar(100)" json:"nickname,omitempty"`
	OpenID     *string   `gorm:"column:open_id;type:varchar(64);uniqueIndex" json:"-"`
	UnionID    *string   `gorm:"column:union_id;type:varchar(64)" json:"-"`
	SessionKey string    `gorm:"type:varchar(128)" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName prefers the WeChat nickname, then the username.
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	if u.Username != "" {
		return u.Username
	}
	return DefaultWeChatNickname
}

// RoleNames returns the bare role names, e.g. ADMIN.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}

// Authorities returns ROLE_<name> for each role followed by the permission
// names granted through those roles, without duplicates.
func (u *User) Authorities() []string {
	seen := make(map[string]struct{})
	var authorities []string
	add := func(a string) {
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		authorities = append(authorities, a)
	}

	for _, role := range u.Roles {
		add(RolePrefix + role.Name)
	}
	for _, role := range u.Roles {
		for _, permission := range role.Permissions {
			add(permission.Name)
		}
	}
	return authorities
}

func (u *User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}

const DefaultWeChatNickname = "微信用户"
