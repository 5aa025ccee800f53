package entity

// Role groups permissions and is granted to users.
type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	// Relationships
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// RolePrefix marks role authorities, e.g. ROLE_ADMIN.
const RolePrefix = "ROLE_"

// Seeded role names
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
