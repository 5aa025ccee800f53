package repository

import (
	"self-fitness/internal/domain/entity"

	"gorm.io/gorm"
)

type RoleRepository interface {
	Create(db *gorm.DB, role *entity.Role) error
	FindByID(db *gorm.DB, id int64) (*entity.Role, error)
	FindByName(db *gorm.DB, name string) (*entity.Role, error)
	FindByNames(db *gorm.DB, names []string) ([]entity.Role, error)
	FindAll(db *gorm.DB) ([]entity.Role, error)
	AppendPermissions(db *gorm.DB, role *entity.Role, permissions ...entity.Permission) error
	RemovePermission(db *gorm.DB, role *entity.Role, permission *entity.Permission) error
}

type PermissionRepository interface {
	Create(db *gorm.DB, permission *entity.Permission) error
	FindByID(db *gorm.DB, id int64) (*entity.Permission, error)
	FindByName(db *gorm.DB, name string) (*entity.Permission, error)
	FindByNames(db *gorm.DB, names []string) ([]entity.Permission, error)
	FindAll(db *gorm.DB) ([]entity.Permission, error)
}
