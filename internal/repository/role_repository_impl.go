package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Create(db *gorm.DB, role *entity.Role) error {
	return db.Omit(clause.Associations).Create(role).Error
}

func (r *roleRepository) FindByID(db *gorm.DB, id int64) (*entity.Role, error) {
	return first[entity.Role](db.Preload("Permissions").Where("id = ?", id))
}

func (r *roleRepository) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	return first[entity.Role](db.Preload("Permissions").Where("name = ?", name))
}

func (r *roleRepository) FindByNames(db *gorm.DB, names []string) ([]entity.Role, error) {
	var roles []entity.Role
	if len(names) == 0 {
		return roles, nil
	}
	err := db.Preload("Permissions").Where("name IN ?", names).Order("id ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) FindAll(db *gorm.DB) ([]entity.Role, error) {
	var roles []entity.Role
	err := db.Preload("Permissions").Order("id ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) AppendPermissions(db *gorm.DB, role *entity.Role, permissions ...entity.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	return db.Model(role).Omit("Permissions.*").Association("Permissions").Append(permissions)
}

func (r *roleRepository) RemovePermission(db *gorm.DB, role *entity.Role, permission *entity.Permission) error {
	return db.Model(role).Association("Permissions").Delete(permission)
}

type permissionRepository struct{}

func NewPermissionRepository() domainRepo.PermissionRepository {
	return &permissionRepository{}
}

func (r *permissionRepository) Create(db *gorm.DB, permission *entity.Permission) error {
	return db.Create(permission).Error
}

func (r *permissionRepository) FindByID(db *gorm.DB, id int64) (*entity.Permission, error) {
	return first[entity.Permission](db.Where("id = ?", id))
}

func (r *permissionRepository) FindByName(db *gorm.DB, name string) (*entity.Permission, error) {
	return first[entity.Permission](db.Where("name = ?", name))
}

func (r *permissionRepository) FindByNames(db *gorm.DB, names []string) ([]entity.Permission, error) {
	var permissions []entity.Permission
	if len(names) == 0 {
		return permissions, nil
	}
	err := db.Where("name IN ?", names).Order("id ASC").Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepository) FindAll(db *gorm.DB) ([]entity.Permission, error) {
	var permissions []entity.Permission
	err := db.Order("id ASC").Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}
