package repository

import (
	"self-fitness/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByOpenID(db *gorm.DB, openID string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	AppendRoles(db *gorm.DB, user *entity.User, roles ...entity.Role) error
	RemoveRole(db *gorm.DB, user *entity.User, role *entity.Role) error
}
