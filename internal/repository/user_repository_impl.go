package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return db.Omit(clause.Associations).Save(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return first[entity.User](db.Preload("Roles.Permissions").Where("id = ?", id))
}

func (r *userRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	return first[entity.User](db.Preload("Roles.Permissions").Where("username = ?", username))
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return first[entity.User](db.Where("email = ?", email))
}

func (r *userRepository) FindByOpenID(db *gorm.DB, openID string) (*entity.User, error) {
	return first[entity.User](db.Preload("Roles").Where("open_id = ?", openID))
}

func (r *userRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("Roles").Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AppendRoles(db *gorm.DB, user *entity.User, roles ...entity.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return db.Model(user).Omit("Roles.*").Association("Roles").Append(roles)
}

func (r *userRepository) RemoveRole(db *gorm.DB, user *entity.User, role *entity.Role) error {
	return db.Model(user).Association("Roles").Delete(role)
}
