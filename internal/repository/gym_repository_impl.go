package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"
	"self-fitness/pkg/pagination"

	"gorm.io/gorm"
)

var gymSortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"location": "location",
}

type gymRepository struct{}

func NewGymRepository() domainRepo.GymRepository {
	return &gymRepository{}
}

func (r *gymRepository) Create(db *gorm.DB, gym *entity.Gym) error {
	return db.Create(gym).Error
}

func (r *gymRepository) Update(db *gorm.DB, gym *entity.Gym) error {
	return db.Save(gym).Error
}

func (r *gymRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Gym{}).Error
}

func (r *gymRepository) FindByID(db *gorm.DB, id int64) (*entity.Gym, error) {
	return first[entity.Gym](db.Where("id = ?", id))
}

func (r *gymRepository) FindByName(db *gorm.DB, name string) (*entity.Gym, error) {
	return first[entity.Gym](db.Where("name = ?", name))
}

func (r *gymRepository) FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Gym, int64, error) {
	return findPage[entity.Gym](db, name, page, gymSortColumns)
}
