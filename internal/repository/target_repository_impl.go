package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"gorm.io/gorm"
)

type targetRepository struct{}

func NewTargetRepository() domainRepo.TargetRepository {
	return &targetRepository{}
}

func (r *targetRepository) Create(db *gorm.DB, target *entity.Target) error {
	return db.Create(target).Error
}

func (r *targetRepository) FindByID(db *gorm.DB, id int64) (*entity.Target, error) {
	return first[entity.Target](db.Where("id = ?", id))
}

func (r *targetRepository) FindByIDs(db *gorm.DB, ids []int64) ([]entity.Target, error) {
	var targets []entity.Target
	if len(ids) == 0 {
		return targets, nil
	}
	if err := db.Where("id IN ?", ids).Order("id ASC").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *targetRepository) FindByName(db *gorm.DB, name string) (*entity.Target, error) {
	return first[entity.Target](db.Where("name = ?", name))
}

func (r *targetRepository) FindAll(db *gorm.DB) ([]entity.Target, error) {
	var targets []entity.Target
	if err := db.Order("id ASC").Find(&targets).Error; err != nil {
		return nil, err
	}
	return targets, nil
}
