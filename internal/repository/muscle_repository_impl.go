package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"
	"self-fitness/pkg/pagination"

	"gorm.io/gorm"
)

var muscleSortColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"originName": "origin_name",
}

type muscleRepository struct{}

func NewMuscleRepository() domainRepo.MuscleRepository {
	return &muscleRepository{}
}

func (r *muscleRepository) Create(db *gorm.DB, muscle *entity.Muscle) error {
	return db.Create(muscle).Error
}

func (r *muscleRepository) Update(db *gorm.DB, muscle *entity.Muscle) error {
	return db.Save(muscle).Error
}

func (r *muscleRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Muscle{}).Error
}

func (r *muscleRepository) FindByID(db *gorm.DB, id int64) (*entity.Muscle, error) {
	return first[entity.Muscle](db.Where("id = ?", id))
}

func (r *muscleRepository) FindByIDs(db *gorm.DB, ids []int64) ([]entity.Muscle, error) {
	var muscles []entity.Muscle
	if len(ids) == 0 {
		return muscles, nil
	}
	if err := db.Where("id IN ?", ids).Order("id ASC").Find(&muscles).Error; err != nil {
		return nil, err
	}
	return muscles, nil
}

func (r *muscleRepository) FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Muscle, int64, error) {
	return findPage[entity.Muscle](db, name, page, muscleSortColumns)
}

func (r *muscleRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Muscle{}).Count(&count).Error
	return count, err
}
