package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type exerciseRepository struct{}

func NewExerciseRepository() domainRepo.ExerciseRepository {
	return &exerciseRepository{}
}

func (r *exerciseRepository) Create(db *gorm.DB, exercise *entity.Exercise) error {
	return db.Omit(clause.Associations).Create(exercise).Error
}

func (r *exerciseRepository) Update(db *gorm.DB, exercise *entity.Exercise) error {
	return db.Omit(clause.Associations).Save(exercise).Error
}

// ReplaceMuscles swaps both muscle sets of the exercise.
func (r *exerciseRepository) ReplaceMuscles(db *gorm.DB, exercise *entity.Exercise, main, support []entity.Muscle) error {
	if err := db.Model(exercise).Omit("MainMuscles.*").Association("MainMuscles").Replace(main); err != nil {
		return err
	}
	return db.Model(exercise).Omit("SupportMuscles.*").Association("SupportMuscles").Replace(support)
}

func (r *exerciseRepository) Delete(db *gorm.DB, id int64) error {
	exercise := &entity.Exercise{ID: id}
	return db.Select("MainMuscles", "SupportMuscles").Delete(exercise).Error
}

func (r *exerciseRepository) FindByID(db *gorm.DB, id int64) (*entity.Exercise, error) {
	return first[entity.Exercise](db.Preload("MainMuscles").Preload("SupportMuscles").Where("id = ?", id))
}

func (r *exerciseRepository) FindAll(db *gorm.DB) ([]entity.Exercise, error) {
	var exercises []entity.Exercise
	err := db.Preload("MainMuscles").Preload("SupportMuscles").Order("id ASC").Find(&exercises).Error
	if err != nil {
		return nil, err
	}
	return exercises, nil
}
