package repository

import (
	"time"

	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type workoutRepository struct{}

func NewWorkoutRepository() domainRepo.WorkoutRepository {
	return &workoutRepository{}
}

func preloadWorkout(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Gym").
		Preload("Targets").
		Preload("Routine.Targets").
		Preload("Routine.Slots.Exercise")
}

func (r *workoutRepository) Create(db *gorm.DB, workout *entity.Workout) error {
	return db.Omit(clause.Associations).Create(workout).Error
}

func (r *workoutRepository) Update(db *gorm.DB, workout *entity.Workout) error {
	return db.Omit(clause.Associations).Save(workout).Error
}

func (r *workoutRepository) ReplaceTargets(db *gorm.DB, workout *entity.Workout, targets []entity.Target) error {
	return db.Model(workout).Omit("Targets.*").Association("Targets").Replace(targets)
}

func (r *workoutRepository) AttachRoutine(db *gorm.DB, workoutID, routineID int64) error {
	return db.Model(&entity.Workout{}).Where("id = ?", workoutID).Update("routine_id", routineID).Error
}

func (r *workoutRepository) Delete(db *gorm.DB, id int64) error {
	return db.Select("Targets").Delete(&entity.Workout{ID: id}).Error
}

func (r *workoutRepository) FindByID(db *gorm.DB, id int64) (*entity.Workout, error) {
	return first[entity.Workout](preloadWorkout(db).Where("id = ?", id))
}

func (r *workoutRepository) FindAll(db *gorm.DB) ([]entity.Workout, error) {
	var workouts []entity.Workout
	err := preloadWorkout(db).Order("start_time DESC NULLS LAST, id DESC").Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *workoutRepository) FindStartedBetween(db *gorm.DB, from, to time.Time) ([]entity.Workout, error) {
	var workouts []entity.Workout
	err := db.
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	return workouts, nil
}
