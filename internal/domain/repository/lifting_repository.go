package repository

import (
	"time"

	"self-fitness/internal/domain/entity"
	"self-fitness/pkg/pagination"

	"gorm.io/gorm"
)

type GymRepository interface {
	Create(db *gorm.DB, gym *entity.Gym) error
	Update(db *gorm.DB, gym *entity.Gym) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Gym, error)
	FindByName(db *gorm.DB, name string) (*entity.Gym, error)
	FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Gym, int64, error)
}

type MuscleRepository interface {
	Create(db *gorm.DB, muscle *entity.Muscle) error
	Update(db *gorm.DB, muscle *entity.Muscle) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Muscle, error)
	FindByIDs(db *gorm.DB, ids []int64) ([]entity.Muscle, error)
	FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Muscle, int64, error)
	Count(db *gorm.DB) (int64, error)
}

type TargetRepository interface {
	Create(db *gorm.DB, target *entity.Target) error
	FindByID(db *gorm.DB, id int64) (*entity.Target, error)
	FindByIDs(db *gorm.DB, ids []int64) ([]entity.Target, error)
	FindByName(db *gorm.DB, name string) (*entity.Target, error)
	FindAll(db *gorm.DB) ([]entity.Target, error)
}

type ExerciseRepository interface {
	Create(db *gorm.DB, exercise *entity.Exercise) error
	Update(db *gorm.DB, exercise *entity.Exercise) error
	ReplaceMuscles(db *gorm.DB, exercise *entity.Exercise, main, support []entity.Muscle) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Exercise, error)
	FindAll(db *gorm.DB) ([]entity.Exercise, error)
}

type RoutineRepository interface {
	Create(db *gorm.DB, routine *entity.Routine) error
	Update(db *gorm.DB, routine *entity.Routine) error
	ReplaceTargets(db *gorm.DB, routine *entity.Routine, targets []entity.Target) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Routine, error)
	FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Routine, int64, error)
}

type SlotRepository interface {
	Create(db *gorm.DB, slot *entity.Slot) error
	FindByID(db *gorm.DB, id int64) (*entity.Slot, error)
	CountByRoutineIDs(db *gorm.DB, routineIDs []int64) (int64, error)
}

type WorkoutRepository interface {
	Create(db *gorm.DB, workout *entity.Workout) error
	Update(db *gorm.DB, workout *entity.Workout) error
	ReplaceTargets(db *gorm.DB, workout *entity.Workout, targets []entity.Target) error
	AttachRoutine(db *gorm.DB, workoutID, routineID int64) error
	Delete(db *gorm.DB, id int64) error
	FindByID(db *gorm.DB, id int64) (*entity.Workout, error)
	FindAll(db *gorm.DB) ([]entity.Workout, error)
	FindStartedBetween(db *gorm.DB, from, to time.Time) ([]entity.Workout, error)
}
