package repository

import (
	"self-fitness/internal/domain/entity"
	domainRepo "self-fitness/internal/domain/repository"
	"self-fitness/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var routineSortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"template": "template",
}

type routineRepository struct{}

func NewRoutineRepository() domainRepo.RoutineRepository {
	return &routineRepository{}
}

func preloadRoutine(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Targets").
		Preload("Workout").
		Preload("Slots.Exercise.MainMuscles").
		Preload("Slots.Exercise.SupportMuscles")
}

func (r *routineRepository) Create(db *gorm.DB, routine *entity.Routine) error {
	return db.Omit(clause.Associations).Create(routine).Error
}

func (r *routineRepository) Update(db *gorm.DB, routine *entity.Routine) error {
	return db.Omit(clause.Associations).Save(routine).Error
}

func (r *routineRepository) ReplaceTargets(db *gorm.DB, routine *entity.Routine, targets []entity.Target) error {
	return db.Model(routine).Omit("Targets.*").Association("Targets").Replace(targets)
}

// Delete removes the routine with its slots and detaches it from any workout.
func (r *routineRepository) Delete(db *gorm.DB, id int64) error {
	if err := db.Model(&entity.Workout{}).Where("routine_id = ?", id).Update("routine_id", nil).Error; err != nil {
		return err
	}
	if err := db.Where("routine_id = ?", id).Delete(&entity.Slot{}).Error; err != nil {
		return err
	}
	return db.Select("Targets").Delete(&entity.Routine{ID: id}).Error
}

func (r *routineRepository) FindByID(db *gorm.DB, id int64) (*entity.Routine, error) {
	return first[entity.Routine](preloadRoutine(db).Where("id = ?", id))
}

func (r *routineRepository) FindPage(db *gorm.DB, name string, page pagination.Pageable) ([]entity.Routine, int64, error) {
	routines, total, err := findPage[entity.Routine](db, name, page, routineSortColumns)
	if err != nil || len(routines) == 0 {
		return routines, total, err
	}

	ids := make([]int64, len(routines))
	for i, routine := range routines {
		ids[i] = routine.ID
	}

	var loaded []entity.Routine
	if err := preloadRoutine(db).Where("id IN ?", ids).Find(&loaded).Error; err != nil {
		return nil, 0, err
	}
	byID := make(map[int64]entity.Routine, len(loaded))
	for _, routine := range loaded {
		byID[routine.ID] = routine
	}
	for i, routine := range routines {
		routines[i] = byID[routine.ID]
	}
	return routines, total, nil
}

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) Create(db *gorm.DB, slot *entity.Slot) error {
	return db.Omit(clause.Associations).Create(slot).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id int64) (*entity.Slot, error) {
	return first[entity.Slot](db.Preload("Exercise.MainMuscles").Preload("Exercise.SupportMuscles").Where("id = ?", id))
}

func (r *slotRepository) CountByRoutineIDs(db *gorm.DB, routineIDs []int64) (int64, error) {
	var count int64
	if len(routineIDs) == 0 {
		return 0, nil
	}
	err := db.Model(&entity.Slot{}).Where("routine_id IN ?", routineIDs).Count(&count).Error
	return count, err
}
