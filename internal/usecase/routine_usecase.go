package usecase

import (
	"context"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"
	"self-fitness/pkg/pagination"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RoutineUsecase interface {
	Create(ctx context.Context, req *dto.RoutineRequest) (*dto.RoutineResponse, error)
	CreateTemplate(ctx context.Context, req *dto.RoutineRequest) (*dto.RoutineResponse, error)
	Update(ctx context.Context, id int64, req *dto.RoutineRequest) (*dto.RoutineResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RoutineResponse, error)
	Delete(ctx context.Context, id int64) error
	GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.RoutineResponse], error)
	AddSlot(ctx context.Context, req *dto.SlotRequest) (*dto.SlotResponse, error)
}

type routineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	routineRepo  repository.RoutineRepository
	slotRepo     repository.SlotRepository
	workoutRepo  repository.WorkoutRepository
	targetRepo   repository.TargetRepository
	exerciseRepo repository.ExerciseRepository
}

func NewRoutineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	routineRepo repository.RoutineRepository,
	slotRepo repository.SlotRepository,
	workoutRepo repository.WorkoutRepository,
	targetRepo repository.TargetRepository,
	exerciseRepo repository.ExerciseRepository,
) RoutineUsecase {
	return &routineUsecase{
		db:           db,
		log:          log,
		routineRepo:  routineRepo,
		slotRepo:     slotRepo,
		workoutRepo:  workoutRepo,
		targetRepo:   targetRepo,
		exerciseRepo: exerciseRepo,
	}
}

// Create builds a routine for an existing workout.
func (u *routineUsecase) Create(ctx context.Context, req *dto.RoutineRequest) (*dto.RoutineResponse, error) {
	if req.WorkoutID == nil {
		return nil, ErrRoutineWorkoutRequired
	}
	return u.create(ctx, req, req.WorkoutID)
}

// CreateTemplate builds a reusable routine that belongs to no workout.
func (u *routineUsecase) CreateTemplate(ctx context.Context, req *dto.RoutineRequest) (*dto.RoutineResponse, error) {
	return u.create(ctx, req, nil)
}

func (u *routineUsecase) create(ctx context.Context, req *dto.RoutineRequest, workoutID *int64) (*dto.RoutineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var workout *entity.Workout
	if workoutID != nil {
		var err error
		workout, err = u.workoutRepo.FindByID(tx, *workoutID)
		if err != nil {
			u.log.Warnf("Failed to find workout by ID: %+v", err)
			return nil, err
		}
		if workout == nil {
			return nil, ErrWorkoutNotFound
		}
		if workout.RoutineID != nil {
			return nil, ErrRoutineAlreadyAttached
		}
	}

	targets, err := resolveTargets(tx, u.log, u.targetRepo, req.TargetIDs)
	if err != nil {
		return nil, err
	}

	routine := &entity.Routine{
		Name:        req.Name,
		Description: req.Description,
		Template:    workout == nil,
		Checklist:   toChecklist(req.Checklist),
		Note:        req.Note,
	}
	if err := u.routineRepo.Create(tx, routine); err != nil {
		u.log.Warnf("Failed to create routine: %+v", err)
		return nil, err
	}

	if err := u.routineRepo.ReplaceTargets(tx, routine, targets); err != nil {
		u.log.Warnf("Failed to set routine targets: %+v", err)
		return nil, err
	}
	routine.Targets = targets

	if workout != nil {
		if err := u.workoutRepo.AttachRoutine(tx, workout.ID, routine.ID); err != nil {
			if isDuplicateKeyError(err, "routine") {
				return nil, ErrRoutineAlreadyAttached
			}
			u.log.Warnf("Failed to attach routine to workout: %+v", err)
			return nil, err
		}
		routine.Workout = workout
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoutineToResponse(routine), nil
}

// Update replaces the name, description, note, targets and checklist.
func (u *routineUsecase) Update(ctx context.Context, id int64, req *dto.RoutineRequest) (*dto.RoutineResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	routine, err := u.findRoutine(tx, id)
	if err != nil {
		return nil, err
	}

	targets, err := resolveTargets(tx, u.log, u.targetRepo, req.TargetIDs)
	if err != nil {
		return nil, err
	}

	routine.Name = req.Name
	routine.Description = req.Description
	routine.Note = req.Note
	routine.Checklist = toChecklist(req.Checklist)
	if err := u.routineRepo.Update(tx, routine); err != nil {
		u.log.Warnf("Failed to update routine: %+v", err)
		return nil, err
	}

	if err := u.routineRepo.ReplaceTargets(tx, routine, targets); err != nil {
		u.log.Warnf("Failed to replace routine targets: %+v", err)
		return nil, err
	}
	routine.Targets = targets

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoutineToResponse(routine), nil
}

func (u *routineUsecase) GetByID(ctx context.Context, id int64) (*dto.RoutineResponse, error) {
	routine, err := u.findRoutine(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.RoutineToResponse(routine), nil
}

func (u *routineUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.findRoutine(tx, id); err != nil {
		return err
	}

	if err := u.routineRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete routine: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *routineUsecase) GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.RoutineResponse], error) {
	routines, total, err := u.routineRepo.FindPage(u.db.WithContext(ctx), name, page)
	if err != nil {
		u.log.Warnf("Failed to find routines: %+v", err)
		return nil, err
	}

	result := pagination.Map(pagination.NewPage(routines, page, total), func(r entity.Routine) dto.RoutineResponse {
		return *converter.RoutineToResponse(&r)
	})
	return &result, nil
}

// AddSlot appends an exercise prescription to a routine.
func (u *routineUsecase) AddSlot(ctx context.Context, req *dto.SlotRequest) (*dto.SlotResponse, error) {
	category, ok := entity.ParseCategory(req.Category)
	if !ok {
		return nil, ErrInvalidSlotCategory
	}
	if req.Weight.IsNegative() {
		return nil, ErrNegativeSlotWeight
	}

	db := u.db.WithContext(ctx)
	if _, err := u.findRoutine(db, req.RoutineID); err != nil {
		return nil, err
	}

	exercise, err := u.exerciseRepo.FindByID(db, req.ExerciseID)
	if err != nil {
		u.log.Warnf("Failed to find exercise by ID: %+v", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}

	slot := &entity.Slot{
		RoutineID:  req.RoutineID,
		ExerciseID: req.ExerciseID,
		Stars:      req.Stars,
		Category:   category,
		SetNumber:  req.SetNumber,
		Weight:     req.Weight,
		Reps:       req.Reps,
		Duration:   req.Duration,
		Sequence:   req.Sequence,
	}
	if err := u.slotRepo.Create(db, slot); err != nil {
		u.log.Warnf("Failed to create slot: %+v", err)
		return nil, err
	}
	slot.Exercise = *exercise

	return converter.SlotToResponse(slot), nil
}

func (u *routineUsecase) findRoutine(db *gorm.DB, id int64) (*entity.Routine, error) {
	routine, err := u.routineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find routine by ID: %+v", err)
		return nil, err
	}
	if routine == nil {
		return nil, ErrRoutineNotFound
	}
	return routine, nil
}

func toChecklist(items []dto.ChecklistItem) entity.Checklist {
	checklist := make(entity.Checklist, len(items))
	for i, item := range items {
		checklist[i] = entity.ChecklistItem{Name: item.Name, IsOptional: item.IsOptional}
	}
	return checklist
}
