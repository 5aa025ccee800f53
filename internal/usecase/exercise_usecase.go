package usecase

import (
	"context"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ExerciseUsecase interface {
	Create(ctx context.Context, req *dto.ExerciseRequest) (*dto.ExerciseResponse, error)
	Update(ctx context.Context, id int64, req *dto.ExerciseRequest) (*dto.ExerciseResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ExerciseResponse, error)
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]dto.ExerciseResponse, error)
}

type exerciseUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	exerciseRepo repository.ExerciseRepository
	muscleRepo   repository.MuscleRepository
}

func NewExerciseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	exerciseRepo repository.ExerciseRepository,
	muscleRepo repository.MuscleRepository,
) ExerciseUsecase {
	return &exerciseUsecase{
		db:           db,
		log:          log,
		exerciseRepo: exerciseRepo,
		muscleRepo:   muscleRepo,
	}
}

func (u *exerciseUsecase) Create(ctx context.Context, req *dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exercise := &entity.Exercise{
		Name:        req.Name,
		Description: req.Description,
		Cues:        entity.StringList(req.Cues),
	}
	if err := u.exerciseRepo.Create(tx, exercise); err != nil {
		u.log.Warnf("Failed to create exercise: %+v", err)
		return nil, err
	}

	if err := u.setMuscles(tx, exercise, req); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ExerciseToResponse(exercise), nil
}

func (u *exerciseUsecase) Update(ctx context.Context, id int64, req *dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exercise, err := u.findExercise(tx, id)
	if err != nil {
		return nil, err
	}

	exercise.Name = req.Name
	exercise.Description = req.Description
	exercise.Cues = entity.StringList(req.Cues)
	if err := u.exerciseRepo.Update(tx, exercise); err != nil {
		u.log.Warnf("Failed to update exercise: %+v", err)
		return nil, err
	}

	if err := u.setMuscles(tx, exercise, req); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ExerciseToResponse(exercise), nil
}

func (u *exerciseUsecase) GetByID(ctx context.Context, id int64) (*dto.ExerciseResponse, error) {
	exercise, err := u.findExercise(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.ExerciseToResponse(exercise), nil
}

func (u *exerciseUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)
	if _, err := u.findExercise(db, id); err != nil {
		return err
	}

	if err := u.exerciseRepo.Delete(db, id); err != nil {
		if isForeignKeyError(err, "exercise") {
			return ErrExerciseInUse
		}
		u.log.Warnf("Failed to delete exercise: %+v", err)
		return err
	}
	return nil
}

func (u *exerciseUsecase) GetAll(ctx context.Context) ([]dto.ExerciseResponse, error) {
	exercises, err := u.exerciseRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all exercises: %+v", err)
		return nil, err
	}
	return converter.ExercisesToResponses(exercises), nil
}

func (u *exerciseUsecase) setMuscles(tx *gorm.DB, exercise *entity.Exercise, req *dto.ExerciseRequest) error {
	main, err := u.resolveMuscles(tx, req.MainMuscles)
	if err != nil {
		return err
	}
	support, err := u.resolveMuscles(tx, req.SupportMuscles)
	if err != nil {
		return err
	}

	if err := u.exerciseRepo.ReplaceMuscles(tx, exercise, main, support); err != nil {
		u.log.Warnf("Failed to replace exercise muscles: %+v", err)
		return err
	}
	exercise.MainMuscles = main
	exercise.SupportMuscles = support
	return nil
}

func (u *exerciseUsecase) resolveMuscles(tx *gorm.DB, ids []int64) ([]entity.Muscle, error) {
	if len(ids) == 0 {
		return []entity.Muscle{}, nil
	}
	muscles, err := u.muscleRepo.FindByIDs(tx, ids)
	if err != nil {
		u.log.Warnf("Failed to find muscles: %+v", err)
		return nil, err
	}
	if missing := missingIDs(ids, muscles, func(m entity.Muscle) int64 { return m.ID }); len(missing) > 0 {
		return nil, errMissing("muscle", missing)
	}
	return muscles, nil
}

func (u *exerciseUsecase) findExercise(db *gorm.DB, id int64) (*entity.Exercise, error) {
	exercise, err := u.exerciseRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find exercise by ID: %+v", err)
		return nil, err
	}
	if exercise == nil {
		return nil, ErrExerciseNotFound
	}
	return exercise, nil
}
