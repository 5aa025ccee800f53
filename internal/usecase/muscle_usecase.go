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

type MuscleUsecase interface {
	Create(ctx context.Context, req *dto.MuscleRequest) (*dto.MuscleResponse, error)
	Update(ctx context.Context, id int64, req *dto.MuscleRequest) (*dto.MuscleResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.MuscleResponse, error)
	Delete(ctx context.Context, id int64) error
	GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.MuscleResponse], error)
}

type muscleUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	muscleRepo repository.MuscleRepository
}

func NewMuscleUsecase(db *gorm.DB, log *logrus.Logger, muscleRepo repository.MuscleRepository) MuscleUsecase {
	return &muscleUsecase{
		db:         db,
		log:        log,
		muscleRepo: muscleRepo,
	}
}

func (u *muscleUsecase) Create(ctx context.Context, req *dto.MuscleRequest) (*dto.MuscleResponse, error) {
	muscle := &entity.Muscle{}
	applyMuscleRequest(muscle, req)

	if err := u.muscleRepo.Create(u.db.WithContext(ctx), muscle); err != nil {
		u.log.Warnf("Failed to create muscle: %+v", err)
		return nil, err
	}

	return converter.MuscleToResponse(muscle), nil
}

func (u *muscleUsecase) Update(ctx context.Context, id int64, req *dto.MuscleRequest) (*dto.MuscleResponse, error) {
	db := u.db.WithContext(ctx)
	muscle, err := u.findMuscle(db, id)
	if err != nil {
		return nil, err
	}

	applyMuscleRequest(muscle, req)
	if err := u.muscleRepo.Update(db, muscle); err != nil {
		u.log.Warnf("Failed to update muscle: %+v", err)
		return nil, err
	}

	return converter.MuscleToResponse(muscle), nil
}

func (u *muscleUsecase) GetByID(ctx context.Context, id int64) (*dto.MuscleResponse, error) {
	muscle, err := u.findMuscle(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.MuscleToResponse(muscle), nil
}

func (u *muscleUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)
	if _, err := u.findMuscle(db, id); err != nil {
		return err
	}

	if err := u.muscleRepo.Delete(db, id); err != nil {
		u.log.Warnf("Failed to delete muscle: %+v", err)
		return err
	}
	return nil
}

func (u *muscleUsecase) GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.MuscleResponse], error) {
	muscles, total, err := u.muscleRepo.FindPage(u.db.WithContext(ctx), name, page)
	if err != nil {
		u.log.Warnf("Failed to find muscles: %+v", err)
		return nil, err
	}

	result := pagination.Map(pagination.NewPage(muscles, page, total), func(m entity.Muscle) dto.MuscleResponse {
		return *converter.MuscleToResponse(&m)
	})
	return &result, nil
}

func (u *muscleUsecase) findMuscle(db *gorm.DB, id int64) (*entity.Muscle, error) {
	muscle, err := u.muscleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find muscle by ID: %+v", err)
		return nil, err
	}
	if muscle == nil {
		return nil, ErrMuscleNotFound
	}
	return muscle, nil
}

func applyMuscleRequest(muscle *entity.Muscle, req *dto.MuscleRequest) {
	muscle.Name = req.Name
	muscle.Description = req.Description
	muscle.Function = req.Function
	muscle.OriginName = req.OriginName
}
