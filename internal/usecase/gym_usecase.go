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

type GymUsecase interface {
	Create(ctx context.Context, req *dto.GymRequest) (*dto.GymResponse, error)
	Update(ctx context.Context, id int64, req *dto.GymRequest) (*dto.GymResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.GymResponse, error)
	Delete(ctx context.Context, id int64) error
	GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.GymResponse], error)
}

type gymUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	gymRepo repository.GymRepository
}

func NewGymUsecase(db *gorm.DB, log *logrus.Logger, gymRepo repository.GymRepository) GymUsecase {
	return &gymUsecase{
		db:      db,
		log:     log,
		gymRepo: gymRepo,
	}
}

func (u *gymUsecase) Create(ctx context.Context, req *dto.GymRequest) (*dto.GymResponse, error) {
	db := u.db.WithContext(ctx)
	if err := u.checkName(db, req.Name, 0); err != nil {
		return nil, err
	}

	gym := &entity.Gym{Name: req.Name, Location: req.Location}
	if err := u.gymRepo.Create(db, gym); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrGymAlreadyExists
		}
		u.log.Warnf("Failed to create gym: %+v", err)
		return nil, err
	}

	return converter.GymToResponse(gym), nil
}

func (u *gymUsecase) Update(ctx context.Context, id int64, req *dto.GymRequest) (*dto.GymResponse, error) {
	db := u.db.WithContext(ctx)
	gym, err := u.findGym(db, id)
	if err != nil {
		return nil, err
	}
	if err := u.checkName(db, req.Name, id); err != nil {
		return nil, err
	}

	gym.Name = req.Name
	gym.Location = req.Location
	if err := u.gymRepo.Update(db, gym); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrGymAlreadyExists
		}
		u.log.Warnf("Failed to update gym: %+v", err)
		return nil, err
	}

	return converter.GymToResponse(gym), nil
}

func (u *gymUsecase) GetByID(ctx context.Context, id int64) (*dto.GymResponse, error) {
	gym, err := u.findGym(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return converter.GymToResponse(gym), nil
}

func (u *gymUsecase) Delete(ctx context.Context, id int64) error {
	db := u.db.WithContext(ctx)
	if _, err := u.findGym(db, id); err != nil {
		return err
	}

	if err := u.gymRepo.Delete(db, id); err != nil {
		if isForeignKeyError(err, "gym") {
			return ErrGymInUse
		}
		u.log.Warnf("Failed to delete gym: %+v", err)
		return err
	}
	return nil
}

func (u *gymUsecase) GetPage(ctx context.Context, name string, page pagination.Pageable) (*pagination.Page[dto.GymResponse], error) {
	gyms, total, err := u.gymRepo.FindPage(u.db.WithContext(ctx), name, page)
	if err != nil {
		u.log.Warnf("Failed to find gyms: %+v", err)
		return nil, err
	}

	result := pagination.Map(pagination.NewPage(gyms, page, total), func(g entity.Gym) dto.GymResponse {
		return *converter.GymToResponse(&g)
	})
	return &result, nil
}

func (u *gymUsecase) findGym(db *gorm.DB, id int64) (*entity.Gym, error) {
	gym, err := u.gymRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find gym by ID: %+v", err)
		return nil, err
	}
	if gym == nil {
		return nil, ErrGymNotFound
	}
	return gym, nil
}

func (u *gymUsecase) checkName(db *gorm.DB, name string, self int64) error {
	existing, err := u.gymRepo.FindByName(db, name)
	if err != nil {
		u.log.Warnf("Failed to find gym by name: %+v", err)
		return err
	}
	if existing != nil && existing.ID != self {
		return ErrGymAlreadyExists
	}
	return nil
}
