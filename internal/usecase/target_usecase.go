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

type TargetUsecase interface {
	Create(ctx context.Context, req *dto.TargetRequest) (*dto.TargetResponse, error)
	GetAll(ctx context.Context) ([]dto.TargetResponse, error)
}

type targetUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	targetRepo repository.TargetRepository
}

func NewTargetUsecase(db *gorm.DB, log *logrus.Logger, targetRepo repository.TargetRepository) TargetUsecase {
	return &targetUsecase{
		db:         db,
		log:        log,
		targetRepo: targetRepo,
	}
}

func (u *targetUsecase) Create(ctx context.Context, req *dto.TargetRequest) (*dto.TargetResponse, error) {
	db := u.db.WithContext(ctx)
	existing, err := u.targetRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find target by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTargetAlreadyExists
	}

	target := &entity.Target{Name: req.Name}
	if err := u.targetRepo.Create(db, target); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrTargetAlreadyExists
		}
		u.log.Warnf("Failed to create target: %+v", err)
		return nil, err
	}

	return converter.TargetToResponse(target), nil
}

func (u *targetUsecase) GetAll(ctx context.Context) ([]dto.TargetResponse, error) {
	targets, err := u.targetRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all targets: %+v", err)
		return nil, err
	}
	return converter.TargetsToResponses(targets), nil
}

// resolveTargets loads the targets with the given ids and fails when any is missing.
func resolveTargets(db *gorm.DB, log *logrus.Logger, targetRepo repository.TargetRepository, ids []int64) ([]entity.Target, error) {
	if len(ids) == 0 {
		return []entity.Target{}, nil
	}
	targets, err := targetRepo.FindByIDs(db, ids)
	if err != nil {
		log.Warnf("Failed to find targets: %+v", err)
		return nil, err
	}
	if missing := missingIDs(ids, targets, func(t entity.Target) int64 { return t.ID }); len(missing) > 0 {
		return nil, errMissing("target", missing)
	}
	return targets, nil
}
