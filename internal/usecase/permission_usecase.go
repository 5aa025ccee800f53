package usecase

import (
	"context"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"
	"self-fitness/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PermissionUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.PermissionCreateRequest) (*dto.PermissionResponse, error)
	GetAll(ctx context.Context) ([]dto.PermissionResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PermissionResponse, error)
}

type permissionUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	permissionRepo repository.PermissionRepository
	auditService   service.AuditService
}

func NewPermissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	permissionRepo repository.PermissionRepository,
	auditService service.AuditService,
) PermissionUsecase {
	return &permissionUsecase{
		db:             db,
		log:            log,
		permissionRepo: permissionRepo,
		auditService:   auditService,
	}
}

func (u *permissionUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.PermissionCreateRequest) (*dto.PermissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.permissionRepo.FindByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find permission by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPermissionAlreadyExists
	}

	permission := &entity.Permission{Name: req.Name}
	if err := u.permissionRepo.Create(tx, permission); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrPermissionAlreadyExists
		}
		u.log.Warnf("Failed to create permission: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionPermissionCreate, "permission", idString(permission.ID), permission.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PermissionToResponse(permission), nil
}

func (u *permissionUsecase) GetAll(ctx context.Context) ([]dto.PermissionResponse, error) {
	permissions, err := u.permissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all permissions: %+v", err)
		return nil, err
	}

	return converter.PermissionsToResponses(permissions), nil
}

func (u *permissionUsecase) GetByID(ctx context.Context, id int64) (*dto.PermissionResponse, error) {
	permission, err := u.permissionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find permission by ID: %+v", err)
		return nil, err
	}
	if permission == nil {
		return nil, ErrPermissionNotFound
	}

	return converter.PermissionToResponse(permission), nil
}
