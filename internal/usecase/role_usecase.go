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

type RoleUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.RoleCreateRequest) (*dto.RoleResponse, error)
	GetAll(ctx context.Context) ([]dto.RoleResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error)
	AssignPermission(ctx context.Context, actorID uuid.UUID, roleID int64, req *dto.AssignPermissionRequest) (*dto.RoleResponse, error)
	RemovePermission(ctx context.Context, actorID uuid.UUID, roleID int64, req *dto.AssignPermissionRequest) (*dto.RoleResponse, error)
}

type roleUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	roleRepo       repository.RoleRepository
	permissionRepo repository.PermissionRepository
	auditService   service.AuditService
}

func NewRoleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roleRepo repository.RoleRepository,
	permissionRepo repository.PermissionRepository,
	auditService service.AuditService,
) RoleUsecase {
	return &roleUsecase{
		db:             db,
		log:            log,
		roleRepo:       roleRepo,
		permissionRepo: permissionRepo,
		auditService:   auditService,
	}
}

func (u *roleUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.RoleCreateRequest) (*dto.RoleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.roleRepo.FindByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleAlreadyExists
	}

	role := &entity.Role{Name: req.Name}
	if err := u.roleRepo.Create(tx, role); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoleAlreadyExists
		}
		u.log.Warnf("Failed to create role: %+v", err)
		return nil, err
	}

	// unknown permission names are ignored
	if len(req.PermissionNames) > 0 {
		permissions, err := u.permissionRepo.FindByNames(tx, req.PermissionNames)
		if err != nil {
			u.log.Warnf("Failed to find permissions: %+v", err)
			return nil, err
		}
		if len(permissions) > 0 {
			if err := u.roleRepo.AppendPermissions(tx, role, permissions...); err != nil {
				u.log.Warnf("Failed to assign permissions: %+v", err)
				return nil, err
			}
		}
	}

	response := converter.RoleToResponse(role)
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionRoleCreate, "role", idString(role.ID), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *roleUsecase) GetAll(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := u.roleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all roles: %+v", err)
		return nil, err
	}

	return converter.RolesToResponses(roles), nil
}

func (u *roleUsecase) GetByID(ctx context.Context, id int64) (*dto.RoleResponse, error) {
	role, err := u.findRole(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.RoleToResponse(role), nil
}

func (u *roleUsecase) AssignPermission(ctx context.Context, actorID uuid.UUID, roleID int64, req *dto.AssignPermissionRequest) (*dto.RoleResponse, error) {
	return u.changePermission(ctx, actorID, roleID, req.PermissionName, entity.AuditActionRolePermAssign,
		func(tx *gorm.DB, role *entity.Role, permission *entity.Permission) error {
			if role.HasPermission(permission.Name) {
				return nil
			}
			return u.roleRepo.AppendPermissions(tx, role, *permission)
		})
}

func (u *roleUsecase) RemovePermission(ctx context.Context, actorID uuid.UUID, roleID int64, req *dto.AssignPermissionRequest) (*dto.RoleResponse, error) {
	return u.changePermission(ctx, actorID, roleID, req.PermissionName, entity.AuditActionRolePermRemove,
		func(tx *gorm.DB, role *entity.Role, permission *entity.Permission) error {
			return u.roleRepo.RemovePermission(tx, role, permission)
		})
}

func (u *roleUsecase) changePermission(ctx context.Context, actorID uuid.UUID, roleID int64, permissionName, action string, apply func(*gorm.DB, *entity.Role, *entity.Permission) error) (*dto.RoleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	role, err := u.findRole(tx, roleID)
	if err != nil {
		return nil, err
	}

	permission, err := u.permissionRepo.FindByName(tx, permissionName)
	if err != nil {
		u.log.Warnf("Failed to find permission by name: %+v", err)
		return nil, err
	}
	if permission == nil {
		return nil, ErrPermissionNotFound
	}

	if err := apply(tx, role, permission); err != nil {
		u.log.Warnf("Failed to change role permissions: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, action, entity.JSON{
		"role":       role.Name,
		"permission": permission.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.RoleToResponse(role), nil
}

func (u *roleUsecase) findRole(db *gorm.DB, id int64) (*entity.Role, error) {
	role, err := u.roleRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find role by ID: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}
