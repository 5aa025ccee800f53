package usecase

import (
	"context"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"
	"self-fitness/internal/service"
	"self-fitness/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.UserCreateRequest) (*dto.UserResponse, error)
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateCurrent(ctx context.Context, userID uuid.UUID, req *dto.UserUpdateRequest) (*dto.UserResponse, error)
	AssignRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.AssignRoleRequest) (*dto.UserResponse, error)
	RemoveRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.AssignRoleRequest) (*dto.UserResponse, error)
	// Authorities returns the role and permission authorities of a user,
	// or nil when the user no longer exists.
	Authorities(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	encoder      *password.Encoder
	auditService service.AuditService
	tokenStore   service.TokenStore
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	encoder *password.Encoder,
	auditService service.AuditService,
	tokenStore service.TokenStore,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		encoder:      encoder,
		auditService: auditService,
		tokenStore:   tokenStore,
	}
}

func (u *userUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.UserCreateRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.checkUnique(tx, req.Username, req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hashedPassword, err := u.encoder.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	// unknown role names are ignored
	if len(req.RoleNames) > 0 {
		roles, err := u.roleRepo.FindByNames(tx, req.RoleNames)
		if err != nil {
			u.log.Warnf("Failed to find roles: %+v", err)
			return nil, err
		}
		if len(roles) > 0 {
			if err := u.userRepo.AppendRoles(tx, user, roles...); err != nil {
				u.log.Warnf("Failed to assign roles: %+v", err)
				return nil, err
			}
		}
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionUserCreate, "user", user.ID.String(),
		map[string]interface{}{"username": user.Username, "roles": user.RoleNames()}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) UpdateCurrent(ctx context.Context, userID uuid.UUID, req *dto.UserUpdateRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.findUser(tx, userID)
	if err != nil {
		return nil, err
	}

	oldValue := map[string]interface{}{"username": user.Username, "email": user.Email}

	username := ""
	if req.Username != nil && *req.Username != user.Username {
		username = *req.Username
	}
	var email *string
	if req.Email != nil && (user.Email == nil || *req.Email != *user.Email) {
		email = req.Email
	}
	if err := u.checkUnique(tx, username, email, user.ID); err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != nil {
		user.Email = email
	}
	if req.Password != nil {
		hashedPassword, err := u.encoder.Hash(*req.Password)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserUpdate, "user", user.ID.String(),
		oldValue, map[string]interface{}{"username": user.Username, "email": user.Email, "password_changed": req.Password != nil}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// a new password signs out every session, including the current one
	if req.Password != nil {
		if err := u.tokenStore.RevokeAll(ctx, user.ID); err != nil {
			u.log.Warnf("Failed to revoke tokens after password change: %+v", err)
			return nil, err
		}
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) AssignRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.AssignRoleRequest) (*dto.UserResponse, error) {
	return u.changeRole(ctx, actorID, userID, req.RoleName, entity.AuditActionUserRoleAssign, func(tx *gorm.DB, user *entity.User, role *entity.Role) error {
		if user.HasRole(role.Name) {
			return nil
		}
		return u.userRepo.AppendRoles(tx, user, *role)
	})
}

func (u *userUsecase) RemoveRole(ctx context.Context, actorID, userID uuid.UUID, req *dto.AssignRoleRequest) (*dto.UserResponse, error) {
	return u.changeRole(ctx, actorID, userID, req.RoleName, entity.AuditActionUserRoleRemove, func(tx *gorm.DB, user *entity.User, role *entity.Role) error {
		return u.userRepo.RemoveRole(tx, user, role)
	})
}

func (u *userUsecase) changeRole(ctx context.Context, actorID, userID uuid.UUID, roleName, action string, apply func(*gorm.DB, *entity.User, *entity.Role) error) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.findUser(tx, userID)
	if err != nil {
		return nil, err
	}

	role, err := u.roleRepo.FindByName(tx, roleName)
	if err != nil {
		u.log.Warnf("Failed to find role by name: %+v", err)
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}

	if err := apply(tx, user, role); err != nil {
		u.log.Warnf("Failed to change user roles: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(ctx, tx, &actorID, action, entity.JSON{
		"user_id": user.ID.String(),
		"role":    role.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Authorities(ctx context.Context, userID uuid.UUID) ([]string, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return user.Authorities(), nil
}

func (u *userUsecase) findUser(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// checkUnique rejects a username or email already held by a user other than self.
// Empty values are not checked.
func (u *userUsecase) checkUnique(db *gorm.DB, username string, email *string, self uuid.UUID) error {
	if username != "" {
		existing, err := u.userRepo.FindByUsername(db, username)
		if err != nil {
			u.log.Warnf("Failed to find user by username: %+v", err)
			return err
		}
		if existing != nil && existing.ID != self {
			return ErrUsernameAlreadyExists
		}
	}
	if email != nil && *email != "" {
		existing, err := u.userRepo.FindByEmail(db, *email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return err
		}
		if existing != nil && existing.ID != self {
			return ErrEmailAlreadyExists
		}
	}
	return nil
}
