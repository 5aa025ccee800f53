package usecase

import (
	"context"
	"errors"

	"self-fitness/internal/converter"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/domain/repository"
	"self-fitness/internal/infrastructure/wechat"
	"self-fitness/internal/service"
	"self-fitness/pkg/jwt"
	"self-fitness/pkg/password"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const tokenTypeBearer = "Bearer"

// WeChatSessionClient resolves a wx.login code into a WeChat session.
type WeChatSessionClient interface {
	Code2Session(ctx context.Context, code string) (*wechat.Session, error)
}

type AuthUsecase interface {
	Authenticate(ctx context.Context, req *dto.AuthenticateRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error
	WeChatLogin(ctx context.Context, req *dto.WeChatLoginRequest) (*dto.WeChatLoginResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	encoder      *password.Encoder
	wechatClient WeChatSessionClient
	auditService service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	encoder *password.Encoder,
	wechatClient WeChatSessionClient,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		encoder:      encoder,
		wechatClient: wechatClient,
		auditService: auditService,
	}
}

func (u *authUsecase) Authenticate(ctx context.Context, req *dto.AuthenticateRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil || !u.encoder.Matches(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	// the login succeeded even if the audit entry could not be written
	_ = u.auditService.Record(ctx, nil, &user.ID, entity.AuditActionUserLogin, entity.JSON{"username": user.Username})

	return tokens, nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil || claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.Exists(ctx, claims.UserID, jwt.RefreshToken, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if err := u.tokenStore.Revoke(ctx, claims.UserID, jwt.RefreshToken, claims.TokenID); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error {
	if err := u.tokenStore.Revoke(ctx, userID, jwt.AccessToken, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if req != nil && req.RefreshToken != "" {
		claims, err := u.jwtService.ValidateToken(req.RefreshToken)
		// a refresh token of another user is ignored
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == userID {
			if err := u.tokenStore.Revoke(ctx, userID, jwt.RefreshToken, claims.TokenID); err != nil {
				u.log.Warnf("Failed to revoke refresh token: %+v", err)
				return err
			}
		}
	}

	_ = u.auditService.Record(ctx, nil, &userID, entity.AuditActionUserLogout, nil)
	return nil
}

func (u *authUsecase) WeChatLogin(ctx context.Context, req *dto.WeChatLoginRequest) (*dto.WeChatLoginResponse, error) {
	session, err := u.wechatClient.Code2Session(ctx, req.Code)
	if err != nil {
		u.log.Warnf("Failed to exchange wechat code: %+v", err)
		var apiErr *wechat.APIError
		if errors.As(err, &apiErr) || errors.Is(err, wechat.ErrEmptyOpenID) {
			return nil, ErrWeChatLogin
		}
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByOpenID(tx, session.OpenID)
	if err != nil {
		u.log.Warnf("Failed to find user by openid: %+v", err)
		return nil, err
	}

	if user == nil {
		user, err = u.createWeChatUser(tx, session)
		if err != nil {
			return nil, err
		}
	} else if user.SessionKey != session.SessionKey {
		user.SessionKey = session.SessionKey
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update session key: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.Record(ctx, tx, &user.ID, entity.AuditActionUserWeChatLogin, nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.WeChatLoginResponse{
		TokenResponse: *tokens,
		User: dto.WeChatUserResponse{
			ID:       user.ID.String(),
			Username: user.DisplayName(),
			Email:    user.Email,
		},
	}, nil
}

func (u *authUsecase) createWeChatUser(tx *gorm.DB, session *wechat.Session) (*entity.User, error) {
	// WeChat accounts never sign in with a password
	hashed, err := u.encoder.Hash(uuid.NewString())
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	openID := session.OpenID
	user := &entity.User{
		Username:   "wx_" + openID,
		Password:   hashed,
		Nickname:   entity.DefaultWeChatNickname,
		OpenID:     &openID,
		SessionKey: session.SessionKey,
	}
	if session.UnionID != "" {
		unionID := session.UnionID
		user.UnionID = &unionID
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		u.log.Warnf("Failed to create wechat user: %+v", err)
		return nil, err
	}

	role, err := u.roleRepo.FindByName(tx, entity.RoleUser)
	if err != nil {
		u.log.Warnf("Failed to find default role: %+v", err)
		return nil, err
	}
	if role != nil {
		if err := u.userRepo.AppendRoles(tx, user, *role); err != nil {
			u.log.Warnf("Failed to assign default role: %+v", err)
			return nil, err
		}
	}

	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// issueTokens signs an access/refresh pair and registers both ids.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Username, user.RoleNames())
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Username)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, user.ID, jwt.AccessToken, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, user.ID, jwt.RefreshToken, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
