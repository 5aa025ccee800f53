package usecase

import (
	"context"
	"testing"
	"time"

	"self-fitness/config"
	"self-fitness/internal/delivery/dto"
	"self-fitness/internal/domain/entity"
	"self-fitness/internal/infrastructure/wechat"
	"self-fitness/internal/service"
	"self-fitness/pkg/jwt"
	"self-fitness/pkg/password"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase  AuthUsecase
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	audit    *fakeAuditService
	wechat   *fakeWeChat
	jwt      *jwt.JWTService
	store    service.TokenStore
	redis    *miniredis.Miniredis
	admin    *entity.User
	mockDone func()
}

func newAuthFixture(t *testing.T, expectTx bool) *authFixture {
	t.Helper()
	db, mock := newMockDB(t)
	if expectTx {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	admin := &entity.User{
		ID:       uuid.New(),
		Username: "admin",
		Password: "legacy",
		Roles:    []entity.Role{{ID: 1, Name: entity.RoleAdmin}},
	}
	f := &authFixture{
		users:  newFakeUserRepo(admin),
		roles:  &fakeRoleRepo{roles: []*entity.Role{{ID: 1, Name: entity.RoleAdmin}, {ID: 2, Name: entity.RoleUser}}},
		audit:  &fakeAuditService{},
		wechat: &fakeWeChat{},
		jwt: jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			Issuer:        "self-fitness",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 24 * time.Hour,
		}),
		store: service.NewTokenStore(client),
		redis: mr,
		admin: admin,
	}
	f.usecase = NewAuthUsecase(db, newTestLogger(), f.users, f.roles, f.jwt, f.store,
		password.NewEncoderWithCost(bcrypt.MinCost), f.wechat, f.audit)
	f.mockDone = func() { require.NoError(t, mock.ExpectationsWereMet()) }
	return f
}

func TestAuthenticateAcceptsLegacyPassword(t *testing.T) {
	f := newAuthFixture(t, false)

	got, err := f.usecase.Authenticate(context.Background(), &dto.AuthenticateRequest{Username: "admin", Password: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", got.TokenType)
	assert.Equal(t, int64(3600), got.ExpiresIn)

	claims, err := f.jwt.ValidateToken(got.Token)
	require.NoError(t, err)
	assert.Equal(t, f.admin.ID, claims.UserID)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)

	ok, err := f.store.Exists(context.Background(), f.admin.ID, jwt.AccessToken, claims.TokenID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{entity.AuditActionUserLogin}, f.audit.actions())
	f.mockDone()
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t, false)

	_, err := f.usecase.Authenticate(context.Background(), &dto.AuthenticateRequest{Username: "admin", Password: "legacy"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Authenticate(context.Background(), &dto.AuthenticateRequest{Username: "ghost", Password: "123456"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, f.redis.Keys())
}

func TestRefreshTokenRotates(t *testing.T) {
	f := newAuthFixture(t, false)
	ctx := context.Background()

	first, err := f.usecase.Authenticate(ctx, &dto.AuthenticateRequest{Username: "admin", Password: "123456"})
	require.NoError(t, err)

	second, err := f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t, false)
	ctx := context.Background()

	tokens, err := f.usecase.Authenticate(ctx, &dto.AuthenticateRequest{Username: "admin", Password: "123456"})
	require.NoError(t, err)

	_, err = f.usecase.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.Token})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesBothTokens(t *testing.T) {
	f := newAuthFixture(t, false)
	ctx := context.Background()

	tokens, err := f.usecase.Authenticate(ctx, &dto.AuthenticateRequest{Username: "admin", Password: "123456"})
	require.NoError(t, err)
	access, err := f.jwt.ValidateToken(tokens.Token)
	require.NoError(t, err)
	refresh, err := f.jwt.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, f.usecase.Logout(ctx, f.admin.ID, access.TokenID, &dto.LogoutRequest{RefreshToken: tokens.RefreshToken}))

	ok, _ := f.store.Exists(ctx, f.admin.ID, jwt.AccessToken, access.TokenID)
	assert.False(t, ok)
	ok, _ = f.store.Exists(ctx, f.admin.ID, jwt.RefreshToken, refresh.TokenID)
	assert.False(t, ok)
	assert.Contains(t, f.audit.actions(), entity.AuditActionUserLogout)
}

func TestWeChatLoginCreatesUser(t *testing.T) {
	f := newAuthFixture(t, true)
	f.wechat.session = &wechat.Session{OpenID: "o-abc123", SessionKey: "sk-1"}

	got, err := f.usecase.WeChatLogin(context.Background(), &dto.WeChatLoginRequest{Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultWeChatNickname, got.User.Username)
	assert.NotEmpty(t, got.Token)

	created, _ := f.users.FindByOpenID(nil, "o-abc123")
	require.NotNil(t, created)
	assert.Equal(t, "wx_o-abc123", created.Username)
	assert.Equal(t, "sk-1", created.SessionKey)
	assert.True(t, created.HasRole(entity.RoleUser))
	assert.False(t, password.NewEncoder().Matches(password.LegacyPassword, created.Password))
	assert.Equal(t, []string{entity.AuditActionUserWeChatLogin}, f.audit.actions())
	f.mockDone()
}

func TestWeChatLoginRefreshesSessionKey(t *testing.T) {
	f := newAuthFixture(t, true)
	openID := "o-existing"
	existing := &entity.User{ID: uuid.New(), Username: "wx_o-existing", Nickname: "Alan", OpenID: &openID, SessionKey: "old"}
	f.users.users[existing.ID] = existing
	f.wechat.session = &wechat.Session{OpenID: openID, SessionKey: "new"}

	got, err := f.usecase.WeChatLogin(context.Background(), &dto.WeChatLoginRequest{Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), got.User.ID)
	assert.Equal(t, "Alan", got.User.Username)
	assert.Equal(t, "new", f.users.users[existing.ID].SessionKey)
	f.mockDone()
}

func TestWeChatLoginMapsAPIError(t *testing.T) {
	f := newAuthFixture(t, false)
	f.wechat.err = &wechat.APIError{Code: 40029, Message: "invalid code"}

	_, err := f.usecase.WeChatLogin(context.Background(), &dto.WeChatLoginRequest{Code: "bad"})

	assert.ErrorIs(t, err, ErrWeChatLogin)
	f.mockDone()
}

func TestGetCurrentUser(t *testing.T) {
	f := newAuthFixture(t, false)

	got, err := f.usecase.GetCurrentUser(context.Background(), f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.Contains(t, got.Authorities, "ROLE_ADMIN")

	_, err = f.usecase.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
