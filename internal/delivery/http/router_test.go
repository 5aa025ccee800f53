package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"self-fitness/config"
	"self-fitness/internal/delivery/http/handler"
	"self-fitness/internal/delivery/http/middleware"
	"self-fitness/internal/observability"
	"self-fitness/internal/service"
	"self-fitness/pkg/jwt"
	"self-fitness/pkg/validator"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAuthorities []string

func (s staticAuthorities) Authorities(context.Context, uuid.UUID) ([]string, error) {
	return s, nil
}

type routerFixture struct {
	handler http.Handler
	jwt     *jwt.JWTService
	store   service.TokenStore
}

func newRouterFixture(t *testing.T, authorities staticAuthorities) *routerFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "router-secret",
		Issuer:        "self-fitness",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})
	store := service.NewTokenStore(client)
	v := validator.NewValidator()

	handlers := Handlers{
		Auth:     handler.NewAuthHandler(nil, v),
		User:     handler.NewUserHandler(nil, v),
		AuditLog: handler.NewAuditLogHandler(nil),
		Health: handler.NewHealthHandler(map[string]handler.Pinger{
			"redis": func(ctx context.Context) error { return client.Ping(ctx).Err() },
		}),
	}

	router := NewRouter(
		log,
		handlers,
		middleware.NewAuthMiddleware(jwtService, store),
		middleware.NewCORSMiddleware("*"),
		middleware.NewRateLimiter(1, 5),
		authorities,
		observability.NewMetrics(),
	)
	return &routerFixture{handler: router.Setup(), jwt: jwtService, store: store}
}

func (f *routerFixture) token(t *testing.T) string {
	t.Helper()
	userID := uuid.New()
	token, tokenID, err := f.jwt.GenerateAccessToken(userID, "alan", []string{"USER"})
	require.NoError(t, err)
	require.NoError(t, f.store.Store(context.Background(), userID, jwt.AccessToken, tokenID, time.Hour))
	return token
}

func (f *routerFixture) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec := f.do(http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLiftingRequiresToken(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec := f.do(http.MethodGet, "/api/lifting/gym", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPianoRequiresToken(t *testing.T) {
	f := newRouterFixture(t, nil)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/piano/piece", "").Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/piano/piano-practice", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, f.do(http.MethodPut, "/api/piano/tag", "").Code)
}

func TestPermissionGuards(t *testing.T) {
	f := newRouterFixture(t, staticAuthorities{"ROLE_USER", "user:update"})
	token := f.token(t)

	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/users", token).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/audit-logs", token).Code)
}

func TestPreflightAndMetrics(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec := f.do(http.MethodOptions, "/api/lifting/workout/stop", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")

	f.do(http.MethodGet, "/api/health", "")
	rec = f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `self_fitness_http_requests_total{method="GET",path="/api/health",status="200"} 1`))
}

func TestUnknownRouteUsesEnvelope(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec := f.do(http.MethodGet, "/api/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":4001`)
}

func TestMethodMismatchIs405(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec := f.do(http.MethodDelete, "/api/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":405`)
	assert.Contains(t, rec.Body.String(), `"reason":"MethodNotAllowed"`)

	rec = f.do(http.MethodPatch, "/api/lifting/workout/stop", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = f.do(http.MethodDelete, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
