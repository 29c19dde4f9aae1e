package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"workhub/docs"
	"workhub/internal/auth"
	"workhub/internal/cache"
	"workhub/internal/config"
	apperrors "workhub/internal/errors"
	"workhub/internal/handler"
	"workhub/internal/model"
	"workhub/internal/service"
)

type MockWorkoutService struct{ mock.Mock }

func (m *MockWorkoutService) List(ctx context.Context) ([]model.Workout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Get(ctx context.Context, id uuid.UUID) (*model.Workout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Create(ctx context.Context, in service.CreateWorkoutInput) (*model.Workout, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Update(ctx context.Context, id uuid.UUID, in service.UpdateWorkoutInput) (*model.Workout, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Workout), args.Error(1)
}

func (m *MockWorkoutService) Remove(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockJobService struct{ mock.Mock }

func (m *MockJobService) List(ctx context.Context, callerID uuid.UUID) ([]model.Job, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobService) Get(ctx context.Context, callerID, id uuid.UUID) (*model.Job, error) {
	args := m.Called(ctx, callerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Create(ctx context.Context, callerID uuid.UUID, in service.CreateJobInput) (*model.Job, error) {
	args := m.Called(ctx, callerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Update(ctx context.Context, callerID, id uuid.UUID, in service.UpdateJobInput) (*model.Job, error) {
	args := m.Called(ctx, callerID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobService) Remove(ctx context.Context, callerID, id uuid.UUID) error {
	return m.Called(ctx, callerID, id).Error(0)
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, email, password, name string) (*model.User, string, string, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*model.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*model.User), args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken, accessToken string) error {
	return m.Called(ctx, refreshToken, accessToken).Error(0)
}

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, userID, email, ttl).Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return m.Called(ctx, tokenID).Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, tokenID, ttl).Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

type testEnv struct {
	e          *echo.Echo
	jwtService *auth.JWTService
	workouts   *MockWorkoutService
	jobs       *MockJobService
	users      *MockUserService
	tokens     *MockTokenStore
}

func newTestEnv() *testEnv {
	return newTestEnvWithConfig(&config.Config{ServerPort: "0", JWTSecret: "test-secret"})
}

func newTestEnvWithConfig(cfg *config.Config) *testEnv {
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	workouts := new(MockWorkoutService)
	jobs := new(MockJobService)
	users := new(MockUserService)
	auths := new(MockAuthService)
	tokens := new(MockTokenStore)

	e := echo.New()
	Register(
		e,
		cfg,
		jwtService,
		tokens,
		(*cache.Client)(nil),
		handler.NewWorkoutHandler(workouts),
		handler.NewJobHandler(jobs),
		handler.NewAuthHandler(auths),
		handler.NewUserHandler(users),
		handler.NewSeedHandler(workouts),
	)
	return &testEnv{e: e, jwtService: jwtService, workouts: workouts, jobs: jobs, users: users, tokens: tokens}
}

func (env *testEnv) request(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_JobsRequireToken(t *testing.T) {
	env := newTestEnv()

	rec := env.request(http.MethodGet, "/api/jobs", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authorization token required"}`, rec.Body.String())
	env.jobs.AssertNotCalled(t, "List")
}

func TestRouter_JobsRejectForgedToken(t *testing.T) {
	env := newTestEnv()

	forged, err := auth.NewJWTService("other-secret").GenerateAccessToken(uuid.New(), "a@example.com")
	assert.NoError(t, err)

	rec := env.request(http.MethodGet, "/api/jobs", forged)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
	env.jobs.AssertNotCalled(t, "List")
}

func TestRouter_JobOwnershipForbidden(t *testing.T) {
	env := newTestEnv()

	callerID := uuid.New()
	jobID := uuid.New()
	token, err := env.jwtService.GenerateAccessToken(callerID, "a@example.com")
	assert.NoError(t, err)

	env.tokens.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	env.jobs.On("Get", mock.Anything, callerID, jobID).Return(nil, apperrors.ErrForbidden)

	rec := env.request(http.MethodGet, "/api/jobs/"+jobID.String(), token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"forbidden"}`, rec.Body.String())
	env.jobs.AssertExpectations(t)
}

func TestRouter_JobsListWithValidToken(t *testing.T) {
	env := newTestEnv()

	callerID := uuid.New()
	token, err := env.jwtService.GenerateAccessToken(callerID, "a@example.com")
	assert.NoError(t, err)

	env.tokens.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	env.jobs.On("List", mock.Anything, callerID).Return([]model.Job{}, nil)

	rec := env.request(http.MethodGet, "/api/jobs", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRouter_RevokedTokenRejected(t *testing.T) {
	env := newTestEnv()

	token, err := env.jwtService.GenerateAccessToken(uuid.New(), "a@example.com")
	assert.NoError(t, err)
	claims, err := env.jwtService.ValidateToken(token)
	assert.NoError(t, err)

	env.tokens.On("IsAccessTokenBlacklisted", mock.Anything, claims.ID).Return(true, nil)

	rec := env.request(http.MethodGet, "/api/jobs", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
	env.jobs.AssertNotCalled(t, "List")
	env.tokens.AssertExpectations(t)
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nope"},
		{http.MethodPut, "/api/workouts/" + uuid.NewString()},
		{http.MethodGet, "/totally/unknown"},
	}

	for _, tt := range tests {
		rec := env.request(tt.method, tt.path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.path)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	}
}

func TestRouter_Healthz(t *testing.T) {
	env := newTestEnv()

	rec := env.request(http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_SwaggerHostFromConfig(t *testing.T) {
	newTestEnvWithConfig(&config.Config{
		ServerPort:  "0",
		JWTSecret:   "test-secret",
		SwaggerHost: "api.workhub.example",
	})

	assert.Equal(t, "api.workhub.example", docs.SwaggerInfo.Host)
}

func TestRouter_UsersMe(t *testing.T) {
	env := newTestEnv()

	callerID := uuid.New()
	token, err := env.jwtService.GenerateAccessToken(callerID, "a@example.com")
	assert.NoError(t, err)

	env.tokens.On("IsAccessTokenBlacklisted", mock.Anything, mock.Anything).Return(false, nil)
	env.users.On("GetUser", mock.Anything, callerID).Return(&model.User{
		ID:    callerID,
		Name:  "Test User",
		Email: "a@example.com",
	}, nil)

	rec := env.request(http.MethodGet, "/api/users/me", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	env.users.AssertExpectations(t)

	recNoToken := env.request(http.MethodGet, "/api/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, recNoToken.Code)
}

func TestRouter_PublicWorkoutsBypassGate(t *testing.T) {
	env := newTestEnv()

	env.workouts.On("List", mock.Anything).Return([]model.Workout{}, nil)

	rec := env.request(http.MethodGet, "/api/workouts", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
