package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskman/internal/delivery/http/middleware"
	"taskman/internal/delivery/http/router/handler"
	"taskman/internal/delivery/http/validator"
	"taskman/internal/domain/entity"
	"taskman/internal/domain/service"
	mockSvc "taskman/internal/mocks/service"
	mockUC "taskman/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixtures struct {
	echo     *echo.Echo
	userUC   *mockUC.MockUserUsecase
	taskUC   *mockUC.MockTaskUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockUC.NewMockUserUsecase(t)
	taskUC := mockUC.NewMockTaskUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(userUC, logger),
		TaskHandler:    handler.NewTaskHandler(taskUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return routerFixtures{
		echo:     e,
		userUC:   userUC,
		taskUC:   taskUC,
		tokenSvc: tokenSvc,
	}
}

func (fx routerFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func TestRouter_HealthIsPublic(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRouter_TasksRequireToken(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestRouter_TasksRejectBadToken(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().
		Verify("garbage").
		Return(nil, errors.New("failed to parse token structure"))

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/tasks?secret_token=garbage", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestRouter_TokenViaQueryParam(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().
		Verify("valid-token").
		Return(&service.Claims{UserID: uuid.New(), Email: "test@example.com"}, nil)
	fx.taskUC.EXPECT().ListTasks(mock.Anything).Return([]*entity.Task{}, nil)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/tasks?secret_token=valid-token", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_TokenViaBearerHeader(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().
		Verify("valid-token").
		Return(&service.Claims{UserID: uuid.New(), Email: "test@example.com"}, nil)
	fx.taskUC.EXPECT().ListTasks(mock.Anything).Return([]*entity.Task{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_QueryParamWinsOverHeader(t *testing.T) {
	fx := createTestRouter(t)

	fx.tokenSvc.EXPECT().
		Verify("query-token").
		Return(&service.Claims{UserID: uuid.New(), Email: "test@example.com"}, nil)
	fx.taskUC.EXPECT().ListTasks(mock.Anything).Return([]*entity.Task{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/tasks?secret_token=query-token", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec := fx.do(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	fx.tokenSvc.AssertNotCalled(t, "Verify", "header-token")
}

func TestRouter_MalformedAuthorizationHeader(t *testing.T) {
	fx := createTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Token something")
	rec := fx.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_SignupAndLoginArePublic(t *testing.T) {
	fx := createTestRouter(t)

	// No token anywhere; the routes must still reach the handlers, which
	// reject the empty body with a validation error rather than a 401.
	signupRec := fx.do(httptest.NewRequest(http.MethodPost, "/signup", nil))
	loginRec := fx.do(httptest.NewRequest(http.MethodPost, "/login", nil))

	assert.NotEqual(t, http.StatusUnauthorized, signupRec.Code)
	assert.NotEqual(t, http.StatusUnauthorized, loginRec.Code)
}
