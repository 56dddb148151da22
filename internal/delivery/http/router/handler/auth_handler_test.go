package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskman/internal/delivery/http/middleware"
	"taskman/internal/delivery/http/validator"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	mockUC "taskman/internal/mocks/usecase"
	"taskman/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, body string) (*AuthHandler, *mockUC.MockUserUsecase, echo.Context, *httptest.ResponseRecorder, *middleware.ErrorMiddleware) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewAuthHandler(userUC, logger)

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h, userUC, c, rec, middleware.NewErrorMiddleware(logger)
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	h, userUC, c, rec, _ := newAuthTestContext(t, `{"email":"test@example.com","password":"Password123!"}`)

	createdUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}
	userUC.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{Email: "test@example.com", Password: "Password123!"}).
		Return(&usecase.SignUpOutput{User: createdUser}, nil)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "test@example.com")
	assert.Contains(t, body, createdUser.ID.String())
	assert.NotContains(t, body, "hashed_password")
}

func TestAuthHandler_SignUp_DuplicateEmail(t *testing.T) {
	h, userUC, c, rec, errMW := newAuthTestContext(t, `{"email":"taken@example.com","password":"Password123!"}`)

	userUC.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	err := h.SignUp(c)
	require.Error(t, err)
	errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_EMAIL")
}

func TestAuthHandler_SignUp_InvalidEmail(t *testing.T) {
	h, _, c, rec, errMW := newAuthTestContext(t, `{"email":"not-an-email","password":"Password123!"}`)

	err := h.SignUp(c)
	require.Error(t, err)
	errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAuthHandler_SignUp_MissingPassword(t *testing.T) {
	h, _, c, rec, errMW := newAuthTestContext(t, `{"email":"test@example.com"}`)

	err := h.SignUp(c)
	require.Error(t, err)
	errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_SignUp_MalformedJSON(t *testing.T) {
	h, _, c, rec, _ := newAuthTestContext(t, `{"email":`)

	require.NoError(t, h.SignUp(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, userUC, c, rec, _ := newAuthTestContext(t, `{"email":"test@example.com","password":"Password123!"}`)

	userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}).
		Return(&usecase.LoginOutput{
			Token: "signed.jwt.token",
			User:  &entity.User{ID: uuid.New(), Email: "test@example.com"},
		}, nil)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, userUC, c, rec, errMW := newAuthTestContext(t, `{"email":"test@example.com","password":"wrong"}`)

	userUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	err := h.Login(c)
	require.Error(t, err)
	errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), "Username or password is incorrect")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _, c, rec, errMW := newAuthTestContext(t, `{}`)

	err := h.Login(c)
	require.Error(t, err)
	errMW.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
