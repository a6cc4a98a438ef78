package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"warkop/internal/domain/model"
	"warkop/internal/handler"
	repo "warkop/internal/repository"
	"warkop/internal/usecase"
	"warkop/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type HUserRepoMock struct{ mock.Mock }

func (m *HUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 10
	}
	return args.Error(0)
}

func (m *HUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *HUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *HUserRepoMock) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type hIssuerStub struct{}

func (hIssuerStub) Issue(userID int64, role model.Role, now time.Time) (string, int, error) {
	return "token", 900, nil
}

func newAuthServer(users *HUserRepoMock) *echo.Echo {
	uc := usecase.NewAuthUsecase(
		users,
		validator.NewAuthValidator(),
		usecase.NewBcryptPasswordHasher(4),
		usecase.NewBcryptPasswordVerifier(),
		hIssuerStub{},
		hClock{},
		zerolog.Nop(),
	)

	e := echo.New()
	handler.NewAuthHandler(uc).RegisterRoutes(e)
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := new(HUserRepoMock)
	e := newAuthServer(users)

	users.On("FindByEmail", mock.Anything, "budi@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"name":"Budi","email":"budi@example.com","password":"rahasia1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"customer"`)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	users := new(HUserRepoMock)
	e := newAuthServer(users)

	users.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(&model.User{ID: 9, Email: "ada@example.com"}, nil)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"name":"Ada","email":"ada@example.com","password":"123456"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email sudah terdaftar")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	users := new(HUserRepoMock)
	e := newAuthServer(users)

	rec := doJSON(e, http.MethodPost, "/auth/register", "",
		`{"name":"Budi","email":"budi@example.com","password":"12345"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password minimal 6 karakter")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	users := new(HUserRepoMock)
	e := newAuthServer(users)

	rec := doJSON(e, http.MethodPost, "/auth/login", "", `{"email":"budi@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email dan password harus diisi")
}
