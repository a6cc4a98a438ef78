package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"
	"warkop/internal/usecase"
	"warkop/internal/validator"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	// DBの採番を模す
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type issuerStub struct{}

func (issuerStub) Issue(userID int64, role model.Role, now time.Time) (string, int, error) {
	return "token", 900, nil
}

func newAuthFixture(users *AuthUserRepoMock) *usecase.AuthUsecase {
	clock := &fixedClock{t: time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)}
	return usecase.NewAuthUsecase(
		users,
		validator.NewAuthValidator(),
		usecase.NewBcryptPasswordHasher(4), // テストは低コストで十分
		usecase.NewBcryptPasswordVerifier(),
		issuerStub{},
		clock,
		zerolog.Nop(),
	)
}

// =====================
// Register
// =====================

func TestAuthUsecase_Register_Success(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	users.On("FindByEmail", mock.Anything, "budi@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// 必ずcustomerロール、パスワードはハッシュで保存
		return u.Role == model.RoleCustomer &&
			u.Email == "budi@example.com" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "rahasia1"
	})).Return(nil)

	out, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "rahasia1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "customer", out.User.Role)
	assert.Equal(t, "Budi", out.User.Name)
	users.AssertExpectations(t)
}

func TestAuthUsecase_Register_ShortPassword(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Budi",
		Email:    "budi@example.com",
		Password: "12345",
	})
	assertStatus(t, err, http.StatusBadRequest)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthUsecase_Register_MissingFields(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{Email: "a@b.com", Password: "123456"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	users.On("FindByEmail", mock.Anything, "ada@example.com").
		Return(&model.User{ID: 9, Email: "ada@example.com"}, nil)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "123456",
	})
	assertStatus(t, err, http.StatusConflict)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 先行チェックをすり抜けてもunique indexの23505を409に写す
func TestAuthUsecase_Register_ConflictOnInsert(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	users.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(repo.ErrConflict)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Name:     "Race",
		Email:    "race@example.com",
		Password: "123456",
	})
	assertStatus(t, err, http.StatusConflict)
}

// =====================
// Login
// =====================

func TestAuthUsecase_Login_Success(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	hasher := usecase.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("kasir123")
	assert.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "kasir@warkop.com").Return(&model.User{
		ID:           2,
		Name:         "Kasir Staff",
		Email:        "kasir@warkop.com",
		PasswordHash: hash,
		Role:         model.RoleKasir,
	}, nil)

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "kasir@warkop.com",
		Password: "kasir123",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.User.ID)
	assert.Equal(t, "kasir", out.User.Role)
	assert.Equal(t, "token", out.Token.AccessToken)
}

func TestAuthUsecase_Login_MissingFields(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Email: "a@b.com"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestAuthUsecase_Login_UnknownEmail(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assertStatus(t, err, http.StatusUnauthorized)
}

// どのアカウントでも照合する。合言葉スキップは存在しない。
func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(AuthUserRepoMock)
	uc := newAuthFixture(users)

	hasher := usecase.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash("correct-password")
	assert.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "budi@example.com").Return(&model.User{
		ID:           3,
		Email:        "budi@example.com",
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}, nil)

	_, err = uc.Login(context.Background(), usecase.LoginInput{
		Email:    "budi@example.com",
		Password: "wrong-password",
	})
	assertStatus(t, err, http.StatusUnauthorized)
}
