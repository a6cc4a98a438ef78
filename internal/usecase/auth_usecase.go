package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"warkop/internal/domain/model"
	repo "warkop/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, name, email, password string) error
	ValidateLogin(ctx context.Context, email, password string) error
}

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// ハッシュと平文を比較する約束
type PasswordVerifier interface {
	Verify(hash string, plain string) error
}

// access tokenを発行する約束（実装はmainでJWT）
type TokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresIn int, err error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(hash string, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

type UserDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type TokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	User UserDTO `json:"user"`
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User  UserDTO  `json:"user"`
	Token TokenDTO `json:"token"`
}

type AuthUsecase struct {
	users     repo.UserRepository
	validator AuthValidator
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    TokenIssuer
	clock     Clock
	log       zerolog.Logger
}

// DI
func NewAuthUsecase(
	users repo.UserRepository,
	validator AuthValidator,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
	log zerolog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		validator: validator,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		clock:     clock,
		log:       log,
	}
}

// Registerはcustomerロールで新規ユーザーを作る。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	// 入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Name, in.Email, in.Password); err != nil {
		return RegisterOutput{}, err
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))

	// email重複の先行チェック。最終防衛はDBのunique index。
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		u.log.Error().Err(err).Msg("find user by email failed")
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}
	if existing != nil {
		return RegisterOutput{}, NewHTTPError(http.StatusConflict, "Email sudah terdaftar")
	}

	// パスワードは必ずハッシュ化して保存（平文保存しない）
	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.log.Error().Err(err).Msg("hash password failed")
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	user := &model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return RegisterOutput{}, NewHTTPError(http.StatusConflict, "Email sudah terdaftar")
		}
		u.log.Error().Err(err).Msg("create user failed")
		return RegisterOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	return RegisterOutput{User: toUserDTO(user)}, nil
}

// Loginは全アカウント共通でbcrypt照合する。
// デモアカウントの特別扱い・照合スキップは意図的に廃止。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return LoginOutput{}, err
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		u.log.Error().Err(err).Msg("find user by email failed")
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	if err := u.verifier.Verify(user.PasswordHash, in.Password); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "Email atau password salah")
	}

	token, expiresIn, err := u.issuer.Issue(user.ID, user.Role, u.clock.Now())
	if err != nil {
		u.log.Error().Err(err).Int64("user_id", user.ID).Msg("issue token failed")
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, msgServerError)
	}

	return LoginOutput{
		User: toUserDTO(user),
		Token: TokenDTO{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}
