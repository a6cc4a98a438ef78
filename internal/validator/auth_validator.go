package validator

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"warkop/internal/usecase"
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	// 必須チェック
	if name == "" || email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Semua field harus diisi")
	}

	// email形式
	if !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "Format email tidak valid")
	}

	// パスワード最低文字数（6）
	if len(password) < 6 {
		return usecase.NewHTTPError(http.StatusBadRequest, "Password minimal 6 karakter")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "Email dan password harus diisi")
	}

	return nil
}

func isEmailLike(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
