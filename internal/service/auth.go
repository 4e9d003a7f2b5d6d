package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/pkg/log"
	"github.com/pribylovaa/go-messenger/internal/pkg/redact"
	"github.com/pribylovaa/go-messenger/internal/secure"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

// RegisterUser регистрирует нового пользователя и сразу выдаёт пару токенов.
// Занятый email (включая мягко удалённых пользователей) — ErrEmailTaken.
func (s *Service) RegisterUser(ctx context.Context, firstName, lastName, email, password string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.RegisterUser"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if err := validatePassword(password); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := secure.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Email:        normEmail,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, tokens, nil
}

// LoginUser выполняет вход по email+пароль.
//
// Любой отказ — несуществующий email, мягко удалённый пользователь,
// неверный пароль — возвращается одним и тем же ErrInvalidCredentials,
// чтобы по ответу нельзя было перечислять зарегистрированные адреса.
// При включённой 2FA возвращается результат с OTPRequired=true и без
// токенов: пара выдаётся только после Validate2FA.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.LoginResult, error) {
	const op = "service.auth.LoginUser"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.ActiveUserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := secure.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if user.Is2FAEnabled {
		return &models.LoginResult{OTPRequired: true, UserID: user.ID}, nil
	}

	tokens, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.LoginResult{User: user, Tokens: tokens}, nil
}

// Enable2FA включает двухфакторную аутентификацию для пользователя:
// генерирует новый OTP-секрет (прежний, если был, затирается),
// сохраняет его и возвращает otpauth://-URI для QR-кода.
func (s *Service) Enable2FA(ctx context.Context, userID uuid.UUID) (string, error) {
	const op = "service.auth.Enable2FA"

	user, err := s.storage.ActiveUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	secret, err := secure.NewTOTPSecret()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.EnableUser2FA(ctx, user.ID, secret); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return secure.TOTPProvisioningURI(secret, user.Email, s.cfg.Issuer), nil
}

// Validate2FA подтверждает вход кодом 2FA и выдаёт пару токенов.
// Вызывается вторым шагом после LoginUser с OTPRequired=true.
func (s *Service) Validate2FA(ctx context.Context, userID uuid.UUID, code string) (*models.User, *models.TokenPair, error) {
	const op = "service.auth.Validate2FA"

	user, err := s.storage.ActiveUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !user.Is2FAEnabled || user.OTPSecret == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, Err2FANotEnabled)
	}

	if !secure.VerifyTOTP(user.OTPSecret, code) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidOTP)
	}

	tokens, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, tokens, nil
}

// Refresh обновляет пару токенов по refresh-токену. Access-токен при этом
// не требуется. Токен удалённого пользователя отклоняется как ErrInvalidToken:
// по ответу нельзя отличить «токен подделан» от «пользователь удалён».
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.Refresh"

	userID, err := s.AuthenticateRefresh(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.ActiveUserByID(ctx, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := s.issueTokenPair(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

// ForgotPassword отправляет письмо со ссылкой сброса пароля.
// redirectURL — база ссылки от клиента; пустая строка — cfg.ResetBaseURL.
//
// Исход всегда успешный независимо от того, существует ли адрес:
// иначе по ответу можно перечислять зарегистрированные email.
// Сбой отправки письма логируется, но не возвращается наружу.
func (s *Service) ForgotPassword(ctx context.Context, email, redirectURL string) error {
	const op = "service.auth.ForgotPassword"

	lg := log.From(ctx)

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil
	}

	user, err := s.storage.ActiveUserByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.issueToken(user.ID, tokenTypeReset, s.cfg.AccessTokenTTL, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.mailer == nil {
		lg.Warn("password_reset_mailer_not_configured",
			slog.String("email", redact.Email(normEmail)),
		)
		return nil
	}

	base := redirectURL
	if base == "" {
		base = s.cfg.ResetBaseURL
	}

	link := base + "?token=" + token
	if err := s.mailer.SendPasswordReset(user.Email, link); err != nil {
		lg.Error("password_reset_mail_failed",
			slog.String("email", redact.Email(normEmail)),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// ResetPassword меняет пароль пользователя, предъявившего действующий
// reset-токен из письма. Новый пароль проходит ту же политику сложности,
// что и при регистрации.
func (s *Service) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	const op = "service.auth.ResetPassword"

	userID, err := s.parseToken(resetToken, tokenTypeReset)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := secure.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateUserPassword(ctx, userID, hash); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChangePassword меняет пароль аутентифицированного пользователя
// при предъявлении действующего старого пароля.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	const op = "service.auth.ChangePassword"

	user, err := s.storage.ActiveUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	ok, err := secure.VerifyPassword(oldPassword, user.PasswordHash)
	if err != nil || !ok {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hash, err := secure.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.UpdateUserPassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// validateEmail нормализует и проверяет формат email.
func validateEmail(raw string) (string, error) {
	const op = "service.auth.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return strings.ToLower(email), nil
}

// validatePassword проверяет минимальные требования к паролю.
// Политика по умолчанию: длина >= 8, хотя бы одна строчная, заглавная, цифра и спецсимвол.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len(pw) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyPassword)
	}

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !(hasLower && hasUpper && hasDigit && hasSpecial) {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
