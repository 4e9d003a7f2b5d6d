package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/secure"
	"github.com/pribylovaa/go-messenger/internal/storage"
	"github.com/pribylovaa/go-messenger/mocks"
)

// Файл unit-тестов для auth-флоу (auth.go).
//
// Покрываем:
//  - RegisterUser: нормализация email, политика пароля, маппинг
//    storage.ErrAlreadyExists -> ErrEmailTaken, happy-path с выдачей пары;
//  - LoginUser: единый ErrInvalidCredentials для «нет пользователя» и
//    «неверный пароль»; ветка 2FA без выдачи токенов;
//  - Validate2FA: Err2FANotEnabled / ErrInvalidOTP / happy-path;
//  - Refresh: токен удалённого пользователя -> ErrInvalidToken;
//  - ForgotPassword: отсутствие адреса не раскрывается наружу;
//  - ResetPassword: reset-токен нельзя подменить access-токеном.

const testPassword = "Str0ng!pass"

func newAuthSvc(t *testing.T, st storage.Storage) *Service {
	t.Helper()
	return New(st, nil, testAuthConfig())
}

func TestRegisterUser_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, "ivan@example.com", u.Email, "email must be normalized to lowercase")
			require.True(t, u.IsActive)
			require.False(t, u.Is2FAEnabled)
			require.NotEqual(t, testPassword, u.PasswordHash)
			return nil
		})

	svc := newAuthSvc(t, mockSt)

	user, pair, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "  Ivan@Example.COM ", testPassword)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, pair)

	got, err := svc.AuthenticateAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, got)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		Return(storage.ErrAlreadyExists)

	svc := newAuthSvc(t, mockSt)

	_, _, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "ivan@example.com", testPassword)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthSvc(t, nil)

	for _, email := range []string{"", "   ", "not-an-email", "a@"} {
		_, _, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", email, testPassword)
		require.ErrorIs(t, err, ErrInvalidEmail)
	}
}

func TestRegisterUser_PasswordPolicy(t *testing.T) {
	t.Parallel()

	svc := newAuthSvc(t, nil)

	_, _, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "ivan@example.com", "")
	require.ErrorIs(t, err, ErrEmptyPassword)

	for _, pw := range []string{"Sh0rt!", "alllower1!", "ALLUPPER1!", "NoDigits!!", "NoSpecial11"} {
		_, _, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "ivan@example.com", pw)
		require.ErrorIs(t, err, ErrWeakPassword, "password %q must be rejected", pw)
	}
}

func TestLoginUser_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := secure.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByEmail(gomock.Any(), "ivan@example.com").
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	res, err := svc.LoginUser(context.Background(), "Ivan@example.com", testPassword)
	require.NoError(t, err)
	require.False(t, res.OTPRequired)
	require.NotNil(t, res.User)
	require.NotNil(t, res.Tokens)
}

func TestLoginUser_UniformInvalidCredentials(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := secure.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), Email: "ivan@example.com", PasswordHash: hash, IsActive: true}

	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			ActiveUserByEmail(gomock.Any(), "unknown@example.com").
			Return(nil, storage.ErrNotFound),
		mockSt.EXPECT().
			ActiveUserByEmail(gomock.Any(), "ivan@example.com").
			Return(user, nil),
	)

	svc := newAuthSvc(t, mockSt)

	// Несуществующий адрес и неверный пароль неразличимы по ошибке.
	_, err = svc.LoginUser(context.Background(), "unknown@example.com", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.LoginUser(context.Background(), "ivan@example.com", "Wrong0ne!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_2FARequiredWithoutTokens(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := secure.HashPassword(testPassword)
	require.NoError(t, err)

	secret, err := secure.NewTOTPSecret()
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: hash,
		IsActive:     true,
		Is2FAEnabled: true,
		OTPSecret:    secret,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByEmail(gomock.Any(), "ivan@example.com").
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	res, err := svc.LoginUser(context.Background(), "ivan@example.com", testPassword)
	require.NoError(t, err)
	require.True(t, res.OTPRequired)
	require.Equal(t, user.ID, res.UserID)
	require.Nil(t, res.Tokens, "no tokens before OTP confirmation")
	require.Nil(t, res.User)
}

func TestValidate2FA_NotEnabled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "ivan@example.com", IsActive: true}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	_, _, err := svc.Validate2FA(context.Background(), user.ID, "123456")
	require.ErrorIs(t, err, Err2FANotEnabled)
}

func TestValidate2FA_WrongCode(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secret, err := secure.NewTOTPSecret()
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		IsActive:     true,
		Is2FAEnabled: true,
		OTPSecret:    secret,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	_, _, err = svc.Validate2FA(context.Background(), user.ID, "000000")
	require.ErrorIs(t, err, ErrInvalidOTP)
}

func TestValidate2FA_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secret, err := secure.NewTOTPSecret()
	require.NoError(t, err)

	user := &models.User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		IsActive:     true,
		Is2FAEnabled: true,
		OTPSecret:    secret,
	}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	got, pair, err := svc.Validate2FA(context.Background(), user.ID, code)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.NotNil(t, pair)
}

func TestEnable2FA_RotatesSecret(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "ivan@example.com", IsActive: true}

	var saved string
	mockSt := mocks.NewMockStorage(ctrl)
	gomock.InOrder(
		mockSt.EXPECT().
			ActiveUserByID(gomock.Any(), user.ID).
			Return(user, nil),
		mockSt.EXPECT().
			EnableUser2FA(gomock.Any(), user.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, secret string) error {
				saved = secret
				return nil
			}),
	)

	svc := newAuthSvc(t, mockSt)

	uri, err := svc.Enable2FA(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, saved)
	require.Contains(t, uri, "otpauth://totp/")
	require.Contains(t, uri, saved)
	require.Contains(t, uri, "ivan@example.com")
}

func TestRefresh_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, IsActive: true}, nil)

	svc := newAuthSvc(t, mockSt)

	pair, err := svc.issueTokenPair(userID)
	require.NoError(t, err)

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	got, err := svc.AuthenticateAccess(fresh.AccessToken)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestRefresh_DeletedUser(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), userID).
		Return(nil, storage.ErrNotFound)

	svc := newAuthSvc(t, mockSt)

	pair, err := svc.issueTokenPair(userID)
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc := newAuthSvc(t, nil)

	pair, err := svc.issueTokenPair(uuid.New())
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestForgotPassword_UnknownEmailSilently(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByEmail(gomock.Any(), "unknown@example.com").
		Return(nil, storage.ErrNotFound)

	svc := newAuthSvc(t, mockSt)

	require.NoError(t, svc.ForgotPassword(context.Background(), "unknown@example.com", ""))
}

func TestForgotPassword_StorageErrorPropagates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("db down")

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByEmail(gomock.Any(), gomock.Any()).
		Return(nil, boom)

	svc := newAuthSvc(t, mockSt)

	err := svc.ForgotPassword(context.Background(), "ivan@example.com", "")
	require.ErrorIs(t, err, boom)
}

func TestResetPassword_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		UpdateUserPassword(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
			ok, verr := secure.VerifyPassword("N3w!passw", hash)
			require.NoError(t, verr)
			require.True(t, ok)
			return nil
		})

	svc := newAuthSvc(t, mockSt)

	token, err := svc.issueToken(userID, tokenTypeReset, time.Minute, time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(context.Background(), token, "N3w!passw"))
}

func TestResetPassword_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc := newAuthSvc(t, nil)

	pair, err := svc.issueTokenPair(uuid.New())
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), pair.AccessToken, "N3w!passw")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := secure.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{ID: uuid.New(), PasswordHash: hash, IsActive: true}

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().
		ActiveUserByID(gomock.Any(), user.ID).
		Return(user, nil)

	svc := newAuthSvc(t, mockSt)

	err = svc.ChangePassword(context.Background(), user.ID, "Wrong0ne!", "N3w!passw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
