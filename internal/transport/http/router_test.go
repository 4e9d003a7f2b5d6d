package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-messenger/internal/bus/membus"
	"github.com/pribylovaa/go-messenger/internal/config"
	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/service"
	transport "github.com/pribylovaa/go-messenger/internal/transport/http"
	"github.com/pribylovaa/go-messenger/mocks"
)

// Файл интеграционных тестов роутера: полный путь запроса через
// middleware -> хендлер -> сервис с мок-хранилищем и живой in-process шиной.

const testPassword = "Str0ng!pass"

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
		Issuer:          "go-messenger",
		CookieName:      "session",
	}
}

func newTestRouter(t *testing.T, st *mocks.MockStorage) (http.Handler, *service.Service) {
	t.Helper()

	svc := service.New(st, membus.New(), testCfg())
	router := transport.NewRouter(svc, testCfg(), transport.Options{Timeout: 5 * time.Second})
	return router, svc
}

// accessCookie выпускает валидный access-токен через register с мок-хранилищем.
func accessCookie(t *testing.T, svc *service.Service, st *mocks.MockStorage, userID uuid.UUID) *http.Cookie {
	t.Helper()

	st.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = userID
			return nil
		})

	_, pair, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "ivan@example.com", testPassword)
	require.NoError(t, err)

	return &http.Cookie{Name: "session", Value: pair.AccessToken}
}

func cookieByName(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()

	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}

	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestRouter_Register_SetsBothCookies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockSt.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(nil)

	router, _ := newTestRouter(t, mockSt)

	body := `{"firstName":"Ivan","lastName":"Petrov","email":"ivan@example.com","password":"Str0ng!pass"}`
	r := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	cookies := w.Result().Cookies()
	access := cookieByName(t, cookies, "session")
	refresh := cookieByName(t, cookies, "session_refresh")
	require.True(t, access.HttpOnly)
	require.True(t, refresh.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, access.SameSite)
	require.Equal(t, int((15 * time.Minute).Seconds()), access.MaxAge)
	require.Equal(t, int((168 * time.Hour).Seconds()), refresh.MaxAge)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ivan@example.com", resp["email"])
	require.NotContains(t, w.Body.String(), "passwordHash")
}

func TestRouter_Login_2FARequired_NoCookies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	router, svc := newTestRouter(t, mockSt)

	// Реальный хэш, чтобы пароль прошёл проверку.
	userID := uuid.New()
	mockSt.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			mockSt.EXPECT().
				ActiveUserByEmail(gomock.Any(), u.Email).
				Return(&models.User{
					ID:           userID,
					Email:        u.Email,
					PasswordHash: u.PasswordHash,
					IsActive:     true,
					Is2FAEnabled: true,
					OTPSecret:    "JBSWY3DPEHPK3PXP",
				}, nil)
			return nil
		})

	_, _, err := svc.RegisterUser(context.Background(), "Ivan", "Petrov", "ivan@example.com", testPassword)
	require.NoError(t, err)

	body := `{"email":"ivan@example.com","password":"Str0ng!pass"}`
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Result().Cookies(), "no cookies before OTP confirmation")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, true, resp["otpRequired"])
	require.Equal(t, userID.String(), resp["userId"])
}

func TestRouter_ProtectedRoute_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, mocks.NewMockStorage(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "unauthenticated")
}

func TestRouter_MessageRoute_NonMemberForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	router, svc := newTestRouter(t, mockSt)

	userID := uuid.New()
	cookie := accessCookie(t, svc, mockSt, userID)

	chatID := uuid.New()
	mockSt.EXPECT().
		IsMember(gomock.Any(), userID, chatID).
		Return(false, nil)

	r := httptest.NewRequest(http.MethodGet, "/chat/"+chatID.String()+"/message", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "permission_denied")
}

func TestRouter_Logout_ClearsCookies(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, mocks.NewMockStorage(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	require.Equal(t, http.StatusNoContent, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		require.Empty(t, c.Value)
		require.Negative(t, c.MaxAge)
	}
}

func TestRouter_BadUUIDParam(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	router, svc := newTestRouter(t, mockSt)

	cookie := accessCookie(t, svc, mockSt, uuid.New())

	r := httptest.NewRequest(http.MethodGet, "/chat/not-a-uuid", nil)
	r.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_SSEStream_DeliversPublishedMessage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	router, svc := newTestRouter(t, mockSt)

	userID := uuid.New()
	cookie := accessCookie(t, svc, mockSt, userID)

	chatID := uuid.New()
	// Подписка и отправка: оба пользователя — участники.
	mockSt.EXPECT().
		IsMember(gomock.Any(), gomock.Any(), chatID).
		Return(true, nil).
		AnyTimes()
	mockSt.EXPECT().
		SaveMessage(gomock.Any(), gomock.Any()).
		Return(nil)

	srv := httptest.NewServer(router)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/chat/"+chatID.String()+"/stream", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Публикуем после подтверждённого подключения.
	_, err = svc.CreateMessage(context.Background(), userID, chatID, "hello stream")
	require.NoError(t, err)

	reader := bufio.NewReader(resp.Body)
	deadline := time.After(5 * time.Second)
	lineCh := make(chan string, 1)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if strings.HasPrefix(line, "data: ") {
				lineCh <- line
				return
			}
		}
	}()

	select {
	case line := <-lineCh:
		require.Contains(t, line, "hello stream")
		require.Contains(t, line, chatID.String())
	case <-deadline:
		t.Fatal("no SSE event received")
	}
}
