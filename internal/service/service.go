// service содержит бизнес-логику мессенджера: регистрацию/аутентификацию
// (включая 2FA), выпуск/проверку пары токенов, операции над профилем,
// чатами и сообщениями, а также публикацию новых сообщений в шину рассылки.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования при потокобезопасных storage и bus.
//   - Ошибки возвращаются как sentinel-значения и далее маппятся
//     HTTP-слоем на статусы (см. комментарии к переменным ниже).
package service

import (
	"errors"

	"github.com/pribylovaa/go-messenger/internal/bus"
	"github.com/pribylovaa/go-messenger/internal/config"
	"github.com/pribylovaa/go-messenger/internal/mail"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

var (
	// ErrInvalidCredentials — пара email/пароль неверна или пользователь
	// не найден. Один и тот же sentinel для обоих случаев, чтобы ошибка
	// не позволяла перечислять зарегистрированные адреса. HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен некорректен по формату/подписи/типу. HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmailTaken — email уже занят (в том числе мягко удалённым
	// пользователем: soft-delete не освобождает адрес). HTTP 409.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidEmail — email не проходит валидацию формата. HTTP 400.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword — пароль не удовлетворяет политике сложности. HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmptyPassword — пароль пустой. HTTP 400.
	ErrEmptyPassword = errors.New("password is empty")

	// Err2FANotEnabled — попытка подтвердить 2FA-код, когда 2FA
	// у пользователя не включена. HTTP 400.
	Err2FANotEnabled = errors.New("2fa is not enabled")

	// ErrInvalidOTP — 2FA-код не прошёл проверку (неверный или вне
	// временного окна). HTTP 401.
	ErrInvalidOTP = errors.New("invalid 2fa code")

	// ErrNotChatMember — пользователь аутентифицирован, но не состоит
	// в чате. HTTP 403.
	ErrNotChatMember = errors.New("not a chat member")

	// ErrNotFound — сущность отсутствует или мягко удалена; оба случая
	// неразличимы снаружи. HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists — конфликт уникальности (например, повторное
	// приглашение участника). HTTP 409.
	ErrAlreadyExists = errors.New("already exists")

	// ErrEmptyText — пустой текст сообщения или имени чата. HTTP 400.
	ErrEmptyText = errors.New("empty text")
)

// Service описывает бизнес-логику мессенджера.
type Service struct {
	storage storage.Storage
	bus     bus.Bus
	cfg     config.AuthConfig
	mailer  mail.Mailer // может быть nil, если почта не сконфигурирована
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, b bus.Bus, cfg config.AuthConfig) *Service {
	return &Service{
		storage: storage,
		bus:     b,
		cfg:     cfg,
	}
}

// SetMailer устанавливает отправителя почты (опционально).
func (s *Service) SetMailer(m mail.Mailer) {
	s.mailer = m
}
