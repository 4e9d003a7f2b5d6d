// storage задаёт контракт персистентного слоя: атомарные операции над
// пользователями, чатами, участниками и сообщениями. Реализация — postgres.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
)

var (
	// ErrNotFound — запись не найдена. Возвращается одинаково и для
	// никогда не существовавших, и для мягко удалённых строк, чтобы
	// не раскрывать историю удалений.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email/участник чата).
	ErrAlreadyExists = errors.New("already exists")
)

// ProfileUpdate — изменяемые поля профиля пользователя.
type ProfileUpdate struct {
	FirstName string
	LastName  string
	Email     string
}

// UserStorage выполняет операции над пользователями.
// Все методы чтения видят только активных (не мягко удалённых) пользователей.
type UserStorage interface {
	// SaveUser создаёт нового пользователя; ErrAlreadyExists при занятом email
	// (в том числе мягко удалённым пользователем).
	SaveUser(ctx context.Context, user *models.User) error
	// ActiveUserByID находит активного пользователя по ID.
	ActiveUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// ActiveUserByEmail находит активного пользователя по email.
	ActiveUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUserProfile изменяет имя/фамилию/email активного пользователя.
	UpdateUserProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*models.User, error)
	// UpdateUserPassword меняет хэш пароля активного пользователя.
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// EnableUser2FA включает 2FA и записывает новый OTP-секрет
	// (прежний секрет затирается).
	EnableUser2FA(ctx context.Context, id uuid.UUID, otpSecret string) error
	// SoftDeleteUser помечает пользователя удалённым; строка и email остаются занятыми.
	SoftDeleteUser(ctx context.Context, id uuid.UUID) error
	// SearchActiveUsersByEmail возвращает активных пользователей,
	// чей email содержит подстроку.
	SearchActiveUsersByEmail(ctx context.Context, substring string) ([]models.User, error)
}

// ChatStorage выполняет операции над чатами и участниками.
type ChatStorage interface {
	// CreateChatWithMembers создаёт чат и все строки участников в одной
	// транзакции: либо всё, либо ничего. ErrAlreadyExists при дубликате участника,
	// ErrNotFound при несуществующем участнике.
	CreateChatWithMembers(ctx context.Context, chat *models.Chat, memberIDs []uuid.UUID) error
	// ChatIfMember возвращает чат, только если пользователь в нём состоит.
	ChatIfMember(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error)
	// ChatsForUser возвращает чаты пользователя, свежие сверху.
	ChatsForUser(ctx context.Context, userID uuid.UUID) ([]models.Chat, error)
	// UpdateChat изменяет название и флаги чата.
	UpdateChat(ctx context.Context, chatID uuid.UUID, name string, isMuted, isArchived bool) (*models.Chat, error)
	// DeleteChat удаляет чат; участники и сообщения удаляются каскадно.
	DeleteChat(ctx context.Context, chatID uuid.UUID) error
	// IsMember сообщает, состоит ли пользователь в чате.
	IsMember(ctx context.Context, userID, chatID uuid.UUID) (bool, error)
	// AddMember добавляет участника; ErrAlreadyExists для повторного добавления.
	AddMember(ctx context.Context, chatID, userID uuid.UUID) error
}

// MessageStorage выполняет операции над сообщениями.
type MessageStorage interface {
	// SaveMessage сохраняет новое сообщение.
	SaveMessage(ctx context.Context, msg *models.Message) error
	// MessageByID находит сообщение по ID.
	MessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error)
	// MessagesForChat возвращает сообщения чата в порядке создания.
	MessagesForChat(ctx context.Context, chatID uuid.UUID) ([]models.Message, error)
	// UpdateMessage меняет текст сообщения; ErrNotFound, если сообщение
	// не существует или автор не совпадает.
	UpdateMessage(ctx context.Context, authorID, messageID uuid.UUID, text string) (*models.Message, error)
	// DeleteMessage удаляет сообщение; ErrNotFound, если сообщение
	// не существует или автор не совпадает.
	DeleteMessage(ctx context.Context, authorID, messageID uuid.UUID) error
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	ChatStorage
	MessageStorage
	Close()
}
