package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

// Файл интеграционных тестов для пакета postgres:
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет встроенную схему через EnsureSchema;
// - проверяет свойства, живущие только в SQL: атомарность CreateChatWithMembers
//   (откат не оставляет ни чата, ни участников), каскадное удаление участников
//   и сообщений вместе с чатом, резервирование email мягко удалённым
//   пользователем, авторские границы UPDATE/DELETE сообщений.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// startPostgres — поднимает временный экземпляр PostgreSQL, применяет схему
// и возвращает хранилище, пул для «сырых» проверок и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, *pgxpool.Pool, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	st, err := New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, st.EnsureSchema(ctx))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, pool, cleanup
}

func seedUser(t *testing.T, st *Storage, email string) *models.User {
	t.Helper()
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New(),
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

func seedChat(t *testing.T, st *Storage, memberIDs ...uuid.UUID) *models.Chat {
	t.Helper()
	now := time.Now().UTC()
	chat := &models.Chat{
		ID:        uuid.New(),
		Name:      "room",
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.CreateChatWithMembers(context.Background(), chat, memberIDs))
	return chat
}

func seedMessage(t *testing.T, st *Storage, chatID, authorID uuid.UUID, text string) *models.Message {
	t.Helper()
	now := time.Now().UTC()
	msg := &models.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.SaveMessage(context.Background(), msg))
	return msg
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// TestIntegration_CreateChatWithMembers_RollbackOnUnknownMember — транзакция
// создания чата: неизвестный участник (нарушение FK) откатывает всё целиком —
// ни строки чата, ни единой строки участников не остаётся.
func TestIntegration_CreateChatWithMembers_RollbackOnUnknownMember(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	creator := seedUser(t, st, "creator@example.com")

	now := time.Now().UTC()
	chat := &models.Chat{ID: uuid.New(), Name: "room", CreatedAt: now, UpdatedAt: now}

	err := st.CreateChatWithMembers(context.Background(), chat, []uuid.UUID{creator.ID, uuid.New()})
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.Zero(t, countRows(t, pool, `SELECT count(*) FROM chats WHERE id = $1`, chat.ID))
	require.Zero(t, countRows(t, pool, `SELECT count(*) FROM chat_members WHERE chat_id = $1`, chat.ID))

	isMember, err := st.IsMember(context.Background(), creator.ID, chat.ID)
	require.NoError(t, err)
	require.False(t, isMember)
}

// TestIntegration_DeleteChat_CascadesMembersAndMessages — удаление чата
// каскадно убирает участников и сообщения (FK ON DELETE CASCADE).
func TestIntegration_DeleteChat_CascadesMembersAndMessages(t *testing.T) {
	st, pool, cleanup := startPostgres(t)
	defer cleanup()

	alice := seedUser(t, st, "alice@example.com")
	bob := seedUser(t, st, "bob@example.com")
	chat := seedChat(t, st, alice.ID, bob.ID)

	msg := seedMessage(t, st, chat.ID, alice.ID, "hello")
	seedMessage(t, st, chat.ID, bob.ID, "hi")

	require.NoError(t, st.DeleteChat(context.Background(), chat.ID))

	require.Zero(t, countRows(t, pool, `SELECT count(*) FROM chat_members WHERE chat_id = $1`, chat.ID))
	require.Zero(t, countRows(t, pool, `SELECT count(*) FROM messages WHERE chat_id = $1`, chat.ID))

	_, err := st.MessageByID(context.Background(), msg.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// Пользователи удаление чата переживают.
	_, err = st.ActiveUserByID(context.Background(), alice.ID)
	require.NoError(t, err)
}

// TestIntegration_SoftDeleteUser_KeepsEmailReserved — мягко удалённый
// пользователь невидим для активных выборок, но его email остаётся занят.
func TestIntegration_SoftDeleteUser_KeepsEmailReserved(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "ghost@example.com")

	require.NoError(t, st.SoftDeleteUser(context.Background(), u.ID))

	_, err := st.ActiveUserByEmail(context.Background(), u.Email)
	require.ErrorIs(t, err, storage.ErrNotFound)
	_, err = st.ActiveUserByID(context.Background(), u.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	now := time.Now().UTC()
	again := &models.User{
		ID:           uuid.New(),
		Email:        u.Email,
		PasswordHash: "other-hash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.ErrorIs(t, st.SaveUser(context.Background(), again), storage.ErrAlreadyExists)
}

// TestIntegration_UpdateMessage_AuthorScoped — UPDATE/DELETE сообщений
// ограничены автором на уровне SQL: для чужого автора строка не находится.
func TestIntegration_UpdateMessage_AuthorScoped(t *testing.T) {
	st, _, cleanup := startPostgres(t)
	defer cleanup()

	alice := seedUser(t, st, "alice2@example.com")
	bob := seedUser(t, st, "bob2@example.com")
	chat := seedChat(t, st, alice.ID, bob.ID)
	msg := seedMessage(t, st, chat.ID, alice.ID, "original")

	_, err := st.UpdateMessage(context.Background(), bob.ID, msg.ID, "hijacked")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, st.DeleteMessage(context.Background(), bob.ID, msg.ID), storage.ErrNotFound)

	got, err := st.UpdateMessage(context.Background(), alice.ID, msg.ID, "edited")
	require.NoError(t, err)
	require.Equal(t, "edited", got.Text)

	require.NoError(t, st.DeleteMessage(context.Background(), alice.ID, msg.ID))
	_, err = st.MessageByID(context.Background(), msg.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
