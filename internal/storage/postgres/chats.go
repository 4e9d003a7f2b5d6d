package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

const chatColumns = `id, name, is_muted, is_archived, created_at, updated_at`

func scanChat(row pgx.Row) (*models.Chat, error) {
	var chat models.Chat
	err := row.Scan(
		&chat.ID,
		&chat.Name,
		&chat.IsMuted,
		&chat.IsArchived,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &chat, nil
}

func mapMemberErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}

// CreateChatWithMembers создаёт чат и всех участников в одной транзакции.
// Частично созданный чат (строка чата без участников) снаружи не наблюдаем:
// при любой ошибке транзакция откатывается целиком.
func (s *Storage) CreateChatWithMembers(ctx context.Context, chat *models.Chat, memberIDs []uuid.UUID) error {
	const op = "storage.postgres.CreateChatWithMembers"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO chats(id, name, is_muted, is_archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, chat.ID, chat.Name, chat.IsMuted, chat.IsArchived, chat.CreatedAt, chat.UpdatedAt)
	if err != nil {
		return mapMemberErr(op, err)
	}

	for _, userID := range memberIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO chat_members(id, user_id, chat_id)
			VALUES ($1, $2, $3)
		`, uuid.New(), userID, chat.ID)
		if err != nil {
			return mapMemberErr(op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ChatIfMember возвращает чат, только если пользователь в нём состоит.
func (s *Storage) ChatIfMember(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	const op = "storage.postgres.ChatIfMember"

	query := `
		SELECT c.id, c.name, c.is_muted, c.is_archived, c.created_at, c.updated_at
		FROM chats c
		JOIN chat_members m ON m.chat_id = c.id
		WHERE c.id = $1 AND m.user_id = $2
	`

	chat, err := scanChat(s.db.QueryRow(ctx, query, chatID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chat, nil
}

// ChatsForUser возвращает чаты пользователя, свежие сверху.
func (s *Storage) ChatsForUser(ctx context.Context, userID uuid.UUID) ([]models.Chat, error) {
	const op = "storage.postgres.ChatsForUser"

	query := `
		SELECT c.id, c.name, c.is_muted, c.is_archived, c.created_at, c.updated_at
		FROM chats c
		JOIN chat_members m ON m.chat_id = c.id
		WHERE m.user_id = $1
		ORDER BY c.updated_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		chats = append(chats, *chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chats, nil
}

// UpdateChat изменяет название и флаги чата.
func (s *Storage) UpdateChat(ctx context.Context, chatID uuid.UUID, name string, isMuted, isArchived bool) (*models.Chat, error) {
	const op = "storage.postgres.UpdateChat"

	query := `
		UPDATE chats
		SET name = $2, is_muted = $3, is_archived = $4, updated_at = now()
		WHERE id = $1
		RETURNING ` + chatColumns + `
	`

	chat, err := scanChat(s.db.QueryRow(ctx, query, chatID, name, isMuted, isArchived))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chat, nil
}

// DeleteChat удаляет чат; участники и сообщения удаляются каскадно (FK).
func (s *Storage) DeleteChat(ctx context.Context, chatID uuid.UUID) error {
	const op = "storage.postgres.DeleteChat"

	tag, err := s.db.Exec(ctx, `DELETE FROM chats WHERE id = $1`, chatID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// IsMember сообщает, состоит ли пользователь в чате.
func (s *Storage) IsMember(ctx context.Context, userID, chatID uuid.UUID) (bool, error) {
	const op = "storage.postgres.IsMember"

	query := `
		SELECT EXISTS (
			SELECT 1 FROM chat_members WHERE user_id = $1 AND chat_id = $2
		)
	`

	var ok bool
	if err := s.db.QueryRow(ctx, query, userID, chatID).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// AddMember добавляет участника (приглашение в существующий чат).
func (s *Storage) AddMember(ctx context.Context, chatID, userID uuid.UUID) error {
	const op = "storage.postgres.AddMember"

	_, err := s.db.Exec(ctx, `
		INSERT INTO chat_members(id, user_id, chat_id)
		VALUES ($1, $2, $3)
	`, uuid.New(), userID, chatID)
	if err != nil {
		return mapMemberErr(op, err)
	}

	return nil
}
