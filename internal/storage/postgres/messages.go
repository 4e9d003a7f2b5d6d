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

const messageColumns = `id, chat_id, author_id, body, created_at, updated_at`

func scanMessage(row pgx.Row) (*models.Message, error) {
	var msg models.Message
	err := row.Scan(
		&msg.ID,
		&msg.ChatID,
		&msg.AuthorID,
		&msg.Text,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &msg, nil
}

// SaveMessage сохраняет новое сообщение.
func (s *Storage) SaveMessage(ctx context.Context, msg *models.Message) error {
	const op = "storage.postgres.SaveMessage"

	query := `
		INSERT INTO messages(id, chat_id, author_id, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		msg.ID,
		msg.ChatID,
		msg.AuthorID,
		msg.Text,
		msg.CreatedAt,
		msg.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MessageByID находит сообщение по ID.
func (s *Storage) MessageByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	const op = "storage.postgres.MessageByID"

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE id = $1
	`

	msg, err := scanMessage(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// MessagesForChat возвращает сообщения чата в порядке создания.
func (s *Storage) MessagesForChat(ctx context.Context, chatID uuid.UUID) ([]models.Message, error) {
	const op = "storage.postgres.MessagesForChat"

	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var msgs []models.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		msgs = append(msgs, *msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msgs, nil
}

// UpdateMessage меняет текст сообщения. Несовпадение автора неотличимо
// от отсутствия сообщения — в обоих случаях ErrNotFound.
func (s *Storage) UpdateMessage(ctx context.Context, authorID, messageID uuid.UUID, text string) (*models.Message, error) {
	const op = "storage.postgres.UpdateMessage"

	query := `
		UPDATE messages
		SET body = $3, updated_at = now()
		WHERE id = $1 AND author_id = $2
		RETURNING ` + messageColumns + `
	`

	msg, err := scanMessage(s.db.QueryRow(ctx, query, messageID, authorID, text))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// DeleteMessage удаляет сообщение автора.
func (s *Storage) DeleteMessage(ctx context.Context, authorID, messageID uuid.UUID) error {
	const op = "storage.postgres.DeleteMessage"

	tag, err := s.db.Exec(ctx, `
		DELETE FROM messages WHERE id = $1 AND author_id = $2
	`, messageID, authorID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
