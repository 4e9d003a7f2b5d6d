package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/bus"
	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/pkg/log"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

// CreateMessage сохраняет сообщение и публикует его в шину рассылки.
//
// Публикация — best-effort: сообщение уже записано в БД, и отказ шины
// не откатывает запись и не превращается в ошибку запроса; подписчики,
// не получившие событие, увидят сообщение при следующем чтении истории.
func (s *Service) CreateMessage(ctx context.Context, authorID, chatID uuid.UUID, text string) (*models.Message, error) {
	const op = "service.messages.CreateMessage"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	if err := s.requireMember(ctx, authorID, chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	msg := &models.Message{
		ID:        uuid.New(),
		ChatID:    chatID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveMessage(ctx, msg); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.bus.Publish(ctx, chatID, *msg); err != nil {
		log.From(ctx).Error("message_publish_failed",
			slog.String("chat_id", chatID.String()),
			slog.String("message_id", msg.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return msg, nil
}

// MessagesForChat возвращает историю чата в порядке создания.
// Доступно только участникам.
func (s *Service) MessagesForChat(ctx context.Context, userID, chatID uuid.UUID) ([]models.Message, error) {
	const op = "service.messages.MessagesForChat"

	if err := s.requireMember(ctx, userID, chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	msgs, err := s.storage.MessagesForChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msgs, nil
}

// MessageByID возвращает сообщение; читать может любой участник чата.
func (s *Service) MessageByID(ctx context.Context, userID, messageID uuid.UUID) (*models.Message, error) {
	const op = "service.messages.MessageByID"

	msg, err := s.storage.MessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.requireMember(ctx, userID, msg.ChatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// UpdateMessage меняет текст сообщения. Редактирующий должен оставаться
// участником чата; разрешено только автору — чужое сообщение для него
// неотличимо от несуществующего.
func (s *Service) UpdateMessage(ctx context.Context, authorID, chatID, messageID uuid.UUID, text string) (*models.Message, error) {
	const op = "service.messages.UpdateMessage"

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	if err := s.requireMember(ctx, authorID, chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	msg, err := s.storage.UpdateMessage(ctx, authorID, messageID, text)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}

// DeleteMessage удаляет сообщение. Удаляющий должен оставаться участником
// чата; разрешено только автору.
func (s *Service) DeleteMessage(ctx context.Context, authorID, chatID, messageID uuid.UUID) error {
	const op = "service.messages.DeleteMessage"

	if err := s.requireMember(ctx, authorID, chatID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteMessage(ctx, authorID, messageID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SubscribeChat открывает подписку на новые сообщения чата.
//
// Членство проверяется один раз в момент подписки; исключённый позже
// участник продолжает получать события до закрытия подписки — живые
// подписки при изменении состава чата не ревизуются.
func (s *Service) SubscribeChat(ctx context.Context, userID, chatID uuid.UUID) (bus.Subscription, error) {
	const op = "service.messages.SubscribeChat"

	if err := s.requireMember(ctx, userID, chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub, err := s.bus.Subscribe(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}
