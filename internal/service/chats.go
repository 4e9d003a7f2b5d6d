package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

// CreateChat создаёт чат и записывает создателя вместе с participantIDs
// в участники одной транзакцией. Дубликаты в participantIDs и повтор
// создателя в списке схлопываются, а не считаются конфликтом.
func (s *Service) CreateChat(ctx context.Context, creatorID uuid.UUID, name string, participantIDs []uuid.UUID) (*models.Chat, error) {
	const op = "service.chats.CreateChat"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	now := time.Now().UTC()
	chat := &models.Chat{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	members := make([]uuid.UUID, 0, len(participantIDs)+1)
	seen := map[uuid.UUID]struct{}{creatorID: {}}
	members = append(members, creatorID)
	for _, id := range participantIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id)
	}

	if err := s.storage.CreateChatWithMembers(ctx, chat, members); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chat, nil
}

// ChatByID возвращает чат, если пользователь состоит в нём.
// Несуществующий чат и чужой чат снаружи неразличимы: оба — ErrNotFound.
func (s *Service) ChatByID(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	const op = "service.chats.ChatByID"

	chat, err := s.storage.ChatIfMember(ctx, userID, chatID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chat, nil
}

// ChatsForUser возвращает чаты пользователя, свежие сверху.
func (s *Service) ChatsForUser(ctx context.Context, userID uuid.UUID) ([]models.Chat, error) {
	const op = "service.chats.ChatsForUser"

	chats, err := s.storage.ChatsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chats, nil
}

// UpdateChat изменяет название и флаги чата. Доступно любому участнику.
func (s *Service) UpdateChat(ctx context.Context, userID, chatID uuid.UUID, name string, isMuted, isArchived bool) (*models.Chat, error) {
	const op = "service.chats.UpdateChat"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyText)
	}

	if err := s.requireMember(ctx, userID, chatID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	chat, err := s.storage.UpdateChat(ctx, chatID, name, isMuted, isArchived)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return chat, nil
}

// DeleteChat удаляет чат вместе с участниками и сообщениями.
// Доступно любому участнику.
func (s *Service) DeleteChat(ctx context.Context, userID, chatID uuid.UUID) error {
	const op = "service.chats.DeleteChat"

	if err := s.requireMember(ctx, userID, chatID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteChat(ctx, chatID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// InviteToChat добавляет пользователя в чат. Приглашать может только
// участник; повторное приглашение — ErrAlreadyExists.
func (s *Service) InviteToChat(ctx context.Context, inviterID, chatID, inviteeID uuid.UUID) error {
	const op = "service.chats.InviteToChat"

	if err := s.requireMember(ctx, inviterID, chatID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.storage.ActiveUserByID(ctx, inviteeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.AddMember(ctx, chatID, inviteeID); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// requireMember возвращает ErrNotChatMember, если пользователь
// не состоит в чате.
func (s *Service) requireMember(ctx context.Context, userID, chatID uuid.UUID) error {
	const op = "service.chats.requireMember"

	ok, err := s.storage.IsMember(ctx, userID, chatID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotChatMember)
	}

	return nil
}
