package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
	"github.com/pribylovaa/go-messenger/internal/storage"
)

// UserByID возвращает активного пользователя по ID.
func (s *Service) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.storage.ActiveUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateProfile изменяет имя/фамилию/email пользователя. Смена email
// на занятый адрес (включая адреса мягко удалённых) — ErrEmailTaken.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (*models.User, error) {
	const op = "service.users.UpdateProfile"

	normEmail, err := validateEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	upd := storage.ProfileUpdate{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     normEmail,
	}

	user, err := s.storage.UpdateUserProfile(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// DeleteUser мягко удаляет пользователя: строка и занятый email остаются
// в БД, все последующие чтения и вход для него ведут себя как «не найден».
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "service.users.DeleteUser"

	if err := s.storage.SoftDeleteUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SearchUsers возвращает активных пользователей, чей email содержит
// подстроку. Пустая подстрока возвращает всех активных пользователей.
func (s *Service) SearchUsers(ctx context.Context, emailContains string) ([]models.User, error) {
	const op = "service.users.SearchUsers"

	users, err := s.storage.SearchActiveUsersByEmail(ctx, strings.ToLower(strings.TrimSpace(emailContains)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
