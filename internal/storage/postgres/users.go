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

const userColumns = `id, first_name, last_name, email, password_hash,
		is_active, is_2fa_enabled, otp_secret, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.Is2FAEnabled,
		&user.OTPSecret,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveUser создаёт нового пользователя в БД.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(id, first_name, last_name, email, password_hash,
			is_active, is_2fa_enabled, otp_secret, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.Is2FAEnabled,
		user.OTPSecret,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ActiveUserByID находит активного пользователя по ID.
func (s *Storage) ActiveUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.ActiveUserByID"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND is_active
	`

	user, err := scanUser(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ActiveUserByEmail находит активного пользователя по email.
func (s *Storage) ActiveUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.postgres.ActiveUserByEmail"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND is_active
	`

	user, err := scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUserProfile изменяет имя/фамилию/email активного пользователя.
func (s *Storage) UpdateUserProfile(ctx context.Context, id uuid.UUID, upd storage.ProfileUpdate) (*models.User, error) {
	const op = "storage.postgres.UpdateUserProfile"

	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, updated_at = now()
		WHERE id = $1 AND is_active
		RETURNING ` + userColumns + `
	`

	user, err := scanUser(s.db.QueryRow(ctx, query, id, upd.FirstName, upd.LastName, upd.Email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UpdateUserPassword меняет хэш пароля активного пользователя.
func (s *Storage) UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const op = "storage.postgres.UpdateUserPassword"

	query := `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1 AND is_active
	`

	tag, err := s.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// EnableUser2FA включает 2FA и записывает новый OTP-секрет.
func (s *Storage) EnableUser2FA(ctx context.Context, id uuid.UUID, otpSecret string) error {
	const op = "storage.postgres.EnableUser2FA"

	query := `
		UPDATE users
		SET is_2fa_enabled = TRUE, otp_secret = $2, updated_at = now()
		WHERE id = $1 AND is_active
	`

	tag, err := s.db.Exec(ctx, query, id, otpSecret)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SoftDeleteUser помечает пользователя удалённым; email остаётся занятым.
func (s *Storage) SoftDeleteUser(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.SoftDeleteUser"

	query := `
		UPDATE users
		SET is_active = FALSE, updated_at = now()
		WHERE id = $1 AND is_active
	`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SearchActiveUsersByEmail возвращает активных пользователей по подстроке email.
func (s *Storage) SearchActiveUsersByEmail(ctx context.Context, substring string) ([]models.User, error) {
	const op = "storage.postgres.SearchActiveUsersByEmail"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active AND position($1 IN email) > 0
		ORDER BY email
	`

	rows, err := s.db.Query(ctx, query, substring)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
