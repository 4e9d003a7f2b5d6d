package models

import (
	"time"

	"github.com/google/uuid"
)

// User — модель пользователя в системе.
//
// Инварианты:
//   - Email уникален среди всех строк, включая мягко удалённые
//     (IsActive=false не освобождает адрес);
//   - PasswordHash никогда не равен исходному паролю;
//   - OTPSecret заполнен только при Is2FAEnabled=true.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	// IsActive — признак мягкого удаления: false означает, что пользователь
	// удалён, но строка (и занятый email) остаются в БД навсегда.
	IsActive     bool
	Is2FAEnabled bool
	OTPSecret    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
