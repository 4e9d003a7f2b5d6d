package models

import (
	"time"

	"github.com/google/uuid"
)

// Chat — модель чата.
type Chat struct {
	ID         uuid.UUID
	Name       string
	IsMuted    bool
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Membership — связь пользователь↔чат. Существование строки (UserID, ChatID) —
// единственное основание доступа к чату; нет строки — нет доступа.
type Membership struct {
	ID     uuid.UUID
	UserID uuid.UUID
	ChatID uuid.UUID
}
