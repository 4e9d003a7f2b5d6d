package models

import (
	"time"

	"github.com/google/uuid"
)

// Message — сообщение в чате. Автор обязан состоять в чате на момент
// создания; изменять и удалять сообщение может только автор.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
