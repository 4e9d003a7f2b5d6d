package models

import "time"

// TokenPair — пара токенов, выдаваемая при аутентификации/регистрации/refresh.
//
// Оба токена — подписанные JWT без серверного состояния: сервер не хранит
// сессий и не умеет отзывать выданный токен раньше его exp. Logout — это
// только удаление cookie на клиенте.
type TokenPair struct {
	// AccessToken — короткоживущий JWT для авторизации обычных запросов.
	AccessToken string
	// RefreshToken — долгоживущий JWT, предъявляемый только для выпуска новой пары.
	RefreshToken string
	// AccessExpiresAt — момент истечения access-токена (UTC).
	AccessExpiresAt time.Time
	// RefreshExpiresAt — момент истечения refresh-токена (UTC).
	RefreshExpiresAt time.Time
}
