package models

import "github.com/google/uuid"

// LoginResult — размеченное объединение двух исходов логина:
// либо пользователь аутентифицирован и токены выданы, либо у него включена
// 2FA и требуется код (токены НЕ выдаются до подтверждения).
type LoginResult struct {
	// OTPRequired — true, когда у пользователя включена 2FA;
	// в этом случае заполнен только UserID.
	OTPRequired bool
	UserID      uuid.UUID

	// User и Tokens заполнены только при OTPRequired=false.
	User   *User
	Tokens *TokenPair
}
