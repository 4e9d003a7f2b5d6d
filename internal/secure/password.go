// secure — чистая библиотека учётных данных: хэширование/проверка паролей
// (argon2id) и работа с TOTP-секретами для 2FA. Пакет не имеет собственного
// состояния и не ходит ни в БД, ни в сеть.
package secure

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры argon2id по рекомендациям OWASP.
const (
	argonMemory      = 64 * 1024 // KiB
	argonIterations  = 3
	argonParallelism = 2
	saltLength       = 16
	keyLength        = 32
)

// ErrMalformedHash — строка хэша не соответствует ожидаемому формату.
// Возвращается до каких-либо криптографических сравнений.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword хэширует пароль argon2id со случайной солью.
// Результат — самоописывающая строка вида
// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>.
func HashPassword(password string) (string, error) {
	const op = "secure.HashPassword"

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, keyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonIterations, argonParallelism, b64Salt, b64Hash), nil
}

// VerifyPassword сравнивает пароль с сохранённым хэшем за константное время.
// Некорректный формат хэша возвращает ErrMalformedHash, не доходя до сравнения.
func VerifyPassword(password, encodedHash string) (bool, error) {
	const op = "secure.VerifyPassword"

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%s: %w", op, ErrMalformedHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrMalformedHash)
	}

	var memory, iterations, parallelism int
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrMalformedHash)
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, ErrMalformedHash)
	}

	gotHash := argon2.IDKey([]byte(password), salt,
		uint32(iterations), uint32(memory), uint8(parallelism), uint32(len(wantHash)))

	return subtle.ConstantTimeCompare(wantHash, gotHash) == 1, nil
}
