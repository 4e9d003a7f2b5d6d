package secure

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	totpPeriod = 30
	totpDigits = 6
	// totpSkew — допуск на расхождение часов: принимается текущий
	// и соседние временные шаги.
	totpSkew = 1

	secretBytes = 20
)

// NewTOTPSecret генерирует криптографически случайный base32-секрет.
// Секрет пересоздаётся при каждом включении 2FA, прежний перестаёт действовать.
func NewTOTPSecret() (string, error) {
	const op = "secure.NewTOTPSecret"

	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf), nil
}

// TOTPProvisioningURI собирает otpauth://-URI для enrolment-а
// (QR-код из него рендерит внешняя сторона).
func TOTPProvisioningURI(secret, account, issuer string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", issuer)
	v.Set("algorithm", otp.AlgorithmSHA1.String())
	v.Set("digits", "6")
	v.Set("period", "30")

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + issuer + ":" + account,
		RawQuery: v.Encode(),
	}

	return u.String()
}

// VerifyTOTP проверяет код против секрета с допуском ±1 шаг.
// Код неверной длины или с нецифровыми символами отклоняется до обращения
// к секрету.
func VerifyTOTP(secret, code string) bool {
	if len(code) != totpDigits {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}

	ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})

	return err == nil && ok
}
