package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-messenger/internal/models"
)

// tokenType разводит назначение токенов в общем пространстве claims.
// Подпись у access и refresh общая, но refresh нельзя предъявить как
// access и наоборот: тип проверяется при разборе.
type tokenType string

const (
	tokenTypeAccess  tokenType = "access"
	tokenTypeRefresh tokenType = "refresh"
	// tokenTypeReset — одноразовое назначение для ссылок сброса пароля;
	// живёт столько же, сколько access-токен.
	tokenTypeReset tokenType = "reset"
)

type sessionClaims struct {
	TokenType string `json:"ttype"`
	jwt.RegisteredClaims
}

// issueToken выпускает подписанный JWT вида {sub: userID, exp: now+ttl}.
// Никакого серверного состояния токен за собой не тянет: валидность —
// функция только подписи и exp.
func (s *Service) issueToken(userID uuid.UUID, ttype tokenType, ttl time.Duration, now time.Time) (string, error) {
	const op = "service.token.issueToken"

	claims := sessionClaims{
		TokenType: string(ttype),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// issueTokenPair выпускает пару access/refresh с независимыми TTL.
func (s *Service) issueTokenPair(userID uuid.UUID) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := time.Now().UTC()

	access, err := s.issueToken(userID, tokenTypeAccess, s.cfg.AccessTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.issueToken(userID, tokenTypeRefresh, s.cfg.RefreshTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  now.Add(s.cfg.AccessTokenTTL),
		RefreshExpiresAt: now.Add(s.cfg.RefreshTokenTTL),
	}, nil
}

// parseToken разбирает и валидирует токен ожидаемого типа.
//
// Ровно два отказа: ErrTokenExpired для истёкшего exp и ErrInvalidToken
// для всего остального (подпись, формат, алгоритм, тип). Существование
// и активность пользователя здесь НЕ проверяются — это забота
// персистентного слоя ниже по запросу.
func (s *Service) parseToken(raw string, want tokenType) (uuid.UUID, error) {
	const op = "service.token.parseToken"

	token, err := jwt.ParseWithClaims(raw, &sessionClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.TokenType != string(want) {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, nil
}

// AuthenticateAccess проверяет access-токен и возвращает ID пользователя.
func (s *Service) AuthenticateAccess(accessToken string) (uuid.UUID, error) {
	const op = "service.token.AuthenticateAccess"

	uid, err := s.parseToken(accessToken, tokenTypeAccess)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return uid, nil
}

// AuthenticateRefresh проверяет refresh-токен и возвращает ID пользователя.
// Валидность access-токена при этом не требуется.
func (s *Service) AuthenticateRefresh(refreshToken string) (uuid.UUID, error) {
	const op = "service.token.AuthenticateRefresh"

	uid, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return uid, nil
}
