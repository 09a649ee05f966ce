package security

import (
	"errors"
	"file-storage-server/internal/util"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecretKey = errors.New("не задан секретный ключ платформы")

// SessionClaims : содержимое секрета сессии, который уходит в cookie
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secretKey []byte
	issuer    string
}

func NewSessionTokenService(secretKey, issuer string) *SessionTokenService {
	return &SessionTokenService{secretKey: []byte(secretKey), issuer: issuer}
}

// Sign : подписывает секрет сессии HS512
func (s *SessionTokenService) Sign(sessionID, accountID string, issuedAt, expireAt time.Time) (string, error) {
	if len(s.secretKey) == 0 {
		return "", ErrMissingSecretKey
	}

	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ExpiresAt: jwt.NewNumericDate(expireAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secretKey)
	if err != nil {
		return "", util.LogError("[SessionToken] ошибка подписи секрета", err)
	}

	return token, nil
}

// Parse : проверяет подпись и срок действия секрета
func (s *SessionTokenService) Parse(tokenStr string) (*SessionClaims, error) {
	if len(s.secretKey) == 0 {
		return nil, ErrMissingSecretKey
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer))

	if err != nil {
		return nil, fmt.Errorf("невалидный секрет сессии: %w", err)
	}
	if !token.Valid || claims.SessionID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("невалидный секрет сессии")
	}

	return claims, nil
}
