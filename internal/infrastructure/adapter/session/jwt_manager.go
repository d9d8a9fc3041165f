package session

import (
	"fmt"
	"time"

	errs "github.com/andreysazonov/office-booking/internal/domain/error"
	coreport "github.com/andreysazonov/office-booking/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload issued on login
type Claims struct {
	UserID   uint64 `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues and validates signed session tokens
type Manager struct {
	secret       []byte
	issuer       string
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
}

// NewManager creates a new session token manager
func NewManager(secret, issuer string, tokenTTL time.Duration, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		secret:       []byte(secret),
		issuer:       issuer,
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed token for the authenticated user
func (m *Manager) Issue(userID uint64, username string) (string, error) {
	now := m.timeProvider.Now().UTC()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
	return signed, nil
}

// Verify parses and validates a token string
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Enforce HMAC signing
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time {
		return m.timeProvider.Now()
	}))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrTokenInvalid, err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.ErrTokenInvalid
	}
	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, errs.ErrTokenInvalid
	}

	return claims, nil
}

// TTLUntilExpiry returns how long a token remains valid, used to bound
// revocation records so the store does not accumulate dead entries
func (m *Manager) TTLUntilExpiry(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return m.tokenTTL
	}
	remaining := claims.ExpiresAt.Time.Sub(m.timeProvider.Now())
	if remaining < 0 {
		return 0
	}
	return remaining
}
