package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens issues and parses HS256 session tokens. A token only names a
// session (sub = session id); access is decided by the session's flag.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue starts a new session and returns its id with a signed token.
func (t *Tokens) Issue() (sessionID, token string, exp time.Time, err error) {
	const op = "auth.Tokens.Issue"

	sessionID = uuid.NewString()
	now := t.now().UTC()
	exp = now.Add(t.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return sessionID, token, exp, nil
}

// Parse validates raw and returns the session id it carries.
func (t *Tokens) Parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
