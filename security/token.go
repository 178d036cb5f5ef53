package security

import (
	"errors"
	"fmt"
	"time"

	"budgetbuddy/finance-api/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the signature checked out but the token is past exp
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers malformed tokens and bad signatures
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenService issues and validates stateless HS256 session tokens.
// The subject claim carries the username. There is no revocation list,
// tokens stay valid until they expire.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg config.TokenConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

// Issue creates a signed token bound to username, expiring after the
// configured TTL
func (s *TokenService) Issue(username string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.ttl).Unix(),
	})

	return t.SignedString(s.secret)
}

// Parse validates the signature and expiry of token and returns the
// username it is bound to. Callers must collapse ErrTokenExpired and
// ErrTokenInvalid into a single response so clients can't tell which
// check failed.
func (s *TokenService) Parse(token string) (string, error) {
	t, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}

		return "", ErrTokenInvalid
	}

	if !t.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", ErrTokenInvalid
	}

	return username, nil
}
