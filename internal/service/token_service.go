package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mamacare-api/internal/domain"
)

// TokenService issues and validates bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// Claims carried by every issued token.
type Claims struct {
	UserID   string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Verification failures are modeled distinctly for logging; the HTTP boundary
// flattens all three to one "invalid token" response.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature mismatch")
)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "mamacare-api",
	}
}

// Issue signs a token asserting the account's identity, expiring after the
// configured TTL (one hour by default).
func (s *TokenService) Issue(account domain.Account) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("token secret not configured")
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID:   account.ID,
		Email:    account.Email,
		Username: account.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenMalformed
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrTokenMalformed
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenSignature
		default:
			return Claims{}, ErrTokenMalformed
		}
	}
	if !s.isValidClaims(claims) {
		return Claims{}, ErrTokenMalformed
	}
	return claims, nil
}

func (s *TokenService) isValidClaims(claims Claims) bool {
	if strings.TrimSpace(claims.UserID) == "" {
		return false
	}
	if claims.Subject != claims.UserID {
		return false
	}
	return claims.Issuer == s.issuer
}
