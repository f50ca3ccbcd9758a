package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zengarden/apiserver/config"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 30 * time.Minute

// ErrInvalidToken is returned when a token is malformed or its signature
// does not verify.
var ErrInvalidToken = errors.New("invalid token")

// ErrTokenExpired is returned when a token is past its expiry claim.
var ErrTokenExpired = errors.New("token expired")

// Authenticator hashes passwords and issues signed bearer tokens. It is
// constructed once at startup from configuration and is safe for
// concurrent use.
type Authenticator struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// New constructs an Authenticator from the given configuration. Only HMAC
// signing algorithms are accepted.
func New(cfg config.AuthConfig) (*Authenticator, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("signing secret is required")
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.Algorithm)
	}

	ttl := time.Duration(cfg.TokenTTLMinute) * time.Minute
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Authenticator{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// HashPassword returns a salted one-way hash of the password.
func (a *Authenticator) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the password matches the stored hash.
func (a *Authenticator) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a bearer token for the given username, valid for the
// configured TTL.
func (a *Authenticator) IssueToken(username string) (string, error) {
	now := a.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}
	token := jwt.NewWithClaims(a.method, claims)
	return token.SignedString(a.secret)
}

// ParseToken verifies the token's signature and expiry and returns its
// subject.
func (a *Authenticator) ParseToken(tokenString string) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return a.secret, nil
		},
		jwt.WithTimeFunc(func() time.Time { return a.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
