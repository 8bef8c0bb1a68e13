package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"github.com/tglkwon/api.board.aquaco.work/internal/logger"
)

// TokenTTL is the fixed lifetime of an access token. Tokens are never renewed.
const TokenTTL = 12 * time.Hour

var (
	ErrInvalidToken = internal_errors.Unauthorized("Invalid token")
	ErrTokenExpired = internal_errors.Unauthorized("Token expired")
)

type JwtService interface {
	NewToken(subject domain.Subject) (string, error)
	DecodeToken(jwtStr string) (domain.Subject, error)
}

type claims struct {
	jwt.RegisteredClaims
	Nickname string `json:"nickname"`
}

type Jwt struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

type Option func(*Jwt)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(j *Jwt) { j.now = now }
}

func New(secretKey string, ttl time.Duration, opts ...Option) *Jwt {
	j := &Jwt{secretKey: []byte(secretKey), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Jwt) NewToken(subject domain.Subject) (string, error) {
	issuedAt := j.now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.Id,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.ttl)),
		},
		Nickname: subject.Nickname,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logger.Log.Error("failed to sign token", "member_id", subject.Id, "error", err)
		return "", errors.New("can't create token")
	}
	return tokenString, nil
}

// DecodeToken verifies signature, algorithm and expiry and returns the
// subject the token was issued for. Every failure is ErrInvalidToken or
// ErrTokenExpired.
func (j *Jwt) DecodeToken(jwtStr string) (domain.Subject, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(jwtStr, c,
		func(token *jwt.Token) (interface{}, error) {
			return j.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Subject{}, ErrTokenExpired
		}
		logger.Log.Debug("token rejected", "error", err)
		return domain.Subject{}, ErrInvalidToken
	}
	if !token.Valid || c.Subject == "" || c.Nickname == "" {
		return domain.Subject{}, ErrInvalidToken
	}

	return domain.Subject{Id: c.Subject, Nickname: c.Nickname}, nil
}
