package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"github.com/tglkwon/api.board.aquaco.work/internal/logger"
	"github.com/tglkwon/api.board.aquaco.work/internal/middleware/metrics"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils/jwt"
)

// TokenHeader carries the access token issued at login.
const TokenHeader = "token"

type TokenDecoder interface {
	DecodeToken(jwtStr string) (domain.Subject, error)
}

// Key to store the subject in the request context
type key int

const SubjectKey key = 0

var errNoToken = internal_errors.Unauthorized("Please sign-in")

type Auth struct {
	jwtService TokenDecoder
}

func NewAuth(jwtService TokenDecoder) *Auth {
	return &Auth{jwtService: jwtService}
}

// extractToken reads the token header, falling back to a bearer
// Authorization header.
func extractToken(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return token
	}
	return ""
}

// NeedAuth rejects the request unless it carries a valid, unexpired token.
// The verified subject is stored in the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				metrics.AuthFailure("missing")
				utils.WriteErrorAndStatusCode(w, r, errNoToken)
				return
			}

			subject, err := a.jwtService.DecodeToken(tokenString)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, jwt.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthFailure(reason)
				logger.Log.DebugContext(r.Context(), "token rejected", "reason", reason)
				if !internal_errors.IsUnauthorized(err) {
					err = jwt.ErrInvalidToken
				}
				utils.WriteErrorAndStatusCode(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}

func WithSubject(ctx context.Context, subject domain.Subject) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

// GetSubjectFromContext returns the subject NeedAuth verified, if any.
func GetSubjectFromContext(r *http.Request) (domain.Subject, bool) {
	subject, ok := r.Context().Value(SubjectKey).(domain.Subject)
	return subject, ok
}
