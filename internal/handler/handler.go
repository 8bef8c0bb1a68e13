package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/errors"
	mw "github.com/tglkwon/api.board.aquaco.work/internal/middleware"
	"github.com/tglkwon/api.board.aquaco.work/internal/service"
)

// Pinger reports whether the database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	post   service.PostService
	reply  service.ReplyService
	health Pinger
}

func New(auth service.AuthService, post service.PostService, reply service.ReplyService, health Pinger) *Handler {
	return &Handler{auth: auth, post: post, reply: reply, health: health}
}

// parseIntParam parses a numeric path or query parameter.
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, errors.Validation("invalid " + paramName + ": must be an integer")
	}
	return val, nil
}

// caller returns the subject NeedAuth stored for this request.
func caller(r *http.Request) (domain.Subject, error) {
	subject, ok := mw.GetSubjectFromContext(r)
	if !ok {
		return domain.Subject{}, errors.Unauthorized("Please sign-in")
	}
	return subject, nil
}
