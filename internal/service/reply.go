package service

import (
	"context"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
)

type ReplyService interface {
	List(ctx context.Context, postNo domain.PostNo) ([]domain.Reply, error)
	Create(ctx context.Context, caller domain.Subject, postNo domain.PostNo, body string) (domain.ReplyNo, error)
	Update(ctx context.Context, caller domain.Subject, postNo domain.PostNo, no domain.ReplyNo, body string) error
	Delete(ctx context.Context, caller domain.Subject, postNo domain.PostNo, no domain.ReplyNo) error
}

type ReplyStorage interface {
	CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.ReplyNo, error)
	Replies(ctx context.Context, postNo domain.PostNo) ([]domain.Reply, error)
	UpdateReply(ctx context.Context, postNo domain.PostNo, no domain.ReplyNo, body string, check domain.OwnerCheck) error
	DeleteReply(ctx context.Context, postNo domain.PostNo, no domain.ReplyNo, check domain.OwnerCheck) error
}

type Reply struct {
	storage ReplyStorage
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage: storage}
}

// List returns the replies of a post, oldest first.
func (r *Reply) List(ctx context.Context, postNo domain.PostNo) ([]domain.Reply, error) {
	return r.storage.Replies(ctx, postNo)
}

func (r *Reply) Create(ctx context.Context, caller domain.Subject, postNo domain.PostNo, body string) (domain.ReplyNo, error) {
	if err := required("reply", body); err != nil {
		return -1, err
	}
	return r.storage.CreateReply(ctx, domain.ReplyCreationData{PostNo: postNo, Owner: caller.Id, Body: body})
}

// Update checks ownership against the reply's author, not the post's.
func (r *Reply) Update(ctx context.Context, caller domain.Subject, postNo domain.PostNo, no domain.ReplyNo, body string) error {
	if err := required("reply", body); err != nil {
		return err
	}
	return r.storage.UpdateReply(ctx, postNo, no, body, RequireOwner(caller, "reply"))
}

func (r *Reply) Delete(ctx context.Context, caller domain.Subject, postNo domain.PostNo, no domain.ReplyNo) error {
	return r.storage.DeleteReply(ctx, postNo, no, RequireOwner(caller, "reply"))
}
