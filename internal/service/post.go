package service

import (
	"context"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
)

type PostService interface {
	List(ctx context.Context, page int) (domain.PostPage, error)
	Get(ctx context.Context, no domain.PostNo) (domain.Post, error)
	Create(ctx context.Context, caller domain.Subject, title, body string) (domain.PostNo, error)
	Update(ctx context.Context, caller domain.Subject, no domain.PostNo, data domain.PostUpdateData) error
	Delete(ctx context.Context, caller domain.Subject, no domain.PostNo) error
}

type PostStorage interface {
	CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostNo, error)
	Post(ctx context.Context, no domain.PostNo) (domain.Post, error)
	Posts(ctx context.Context, limit, offset int) ([]domain.Post, error)
	CountPosts(ctx context.Context) (int, error)
	UpdatePost(ctx context.Context, no domain.PostNo, data domain.PostUpdateData, check domain.OwnerCheck) error
	DeletePost(ctx context.Context, no domain.PostNo, check domain.OwnerCheck) error
}

type Post struct {
	storage PostStorage
}

func NewPost(storage PostStorage) *Post {
	return &Post{storage: storage}
}

// List returns page (1-indexed, values below 1 mean 1) of the board, newest
// first, together with the total number of posts.
func (p *Post) List(ctx context.Context, page int) (domain.PostPage, error) {
	if page < 1 {
		page = 1
	}
	posts, err := p.storage.Posts(ctx, domain.PostsPerPage, (page-1)*domain.PostsPerPage)
	if err != nil {
		return domain.PostPage{}, err
	}
	total, err := p.storage.CountPosts(ctx)
	if err != nil {
		return domain.PostPage{}, err
	}
	return domain.PostPage{Posts: posts, Total: total}, nil
}

func (p *Post) Get(ctx context.Context, no domain.PostNo) (domain.Post, error) {
	return p.storage.Post(ctx, no)
}

func (p *Post) Create(ctx context.Context, caller domain.Subject, title, body string) (domain.PostNo, error) {
	if err := requiredAll("title", title, "body", body); err != nil {
		return -1, err
	}
	return p.storage.CreatePost(ctx, domain.PostCreationData{Owner: caller.Id, Title: title, Body: body})
}

func (p *Post) Update(ctx context.Context, caller domain.Subject, no domain.PostNo, data domain.PostUpdateData) error {
	if err := requiredAll("title", data.Title, "body", data.Body); err != nil {
		return err
	}
	return p.storage.UpdatePost(ctx, no, data, RequireOwner(caller, "post"))
}

// Delete removes the post and every reply under it.
func (p *Post) Delete(ctx context.Context, caller domain.Subject, no domain.PostNo) error {
	return p.storage.DeletePost(ctx, no, RequireOwner(caller, "post"))
}
