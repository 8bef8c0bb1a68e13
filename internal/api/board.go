package api

import (
	"time"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
)

// Request DTOs

type PostRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type ReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

// Response DTOs

type PostListItem struct {
	No       domain.PostNo `json:"no"`
	Nickname string        `json:"nickname"`
	Title    string        `json:"title"`
	WriDate  time.Time     `json:"wri_date"`
}

type PostListResponse struct {
	Success bool           `json:"success"`
	List    []PostListItem `json:"list"`
	CntText int            `json:"cntText"`
}

type PostContents struct {
	No       domain.PostNo `json:"no"`
	Nickname string        `json:"nickname"`
	Title    string        `json:"title"`
	Body     string        `json:"body"`
	WriDate  time.Time     `json:"wri_date"`
}

type PostResponse struct {
	Success  bool         `json:"success"`
	Contents PostContents `json:"contents"`
}

type ReplyListItem struct {
	No       domain.ReplyNo `json:"no"`
	Nickname string         `json:"nickname"`
	Reply    string         `json:"reply"`
	RepDate  time.Time      `json:"rep_date"`
}

type ReplyListResponse struct {
	Success bool            `json:"success"`
	List    []ReplyListItem `json:"list"`
}

// CreatedResponse reports the number assigned to a new post or reply.
type CreatedResponse struct {
	Success bool  `json:"success"`
	No      int64 `json:"no"`
}

func NewPostListResponse(page domain.PostPage) PostListResponse {
	list := make([]PostListItem, len(page.Posts))
	for i, p := range page.Posts {
		list[i] = PostListItem{No: p.No, Nickname: p.Nickname, Title: p.Title, WriDate: p.WrittenAt}
	}
	return PostListResponse{Success: true, List: list, CntText: page.Total}
}

func NewPostResponse(p domain.Post) PostResponse {
	return PostResponse{
		Success: true,
		Contents: PostContents{
			No:       p.No,
			Nickname: p.Nickname,
			Title:    p.Title,
			Body:     p.Body,
			WriDate:  p.WrittenAt,
		},
	}
}

func NewReplyListResponse(replies []domain.Reply) ReplyListResponse {
	list := make([]ReplyListItem, len(replies))
	for i, r := range replies {
		list[i] = ReplyListItem{No: r.No, Nickname: r.Nickname, Reply: r.Body, RepDate: r.RepliedAt}
	}
	return ReplyListResponse{Success: true, List: list}
}
