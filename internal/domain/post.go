package domain

import "time"

type PostNo = int64

const PostsPerPage = 10

type Post struct {
	No        PostNo
	OwnerId   MemberId
	Nickname  string
	Title     string
	Body      string
	WrittenAt time.Time
}

type PostCreationData struct {
	Owner MemberId
	Title string
	Body  string
}

type PostUpdateData struct {
	Title string
	Body  string
}

// PostPage is one page of the board listing, newest first.
type PostPage struct {
	Posts []Post
	Total int
}
