package domain

import "time"

type ReplyNo = int64

type Reply struct {
	No        ReplyNo
	PostNo    PostNo
	OwnerId   MemberId
	Nickname  string
	Body      string
	RepliedAt time.Time
}

type ReplyCreationData struct {
	PostNo PostNo
	Owner  MemberId
	Body   string
}

// OwnerCheck decides whether the recorded owner of an existing row lets the
// current caller mutate it.
type OwnerCheck func(owner MemberId) error
