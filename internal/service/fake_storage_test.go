package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

// memStorage mimics the postgres store: owner checks run only for existing
// rows and nothing is written when the check fails.
type memStorage struct {
	mu        sync.Mutex
	members   map[domain.MemberId]domain.Member
	posts     map[domain.PostNo]domain.Post
	replies   map[domain.ReplyNo]domain.Reply
	nextPost  domain.PostNo
	nextReply domain.ReplyNo
	clock     time.Time
}

func newMemStorage() *memStorage {
	return &memStorage{
		members: map[domain.MemberId]domain.Member{},
		posts:   map[domain.PostNo]domain.Post{},
		replies: map[domain.ReplyNo]domain.Reply{},
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *memStorage) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memStorage) SaveMember(_ context.Context, member domain.Member) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.members[member.Id]; ok {
		return errors.Conflict("Member id already exists")
	}
	m.members[member.Id] = member
	return nil
}

func (m *memStorage) Member(_ context.Context, id domain.MemberId) (domain.Member, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[id]
	if !ok {
		return domain.Member{}, errors.NotFound("Member not found")
	}
	return member, nil
}

func (m *memStorage) CreatePost(_ context.Context, data domain.PostCreationData) (domain.PostNo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[data.Owner]
	if !ok {
		return -1, errors.NotFound("Member not found")
	}
	m.nextPost++
	m.posts[m.nextPost] = domain.Post{No: m.nextPost, OwnerId: data.Owner, Nickname: member.Nickname, Title: data.Title, Body: data.Body, WrittenAt: m.tick()}
	return m.nextPost, nil
}

func (m *memStorage) Post(_ context.Context, no domain.PostNo) (domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[no]
	if !ok {
		return domain.Post{}, errors.NotFound("Post not found")
	}
	return post, nil
}

func (m *memStorage) Posts(_ context.Context, limit, offset int) ([]domain.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.Post, 0, len(m.posts))
	for _, p := range m.posts {
		p.Body = ""
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].No > all[j].No })
	if offset >= len(all) {
		return []domain.Post{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (m *memStorage) CountPosts(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts), nil
}

func (m *memStorage) UpdatePost(_ context.Context, no domain.PostNo, data domain.PostUpdateData, check domain.OwnerCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[no]
	if !ok {
		return errors.NotFound("Post not found")
	}
	if err := check(post.OwnerId); err != nil {
		return err
	}
	post.Title, post.Body = data.Title, data.Body
	m.posts[no] = post
	return nil
}

func (m *memStorage) DeletePost(_ context.Context, no domain.PostNo, check domain.OwnerCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.posts[no]
	if !ok {
		return errors.NotFound("Post not found")
	}
	if err := check(post.OwnerId); err != nil {
		return err
	}
	for id, r := range m.replies {
		if r.PostNo == no {
			delete(m.replies, id)
		}
	}
	delete(m.posts, no)
	return nil
}

func (m *memStorage) CreateReply(_ context.Context, data domain.ReplyCreationData) (domain.ReplyNo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[data.PostNo]; !ok {
		return -1, errors.NotFound("Post not found")
	}
	member, ok := m.members[data.Owner]
	if !ok {
		return -1, errors.NotFound("Member not found")
	}
	m.nextReply++
	m.replies[m.nextReply] = domain.Reply{No: m.nextReply, PostNo: data.PostNo, OwnerId: data.Owner, Nickname: member.Nickname, Body: data.Body, RepliedAt: m.tick()}
	return m.nextReply, nil
}

func (m *memStorage) Replies(_ context.Context, postNo domain.PostNo) ([]domain.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Reply{}
	for _, r := range m.replies {
		if r.PostNo == postNo {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].No < out[j].No })
	return out, nil
}

func (m *memStorage) ownedReply(postNo domain.PostNo, no domain.ReplyNo, check domain.OwnerCheck) (domain.Reply, error) {
	r, ok := m.replies[no]
	if !ok || r.PostNo != postNo {
		return domain.Reply{}, errors.NotFound("Reply not found")
	}
	if err := check(r.OwnerId); err != nil {
		return domain.Reply{}, err
	}
	return r, nil
}

func (m *memStorage) UpdateReply(_ context.Context, postNo domain.PostNo, no domain.ReplyNo, body string, check domain.OwnerCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, err := m.ownedReply(postNo, no, check)
	if err != nil {
		return err
	}
	r.Body = body
	m.replies[no] = r
	return nil
}

func (m *memStorage) DeleteReply(_ context.Context, postNo domain.PostNo, no domain.ReplyNo, check domain.OwnerCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.ownedReply(postNo, no, check); err != nil {
		return err
	}
	delete(m.replies, no)
	return nil
}
