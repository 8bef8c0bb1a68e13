package pg

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

func TestCreateAndGetPost(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	mustMember(t, "alice")

	no, err := storage.CreatePost(ctx, domain.PostCreationData{Owner: "alice", Title: "hello", Body: "first post"})
	require.NoError(t, err)
	assert.Greater(t, no, int64(0))

	post, err := storage.Post(ctx, no)
	require.NoError(t, err)
	assert.Equal(t, no, post.No)
	assert.Equal(t, "alice", post.OwnerId)
	assert.Equal(t, "nick-alice", post.Nickname)
	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, "first post", post.Body)
	assert.False(t, post.WrittenAt.IsZero())

	_, err = storage.Post(ctx, no+100)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestCreatePostUnknownOwner(t *testing.T) {
	resetDB(t)

	_, err := storage.CreatePost(context.Background(), domain.PostCreationData{Owner: "ghost", Title: "t", Body: "b"})
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestPostsPagination(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	mustMember(t, "alice")

	nos := make([]domain.PostNo, 15)
	for i := range nos {
		nos[i] = mustPost(t, "alice", fmt.Sprintf("post %d", i+1))
	}

	total, err := storage.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	first, err := storage.Posts(ctx, domain.PostsPerPage, 0)
	require.NoError(t, err)
	require.Len(t, first, 10)
	assert.Equal(t, nos[14], first[0].No, "newest post comes first")
	assert.Equal(t, nos[5], first[9].No)

	second, err := storage.Posts(ctx, domain.PostsPerPage, domain.PostsPerPage)
	require.NoError(t, err)
	require.Len(t, second, 5)
	// the five oldest posts, still newest first
	for i, post := range second {
		assert.Equal(t, nos[4-i], post.No)
		assert.Equal(t, "nick-alice", post.Nickname)
		assert.Empty(t, post.Body, "listing does not carry bodies")
	}

	third, err := storage.Posts(ctx, domain.PostsPerPage, 2*domain.PostsPerPage)
	require.NoError(t, err)
	assert.Empty(t, third)
	assert.NotNil(t, third)
}

func TestPostsNewestFirstByTimestamp(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	mustMember(t, "alice")
	for i := 0; i < 3; i++ {
		mustPost(t, "alice", fmt.Sprintf("p%d", i))
	}

	posts, err := storage.Posts(ctx, domain.PostsPerPage, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.Greater(t, posts[i-1].No, posts[i].No)
		assert.False(t, posts[i-1].WrittenAt.Before(posts[i].WrittenAt))
	}
}

func TestUpdatePost(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	mustMember(t, "alice")
	mustMember(t, "bob")
	no := mustPost(t, "alice", "first draft")

	t.Run("not owner", func(t *testing.T) {
		err := storage.UpdatePost(ctx, no, domain.PostUpdateData{Title: "hijacked", Body: "x"}, ownerIs("bob"))
		require.Error(t, err)
		assert.True(t, internal_errors.IsForbidden(err))

		post, err := storage.Post(ctx, no)
		require.NoError(t, err)
		assert.Equal(t, "first draft", post.Title, "forbidden update must not write")
	})

	t.Run("owner", func(t *testing.T) {
		err := storage.UpdatePost(ctx, no, domain.PostUpdateData{Title: "edited", Body: "new body"}, ownerIs("alice"))
		require.NoError(t, err)

		post, err := storage.Post(ctx, no)
		require.NoError(t, err)
		assert.Equal(t, "edited", post.Title)
		assert.Equal(t, "new body", post.Body)
		assert.Equal(t, "alice", post.OwnerId)
	})

	t.Run("missing post", func(t *testing.T) {
		called := false
		check := func(domain.MemberId) error { called = true; return nil }
		err := storage.UpdatePost(ctx, no+100, domain.PostUpdateData{Title: "t", Body: "b"}, check)
		assert.True(t, internal_errors.IsNotFound(err))
		assert.False(t, called, "owner check runs only for existing rows")
	})
}

func TestDeletePostCascadesReplies(t *testing.T) {
	resetDB(t)
	ctx := context.Background()
	mustMember(t, "alice")
	mustMember(t, "bob")
	no := mustPost(t, "alice", "doomed")
	other := mustPost(t, "alice", "survivor")
	mustReply(t, no, "alice", "r1")
	mustReply(t, no, "bob", "r2")
	mustReply(t, other, "bob", "stays")

	err := storage.DeletePost(ctx, no, ownerIs("bob"))
	assert.True(t, internal_errors.IsForbidden(err))
	replies, err := storage.Replies(ctx, no)
	require.NoError(t, err)
	assert.Len(t, replies, 2, "forbidden delete must not touch replies")

	require.NoError(t, storage.DeletePost(ctx, no, ownerIs("alice")))

	_, err = storage.Post(ctx, no)
	assert.True(t, internal_errors.IsNotFound(err))

	replies, err = storage.Replies(ctx, no)
	require.NoError(t, err)
	assert.Empty(t, replies)

	replies, err = storage.Replies(ctx, other)
	require.NoError(t, err)
	assert.Len(t, replies, 1)

	err = storage.DeletePost(ctx, no, ownerIs("alice"))
	assert.True(t, internal_errors.IsNotFound(err))
}
