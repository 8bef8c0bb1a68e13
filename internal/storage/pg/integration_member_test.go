package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

func TestSaveMember(t *testing.T) {
	resetDB(t)
	ctx := context.Background()

	member := domain.Member{Id: "alice", PassHash: "$2a$11$hash", Nickname: "Alice"}
	require.NoError(t, storage.SaveMember(ctx, member))

	err := storage.SaveMember(ctx, domain.Member{Id: "alice", PassHash: "other", Nickname: "Impostor"})
	require.Error(t, err, "saving the same id twice should fail")
	assert.True(t, internal_errors.IsConflict(err), "expected conflict, got %v", err)

	got, err := storage.Member(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, member, got, "the first registration must be kept")
}

func TestMember(t *testing.T) {
	resetDB(t)
	mustMember(t, "bob")

	got, err := storage.Member(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Id)
	assert.Equal(t, "hash-bob", got.PassHash)
	assert.Equal(t, "nick-bob", got.Nickname)

	_, err = storage.Member(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}
