package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

// CreateReply adds a reply under an existing post. The parent row is share
// locked so a concurrent post deletion cannot orphan the reply.
func (s *Storage) CreateReply(ctx context.Context, data domain.ReplyCreationData) (domain.ReplyNo, error) {
	var no domain.ReplyNo
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM board_text WHERE no = $1 FOR SHARE", data.PostNo).Scan(&exists)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Post not found")
			}
			return fmt.Errorf("failed to lock post: %w", err)
		}

		err = tx.QueryRowContext(ctx,
			"INSERT INTO board_reply (text_no, id, reply) VALUES ($1, $2, $3) RETURNING no",
			data.PostNo, data.Owner, data.Body).Scan(&no)
		if err != nil {
			if pqCode(err) == foreignKeyViolation {
				return internal_errors.NotFound("Member not found")
			}
			return fmt.Errorf("failed to insert reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return no, nil
}

// Replies lists the replies of a post, oldest first. An unknown post has none.
func (s *Storage) Replies(ctx context.Context, postNo domain.PostNo) ([]domain.Reply, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT board_reply.no, board_reply.text_no, board_reply.id, member.nickname, reply, rep_date
	FROM board_reply
	JOIN member ON member.id = board_reply.id
	WHERE text_no = $1
	ORDER BY board_reply.no ASC`, postNo)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.No, &r.PostNo, &r.OwnerId, &r.Nickname, &r.Body, &r.RepliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate replies: %w", err)
	}
	return replies, nil
}

const lockReplyOwner = "SELECT id FROM board_reply WHERE no = $1 AND text_no = $2 FOR UPDATE"

func (s *Storage) UpdateReply(ctx context.Context, postNo domain.PostNo, no domain.ReplyNo, body string, check domain.OwnerCheck) error {
	return s.withOwnedRow(ctx, "Reply not found", check, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "UPDATE board_reply SET reply = $1 WHERE no = $2", body, no); err != nil {
			return fmt.Errorf("failed to update reply: %w", err)
		}
		return nil
	}, lockReplyOwner, no, postNo)
}

func (s *Storage) DeleteReply(ctx context.Context, postNo domain.PostNo, no domain.ReplyNo, check domain.OwnerCheck) error {
	return s.withOwnedRow(ctx, "Reply not found", check, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM board_reply WHERE no = $1", no); err != nil {
			return fmt.Errorf("failed to delete reply: %w", err)
		}
		return nil
	}, lockReplyOwner, no, postNo)
}
