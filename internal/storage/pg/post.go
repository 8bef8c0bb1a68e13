package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

func (s *Storage) CreatePost(ctx context.Context, data domain.PostCreationData) (domain.PostNo, error) {
	var no domain.PostNo
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO board_text (id, title, body) VALUES ($1, $2, $3) RETURNING no",
		data.Owner, data.Title, data.Body).Scan(&no)
	if err != nil {
		if pqCode(err) == foreignKeyViolation {
			return -1, internal_errors.NotFound("Member not found")
		}
		return -1, fmt.Errorf("failed to insert post: %w", err)
	}
	return no, nil
}

func (s *Storage) Post(ctx context.Context, no domain.PostNo) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx, `
	SELECT board_text.no, board_text.id, member.nickname, title, body, wri_date
	FROM board_text
	JOIN member ON member.id = board_text.id
	WHERE board_text.no = $1`, no).
		Scan(&post.No, &post.OwnerId, &post.Nickname, &post.Title, &post.Body, &post.WrittenAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

// Posts returns a slice of the board, newest first. Body is not loaded.
func (s *Storage) Posts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT board_text.no, board_text.id, member.nickname, title, wri_date
	FROM board_text
	JOIN member ON member.id = board_text.id
	ORDER BY board_text.no DESC
	LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.No, &post.OwnerId, &post.Nickname, &post.Title, &post.WrittenAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (s *Storage) CountPosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT count(no) FROM board_text").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

func (s *Storage) UpdatePost(ctx context.Context, no domain.PostNo, data domain.PostUpdateData, check domain.OwnerCheck) error {
	return s.withOwnedRow(ctx, "Post not found", check, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"UPDATE board_text SET title = $1, body = $2 WHERE no = $3",
			data.Title, data.Body, no)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}
		return nil
	}, "SELECT id FROM board_text WHERE no = $1 FOR UPDATE", no)
}

// DeletePost removes the post's replies and then the post, in one transaction.
func (s *Storage) DeletePost(ctx context.Context, no domain.PostNo, check domain.OwnerCheck) error {
	return s.withOwnedRow(ctx, "Post not found", check, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM board_reply WHERE text_no = $1", no); err != nil {
			return fmt.Errorf("failed to delete replies: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM board_text WHERE no = $1", no); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	}, "SELECT id FROM board_text WHERE no = $1 FOR UPDATE", no)
}
