package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
)

// SaveMember inserts a new member. A taken id is a conflict.
func (s *Storage) SaveMember(ctx context.Context, member domain.Member) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO member (id, password, nickname) VALUES ($1, $2, $3)",
		member.Id, member.PassHash, member.Nickname)
	if err != nil {
		if pqCode(err) == uniqueViolation {
			return internal_errors.Conflict("Member id already exists")
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func (s *Storage) Member(ctx context.Context, id domain.MemberId) (domain.Member, error) {
	var member domain.Member
	err := s.db.QueryRowContext(ctx,
		"SELECT id, password, nickname FROM member WHERE id = $1", id).
		Scan(&member.Id, &member.PassHash, &member.Nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Member{}, internal_errors.NotFound("Member not found")
		}
		return domain.Member{}, fmt.Errorf("failed to query member: %w", err)
	}
	return member, nil
}
