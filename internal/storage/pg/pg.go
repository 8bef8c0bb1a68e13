package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tglkwon/api.board.aquaco.work/internal/config"
	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	internal_errors "github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"github.com/tglkwon/api.board.aquaco.work/internal/logger"
)

// Postgres error codes the store translates into domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Public.Pg.Host, "dbname", cfg.Public.Pg.Dbname)
	db, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db}, nil
}

func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}
	if n := cfg.Public.Pg.MaxOpenConns; n > 0 {
		db.SetMaxOpenConns(n)
		db.SetMaxIdleConns(n)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return db, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// withTx runs fn in a transaction, committing on success.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // ignored after commit

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// withOwnedRow locks the row returned by lockQuery (which must select the
// owner id), hands the owner to check and only then runs mutate. All three
// steps share one transaction so the owner cannot change in between.
func (s *Storage) withOwnedRow(ctx context.Context, notFound string, check domain.OwnerCheck, mutate func(tx *sql.Tx) error, lockQuery string, args ...any) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var owner domain.MemberId
		err := tx.QueryRowContext(ctx, lockQuery, args...).Scan(&owner)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound(notFound)
			}
			return fmt.Errorf("failed to lock row: %w", err)
		}
		if err := check(owner); err != nil {
			return err
		}
		return mutate(tx)
	})
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}
