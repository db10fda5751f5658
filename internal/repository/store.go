package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skillmatrix/internal/database"
	"skillmatrix/internal/domain/skill"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresStore implements skill.Store on top of database.DB. Inside
// WithinTx the repositories share one transaction.
type PostgresStore struct {
	db database.DB
	q  database.Querier
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

func (s *PostgresStore) People() skill.PersonRepository {
	return NewPostgresPersonRepository(s.q)
}

func (s *PostgresStore) Skills() skill.SkillRepository {
	return NewPostgresSkillRepository(s.q)
}

func (s *PostgresStore) PersonSkills() skill.PersonSkillRepository {
	return NewPostgresPersonSkillRepository(s.q)
}

func (s *PostgresStore) Verifications() skill.VerificationRepository {
	return NewPostgresVerificationRepository(s.q)
}

func (s *PostgresStore) WithinTx(ctx context.Context, fn func(skill.Store) error) error {
	if s.db == nil {
		// already bound to a transaction
		return fn(s)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(&PostgresStore{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.Ping(ctx)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

// translate maps driver errors onto the store sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case isNoRows(err):
		return skill.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %v", skill.ErrDuplicate, err)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", skill.ErrNotFound, err)
	default:
		return err
	}
}

func affectedOrNotFound(n int64, err error) error {
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return skill.ErrNotFound
	}
	return nil
}
