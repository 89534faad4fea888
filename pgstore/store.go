// Package pgstore loads converted questions into a PostgreSQL table, one
// row per question, as an alternative tabular sink to CSV files.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsawler/giftcsv/model"
)

// DefaultTable is the table used when none is configured.
const DefaultTable = "quiz_questions"

var columns = []string{
	"source", "position", "question_id", "category", "text", "answers", "correct_answer",
}

// DB is the subset of *pgxpool.Pool used by Store.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store writes questions to a single table.
type Store struct {
	db    DB
	table pgx.Identifier
}

// New creates a store over db. table may be schema-qualified ("quiz.questions");
// an empty name selects DefaultTable.
func New(db DB, table string) *Store {
	if strings.TrimSpace(table) == "" {
		table = DefaultTable
	}
	return &Store{
		db:    db,
		table: pgx.Identifier(strings.Split(table, ".")),
	}
}

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the questions table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	source         TEXT    NOT NULL,
	position       INTEGER NOT NULL,
	question_id    TEXT    NOT NULL DEFAULT '',
	category       TEXT    NOT NULL,
	text           TEXT    NOT NULL,
	answers        TEXT[]  NOT NULL,
	correct_answer TEXT    NOT NULL,
	PRIMARY KEY (source, position)
)`, s.table.Sanitize())

	if _, err := s.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("pgstore: create table: %w", err)
	}
	return nil
}

// Replace swaps the rows stored for source with questions in one
// transaction. Positions follow source order starting at 0.
func (s *Store) Replace(ctx context.Context, source string, questions []model.Question) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("pgstore: begin: %w", err)
	}

	n, err := s.replace(ctx, tx, source, questions)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("pgstore: rollback: %w", rbErr))
		}
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("pgstore: commit: %w", err)
	}
	return n, nil
}

func (s *Store) replace(ctx context.Context, tx pgx.Tx, source string, questions []model.Question) (int64, error) {
	del := fmt.Sprintf("DELETE FROM %s WHERE source = $1", s.table.Sanitize())
	if _, err := tx.Exec(ctx, del, source); err != nil {
		return 0, fmt.Errorf("pgstore: delete previous rows: %w", err)
	}

	rows := make([][]any, len(questions))
	for i, q := range questions {
		rows[i] = []any{source, i, q.ID, q.Category, q.Text, q.Answers, q.CorrectAnswer}
	}

	n, err := tx.CopyFrom(ctx, s.table, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("pgstore: copy questions: %w", err)
	}
	return n, nil
}
