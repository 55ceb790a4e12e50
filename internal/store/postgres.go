package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// ErrNoDSN is returned when a Postgres sink is requested without a DSN.
var ErrNoDSN = errors.New("store: postgres DSN is empty")

const schema = `
	CREATE TABLE IF NOT EXISTS vanity_results (
		id              BIGSERIAL PRIMARY KEY,
		search_id       TEXT        NOT NULL,
		chain           TEXT        NOT NULL,
		address         TEXT        NOT NULL UNIQUE,
		secret          TEXT        NOT NULL,
		recovery_phrase TEXT,
		attempts        BIGINT      NOT NULL,
		elapsed_ms      BIGINT      NOT NULL,
		worker_id       INTEGER     NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

const insertResult = `
	INSERT INTO vanity_results (search_id, chain, address, secret, recovery_phrase, attempts, elapsed_ms, worker_id)
	VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
	ON CONFLICT (address) DO NOTHING`

// PostgresSink records results in the vanity_results table.
type PostgresSink struct {
	db     *sql.DB
	insert *sql.Stmt
	loc    string
}

// OpenPostgres connects to dsn, creates the results table if needed and
// prepares the insert statement.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSink, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, ErrNoDSN
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create vanity_results: %w", err)
	}

	stmt, err := db.PrepareContext(ctx, insertResult)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	return &PostgresSink{db: db, insert: stmt, loc: "postgres:vanity_results"}, nil
}

func (p *PostgresSink) Location() string { return p.loc }

// Save inserts result. A result whose address is already stored is ignored.
func (p *PostgresSink) Save(ctx context.Context, result generator.SearchResult) error {
	c := result.Candidate
	_, err := p.insert.ExecContext(ctx,
		result.SearchID,
		result.Chain.String(),
		c.Address,
		c.SecretMaterial,
		c.RecoveryPhrase,
		int64(result.TotalAttempts),
		result.Elapsed.Milliseconds(),
		result.WorkerID,
	)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.Address, err)
	}
	return nil
}

func (p *PostgresSink) Close() error {
	return errors.Join(p.insert.Close(), p.db.Close())
}
