// Package journal persists a local record of deposit attempts in SQLite.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	_ "github.com/glebarez/go-sqlite"
)

// Attempt is one build/send sequence and its terminal outcome.
type Attempt struct {
	ID        int64
	CreatedAt time.Time
	Wallet    string
	Address   string
	Amount    btcutil.Amount
	Fee       btcutil.Amount
	TxID      string
	Outcome   string
	Message   string
}

// Terminal outcomes of an attempt.
const (
	OutcomeConfirmed   = "confirmed"
	OutcomeBuildFailed = "build_failed"
	OutcomeSendFailed  = "send_failed"
	OutcomeCancelled   = "cancelled"
)

// Journal is a SQLite-backed attempt log.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal at the given path.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("journal path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set pragma %s: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS deposit_attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at INTEGER NOT NULL,
			wallet TEXT NOT NULL,
			address TEXT NOT NULL,
			amount_sat INTEGER NOT NULL,
			fee_sat INTEGER NOT NULL,
			tx_id TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create deposit_attempts table: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends one finished attempt.
func (j *Journal) Record(ctx context.Context, a Attempt) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO deposit_attempts (created_at, wallet, address, amount_sat, fee_sat, tx_id, outcome, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`, createdAt.Unix(), a.Wallet, a.Address, int64(a.Amount), int64(a.Fee), a.TxID, a.Outcome, a.Message)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns the newest attempts, most recent first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, created_at, wallet, address, amount_sat, fee_sat, tx_id, outcome, message
		FROM deposit_attempts ORDER BY id DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt, amount, fee int64
		if err := rows.Scan(&a.ID, &createdAt, &a.Wallet, &a.Address, &amount, &fee, &a.TxID, &a.Outcome, &a.Message); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.CreatedAt = time.Unix(createdAt, 0)
		a.Amount = btcutil.Amount(amount)
		a.Fee = btcutil.Amount(fee)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.db.Close()
}
