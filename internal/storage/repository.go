package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"baniya/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// GetFund returns the fund record for the given user. A user with no
// deposits gets a zero-valued record stamped with the current time; no row
// is created.
func (r *SQLiteRepository) GetFund(ctx context.Context, user string) (core.Fund, error) {
	var fund core.Fund
	err := r.db.QueryRowContext(ctx,
		`SELECT total_saved, transactions, last_updated FROM funds WHERE user = ?`, user,
	).Scan(&fund.TotalSaved, &fund.Transactions, &fund.LastUpdated)
	if errors.Is(err, sql.ErrNoRows) {
		return core.ZeroFund(time.Now()), nil
	}
	if err != nil {
		return core.Fund{}, fmt.Errorf("get fund for %s: %w", user, err)
	}
	return fund, nil
}

// AddFund adds amount to the user's fund and bumps the transaction count.
// The whole increment is a single upsert statement, so concurrent callers
// serialize at the database rather than racing a read-modify-write cycle.
func (r *SQLiteRepository) AddFund(ctx context.Context, user string, amount float64) (core.Fund, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	var fund core.Fund
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO funds (user, total_saved, transactions, last_updated)
		 VALUES (?, ?, 1, ?)
		 ON CONFLICT(user) DO UPDATE SET
		     total_saved = total_saved + excluded.total_saved,
		     transactions = transactions + 1,
		     last_updated = excluded.last_updated
		 RETURNING total_saved, transactions, last_updated`,
		user, amount, now,
	).Scan(&fund.TotalSaved, &fund.Transactions, &fund.LastUpdated)
	if err != nil {
		return core.Fund{}, fmt.Errorf("add fund for %s: %w", user, err)
	}

	slog.InfoContext(ctx, "Fund updated",
		"user", user,
		"amount", amount,
		"total_saved", fund.TotalSaved,
		"transactions", fund.Transactions)

	return fund, nil
}

// RecordDeposit appends one row to the deposit audit trail.
func (r *SQLiteRepository) RecordDeposit(ctx context.Context, d core.Deposit) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO deposits (user, amount, deposited_at) VALUES (?, ?, ?)`,
		d.User, d.Amount, d.DepositedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("record deposit for %s: %w", d.User, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("deposit insert id: %w", err)
	}
	return id, nil
}

// ListDeposits returns the user's deposits, newest first.
func (r *SQLiteRepository) ListDeposits(ctx context.Context, user string) ([]core.Deposit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user, amount, deposited_at FROM deposits WHERE user = ? ORDER BY id DESC`, user,
	)
	if err != nil {
		return nil, fmt.Errorf("list deposits for %s: %w", user, err)
	}
	defer rows.Close()

	deposits := make([]core.Deposit, 0)
	for rows.Next() {
		var (
			d  core.Deposit
			at string
		)
		if err := rows.Scan(&d.ID, &d.User, &d.Amount, &at); err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			d.DepositedAt = t
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposits: %w", err)
	}
	return deposits, nil
}
