package storage

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"baniya/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestGetFundUntouchedUser(t *testing.T) {
	repo := newTestRepo(t)

	fund, err := repo.GetFund(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get fund: %v", err)
	}
	if fund.TotalSaved != 0 || fund.Transactions != 0 {
		t.Fatalf("expected zero record, got %+v", fund)
	}
	if fund.LastUpdated == "" {
		t.Fatal("expected a timestamp on the zero record")
	}

	// Reading must not create a row.
	var again core.Fund
	again, err = repo.GetFund(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.Transactions != 0 {
		t.Fatalf("get created state: %+v", again)
	}
}

func TestAddFundAccumulates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.AddFund(ctx, "demo", 100.50)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if first.TotalSaved != 100.50 || first.Transactions != 1 {
		t.Fatalf("after first add: %+v", first)
	}

	second, err := repo.AddFund(ctx, "demo", 50.25)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if math.Abs(second.TotalSaved-150.75) > 1e-9 {
		t.Fatalf("expected total 150.75, got %v", second.TotalSaved)
	}
	if second.Transactions != 2 {
		t.Fatalf("expected 2 transactions, got %d", second.Transactions)
	}

	// Users are isolated.
	other, err := repo.GetFund(ctx, "someone-else")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if other.Transactions != 0 {
		t.Fatalf("other user affected: %+v", other)
	}

	stored, err := repo.GetFund(ctx, "demo")
	if err != nil {
		t.Fatalf("get demo: %v", err)
	}
	if stored.Transactions != 2 {
		t.Fatalf("persisted record wrong: %+v", stored)
	}
}

func TestRecordAndListDeposits(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	when := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	if _, err := repo.RecordDeposit(ctx, core.Deposit{User: "demo", Amount: 100, DepositedAt: when}); err != nil {
		t.Fatalf("record first: %v", err)
	}
	id, err := repo.RecordDeposit(ctx, core.Deposit{User: "demo", Amount: 250.5, DepositedAt: when.Add(time.Hour)})
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero insert id")
	}

	deposits, err := repo.ListDeposits(ctx, "demo")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(deposits) != 2 {
		t.Fatalf("expected 2 deposits, got %d", len(deposits))
	}
	// Newest first.
	if deposits[0].Amount != 250.5 || deposits[1].Amount != 100 {
		t.Fatalf("unexpected order: %+v", deposits)
	}
	if !deposits[1].DepositedAt.Equal(when) {
		t.Fatalf("timestamp mangled: %v", deposits[1].DepositedAt)
	}

	empty, err := repo.ListDeposits(ctx, "other")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no deposits for other user, got %d", len(empty))
	}
}

func TestRecordDepositValidates(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.RecordDeposit(context.Background(), core.Deposit{User: "", Amount: 10}); err == nil {
		t.Fatal("expected error for empty user")
	}
	if _, err := repo.RecordDeposit(context.Background(), core.Deposit{User: "demo", Amount: -1}); err == nil {
		t.Fatal("expected error for negative amount")
	}
}
