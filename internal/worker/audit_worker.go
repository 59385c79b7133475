package worker

import (
	"context"
	"fmt"
	"log/slog"

	"baniya/internal/amqp"
	"baniya/internal/core"
	"baniya/internal/storage"
)

// AuditWorker records published fund deposits into the deposits table,
// giving the ledger an append-only history next to its running totals.
type AuditWorker struct {
	storage *storage.SQLiteRepository
}

func NewAuditWorker(storage *storage.SQLiteRepository) *AuditWorker {
	return &AuditWorker{storage: storage}
}

// HandleDepositMessage processes a single deposit message from AMQP
func (w *AuditWorker) HandleDepositMessage(ctx context.Context, msg *amqp.DepositMessage) error {
	deposit := core.Deposit{
		User:        msg.User,
		Amount:      msg.Amount,
		DepositedAt: msg.Timestamp,
	}

	id, err := w.storage.RecordDeposit(ctx, deposit)
	if err != nil {
		return fmt.Errorf("record deposit: %w", err)
	}

	slog.InfoContext(ctx, "Deposit recorded",
		"id", id,
		"user", deposit.User,
		"amount", deposit.Amount)

	return nil
}
