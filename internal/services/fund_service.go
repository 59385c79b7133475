package services

import (
	"context"
	"fmt"
	"log/slog"

	"baniya/internal/amqp"
	"baniya/internal/core"
	"baniya/internal/storage"
)

// FundService orchestrates ledger operations across SQLite and AMQP
type FundService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewFundService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *FundService {
	return &FundService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// GetFund returns the user's fund record, zero-valued if untouched.
func (s *FundService) GetFund(ctx context.Context, user string) (core.Fund, error) {
	return s.storage.GetFund(ctx, user)
}

// AddFund increments the user's fund atomically and publishes a deposit
// event. Publish failures are logged, not surfaced: the ledger write is the
// source of truth and has already succeeded.
func (s *FundService) AddFund(ctx context.Context, user string, amount float64) (core.Fund, error) {
	fund, err := s.storage.AddFund(ctx, user, amount)
	if err != nil {
		return core.Fund{}, fmt.Errorf("add fund: %w", err)
	}

	if s.amqpClient != nil {
		if err := s.amqpClient.PublishDeposit(ctx, user, amount); err != nil {
			slog.ErrorContext(ctx, "Failed to publish deposit message",
				"user", user, "amount", amount, "error", err)
		}
	}

	return fund, nil
}

// ListDeposits returns the user's recorded deposit history, newest first.
func (s *FundService) ListDeposits(ctx context.Context, user string) ([]core.Deposit, error) {
	return s.storage.ListDeposits(ctx, user)
}
