// Package ledgerservice exposes ledger operations on wire-friendly types.
//
// The service parses amounts and canonicalizes addresses, then drives the
// ledger state machine with the clean values.
package ledgerservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/pkg/addresspkg"
)

//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice

// Ledger is the state machine the service drives.
type Ledger interface {
	Deposit(ctx context.Context, account string, amount decimal.Decimal, description string) (domain.EntryResult, error)
	Withdraw(ctx context.Context, account string, amount decimal.Decimal, description string) (domain.EntryResult, error)
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal, description string) (domain.TransferResult, error)
	EmergencyWithdraw(ctx context.Context, account string) (domain.EmergencyWithdrawResult, error)
	Balance(ctx context.Context, account string) (decimal.Decimal, error)
	AccountSummary(ctx context.Context, account string) (domain.Summary, error)
	Transaction(ctx context.Context, index int64) (domain.Transaction, error)
	AccountTransaction(ctx context.Context, account string, index int64) (domain.Transaction, error)
	TotalTransactions(ctx context.Context) int64
	VaultBalance(ctx context.Context) decimal.Decimal
}

// Service coordinates ledger operations.
type Service struct {
	ledger Ledger
}

// New returns a ledger service.
func New(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

func parseAddress(ctx context.Context, s string) (string, error) {
	addr, ok := addresspkg.Normalize(s)
	if !ok {
		zerolog.Ctx(ctx).Error().Str("address", s).Msg("malformed account address")
		return "", domain.ErrInvalidAddress
	}

	return addr, nil
}

func parseAmount(ctx context.Context, s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}

	return amount, nil
}

// Deposit credits the amount to the account.
func (s *Service) Deposit(ctx context.Context, account, amount, description string) (domain.EntryResult, error) {
	l := zerolog.Ctx(ctx)

	addr, err := parseAddress(ctx, account)
	if err != nil {
		return domain.EntryResult{}, err
	}

	value, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.EntryResult{}, err
	}

	res, err := s.ledger.Deposit(ctx, addr, value, description)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.EntryResult{}, err
	}

	return res, nil
}

// Withdraw debits the amount from the account and releases it to the
// account's holder.
func (s *Service) Withdraw(ctx context.Context, account, amount, description string) (domain.EntryResult, error) {
	l := zerolog.Ctx(ctx)

	addr, err := parseAddress(ctx, account)
	if err != nil {
		return domain.EntryResult{}, err
	}

	value, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.EntryResult{}, err
	}

	res, err := s.ledger.Withdraw(ctx, addr, value, description)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.EntryResult{}, err
	}

	return res, nil
}

// Transfer moves the amount from one account to another.
func (s *Service) Transfer(ctx context.Context, from, to, amount, description string) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	fromAddr, err := parseAddress(ctx, from)
	if err != nil {
		return domain.TransferResult{}, err
	}

	toAddr, err := parseAddress(ctx, to)
	if err != nil {
		return domain.TransferResult{}, domain.ErrInvalidRecipient
	}

	value, err := parseAmount(ctx, amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	res, err := s.ledger.Transfer(ctx, fromAddr, toAddr, value, description)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransferResult{}, err
	}

	return res, nil
}

// EmergencyWithdraw drains the account's full balance to its holder.
func (s *Service) EmergencyWithdraw(ctx context.Context, account string) (domain.EmergencyWithdrawResult, error) {
	l := zerolog.Ctx(ctx)

	addr, err := parseAddress(ctx, account)
	if err != nil {
		return domain.EmergencyWithdrawResult{}, err
	}

	res, err := s.ledger.EmergencyWithdraw(ctx, addr)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.EmergencyWithdrawResult{}, err
	}

	return res, nil
}

// Balance returns the account's current balance.
func (s *Service) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	addr, err := parseAddress(ctx, account)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return s.ledger.Balance(ctx, addr)
}

// AccountSummary returns the account snapshot.
func (s *Service) AccountSummary(ctx context.Context, account string) (domain.Summary, error) {
	addr, err := parseAddress(ctx, account)
	if err != nil {
		return domain.Summary{}, err
	}

	return s.ledger.AccountSummary(ctx, addr)
}

// Transaction returns the log entry at the given global index.
func (s *Service) Transaction(ctx context.Context, index int64) (domain.Transaction, error) {
	tx, err := s.ledger.Transaction(ctx, index)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("index", index).Send()
		return domain.Transaction{}, err
	}

	return tx, nil
}

// AccountTransaction resolves an index into the account's history to the
// referenced log entry.
func (s *Service) AccountTransaction(ctx context.Context, account string, index int64) (domain.Transaction, error) {
	addr, err := parseAddress(ctx, account)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx, err := s.ledger.AccountTransaction(ctx, addr, index)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("index", index).Send()
		return domain.Transaction{}, err
	}

	return tx, nil
}

// Stats reports the size of the log and the total value held.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return domain.Stats{
		TotalTransactions: s.ledger.TotalTransactions(ctx),
		VaultBalance:      s.ledger.VaultBalance(ctx),
	}, nil
}
