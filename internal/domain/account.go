// Package domain provides definitions of all ledger entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a zero, negative or unparsable amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account balance does not cover the requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidRecipient indicates a transfer to the zero address or back to the sender.
	ErrInvalidRecipient = errors.New("invalid recipient")
	// ErrNoBalance indicates an emergency withdrawal from an account holding nothing.
	ErrNoBalance = errors.New("no balance to release")
	// ErrIndexOutOfRange indicates a transaction lookup beyond the recorded history.
	ErrIndexOutOfRange = errors.New("transaction index out of range")
	// ErrInvalidAddress indicates a malformed account address.
	ErrInvalidAddress = errors.New("invalid account address")
)

// Account holds the ledger state of a single address.
//
// Accounts are materialized lazily with zero values on first reference and
// are never deleted. TxIndices references entries of the global transaction
// log in chronological order; every referenced entry names the account as
// sender or receiver, and the slice length is the account's transaction
// count.
type Account struct {
	Address          string          `json:"address"`
	Balance          decimal.Decimal `json:"balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TxIndices        []int64         `json:"-"`
}

// Summary is the externally visible snapshot of an account.
type Summary struct {
	Address          string          `json:"address"`
	Balance          decimal.Decimal `json:"balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	TransactionCount int             `json:"transaction_count"`
}

// Stats aggregates ledger-wide counters.
type Stats struct {
	TotalTransactions int64           `json:"total_transactions"`
	VaultBalance      decimal.Decimal `json:"vault_balance"`
}
