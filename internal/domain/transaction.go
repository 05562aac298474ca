package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind partitions transaction log entries by effect.
type Kind string

// All transaction kinds recorded in the log.
const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindTransfer   Kind = "transfer"
)

// Transaction is one immutable entry of the append-only log.
//
// From is empty for deposits and To is empty for withdrawals. Timestamps
// never decrease along the log.
type Transaction struct {
	Index       int64           `json:"index"`
	From        string          `json:"from,omitempty"`
	To          string          `json:"to,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	Description string          `json:"description"`
	Kind        Kind            `json:"kind"`
}

// EntryResult is the result of a committed deposit or withdrawal.
type EntryResult struct {
	Account Summary     `json:"account"`
	Entry   Transaction `json:"entry"`
}

// TransferResult is the result of a committed transfer.
//
// The log records a transfer once per participant, so the result carries
// both entries: FromEntry is indexed into the sender's history and ToEntry
// into the receiver's.
type TransferResult struct {
	FromAccount Summary     `json:"from_account"`
	ToAccount   Summary     `json:"to_account"`
	FromEntry   Transaction `json:"from_entry"`
	ToEntry     Transaction `json:"to_entry"`
}

// EmergencyWithdrawResult reports the amount released when an account is
// drained through the escape hatch.
type EmergencyWithdrawResult struct {
	Account  Summary         `json:"account"`
	Released decimal.Decimal `json:"released"`
}
