package domain

import "github.com/shopspring/decimal"

// Event is a ledger notification consumed by external observers.
type Event interface {
	EventName() string
}

// BalanceChanged reports a balance mutation. Delta is negative when value
// left the account.
type BalanceChanged struct {
	Account    string          `json:"account"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Delta      decimal.Decimal `json:"delta"`
}

// EventName returns the wire name of the notification.
func (BalanceChanged) EventName() string { return "balance_changed" }

// TransactionRecorded reports a new entry of the transaction log.
type TransactionRecorded struct {
	Transaction Transaction `json:"transaction"`
}

// EventName returns the wire name of the notification.
func (TransactionRecorded) EventName() string { return "transaction_recorded" }
