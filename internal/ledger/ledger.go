// Package ledger implements the account ledger state machine.
//
// A single Ledger value owns all state: the account table, the append-only
// transaction log and the total value held. One reader/writer lock covers
// the whole of it, so every operation is a single atomic transition from one
// consistent state to the next; queries share the read side and never
// observe a partial update.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/pkg/addresspkg"
)

// Releaser hands withdrawn value over to the account's external holder.
// A non-nil error aborts the withdrawal with no state change.
type Releaser interface {
	Release(ctx context.Context, account string, amount decimal.Decimal) error
}

// ReleaserFunc adapts a function to the Releaser interface.
type ReleaserFunc func(ctx context.Context, account string, amount decimal.Decimal) error

// Release calls f.
func (f ReleaserFunc) Release(ctx context.Context, account string, amount decimal.Decimal) error {
	return f(ctx, account, amount)
}

// Ledger owns the account table and the transaction log.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	log      []domain.Transaction
	vault    decimal.Decimal
	lastTS   time.Time

	releaser Releaser
	logger   zerolog.Logger

	subMu sync.Mutex
	subs  map[*Subscription]struct{}
}

// New returns an empty ledger. Withdrawn value is handed to releaser.
func New(releaser Releaser, logger zerolog.Logger) *Ledger {
	return &Ledger{
		accounts: make(map[string]*domain.Account),
		releaser: releaser,
		logger:   logger,
		subs:     make(map[*Subscription]struct{}),
	}
}

// account returns the record for addr, materializing a zero-valued account
// on first reference. Callers must hold the write lock.
func (l *Ledger) account(addr string) *domain.Account {
	a, ok := l.accounts[addr]
	if !ok {
		a = &domain.Account{Address: addr}
		l.accounts[addr] = a
	}

	return a
}

// append stamps and stores a log entry and indexes it into the history of
// each holder. Timestamps are clamped so they never decrease along the log.
// Callers must hold the write lock.
func (l *Ledger) append(tx domain.Transaction, holders ...*domain.Account) domain.Transaction {
	now := time.Now().UTC()
	if now.Before(l.lastTS) {
		now = l.lastTS
	}

	l.lastTS = now

	tx.Index = int64(len(l.log))
	tx.Timestamp = now
	l.log = append(l.log, tx)

	for _, a := range holders {
		a.TxIndices = append(a.TxIndices, tx.Index)
	}

	return tx
}

func summarize(a *domain.Account) domain.Summary {
	return domain.Summary{
		Address:          a.Address,
		Balance:          a.Balance,
		TotalDeposits:    a.TotalDeposits,
		TotalWithdrawals: a.TotalWithdrawals,
		TransactionCount: len(a.TxIndices),
	}
}

// Deposit credits amount to the account and records a deposit entry.
func (l *Ledger) Deposit(ctx context.Context, account string, amount decimal.Decimal, description string) (domain.EntryResult, error) {
	if !amount.IsPositive() {
		return domain.EntryResult{}, domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.account(account)
	a.Balance = a.Balance.Add(amount)
	a.TotalDeposits = a.TotalDeposits.Add(amount)
	l.vault = l.vault.Add(amount)

	entry := l.append(domain.Transaction{
		To:          account,
		Amount:      amount,
		Description: description,
		Kind:        domain.KindDeposit,
	}, a)

	l.publish(domain.BalanceChanged{Account: account, NewBalance: a.Balance, Delta: amount})
	l.publish(domain.TransactionRecorded{Transaction: entry})

	return domain.EntryResult{Account: summarize(a), Entry: entry}, nil
}

// Withdraw debits amount from the account, hands it to the external holder
// and records a withdrawal entry. The release and the state update form one
// atomic step: a rejected release leaves the ledger untouched.
func (l *Ledger) Withdraw(ctx context.Context, account string, amount decimal.Decimal, description string) (domain.EntryResult, error) {
	if !amount.IsPositive() {
		return domain.EntryResult{}, domain.ErrInvalidAmount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.account(account)
	if a.Balance.LessThan(amount) {
		return domain.EntryResult{}, domain.ErrInsufficientBalance
	}

	if err := l.releaser.Release(ctx, account, amount); err != nil {
		l.logger.Error().Err(err).Str("account", account).Msg("value release rejected")
		return domain.EntryResult{}, err
	}

	a.Balance = a.Balance.Sub(amount)
	a.TotalWithdrawals = a.TotalWithdrawals.Add(amount)
	l.vault = l.vault.Sub(amount)

	entry := l.append(domain.Transaction{
		From:        account,
		Amount:      amount,
		Description: description,
		Kind:        domain.KindWithdrawal,
	}, a)

	l.publish(domain.BalanceChanged{Account: account, NewBalance: a.Balance, Delta: amount.Neg()})
	l.publish(domain.TransactionRecorded{Transaction: entry})

	return domain.EntryResult{Account: summarize(a), Entry: entry}, nil
}

// Transfer moves amount between two accounts.
//
// The log records the transfer once per participant: the sender and the
// receiver each index their own copy of the entry, so a committed transfer
// advances the global log by two. Observers still get a single recorded
// notification, carried by the sender-side entry.
func (l *Ledger) Transfer(ctx context.Context, from, to string, amount decimal.Decimal, description string) (domain.TransferResult, error) {
	if !amount.IsPositive() {
		return domain.TransferResult{}, domain.ErrInvalidAmount
	}

	if addresspkg.IsZero(to) || to == from {
		return domain.TransferResult{}, domain.ErrInvalidRecipient
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	sender := l.account(from)
	if sender.Balance.LessThan(amount) {
		return domain.TransferResult{}, domain.ErrInsufficientBalance
	}

	receiver := l.account(to)
	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)

	tx := domain.Transaction{
		From:        from,
		To:          to,
		Amount:      amount,
		Description: description,
		Kind:        domain.KindTransfer,
	}

	fromEntry := l.append(tx, sender)
	toEntry := l.append(tx, receiver)

	l.publish(domain.BalanceChanged{Account: from, NewBalance: sender.Balance, Delta: amount.Neg()})
	l.publish(domain.BalanceChanged{Account: to, NewBalance: receiver.Balance, Delta: amount})
	l.publish(domain.TransactionRecorded{Transaction: fromEntry})

	return domain.TransferResult{
		FromAccount: summarize(sender),
		ToAccount:   summarize(receiver),
		FromEntry:   fromEntry,
		ToEntry:     toEntry,
	}, nil
}

// EmergencyWithdraw drains the account's full balance to its external
// holder. The escape hatch bypasses the log: no entry is recorded and the
// withdrawal total stays untouched; only the balance notification fires.
func (l *Ledger) EmergencyWithdraw(ctx context.Context, account string) (domain.EmergencyWithdrawResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.account(account)
	if !a.Balance.IsPositive() {
		return domain.EmergencyWithdrawResult{}, domain.ErrNoBalance
	}

	released := a.Balance

	if err := l.releaser.Release(ctx, account, released); err != nil {
		l.logger.Error().Err(err).Str("account", account).Msg("value release rejected")
		return domain.EmergencyWithdrawResult{}, err
	}

	a.Balance = decimal.Zero
	l.vault = l.vault.Sub(released)

	l.publish(domain.BalanceChanged{Account: account, NewBalance: a.Balance, Delta: released.Neg()})

	return domain.EmergencyWithdrawResult{Account: summarize(a), Released: released}, nil
}

// Balance returns the current balance of the account. Unknown accounts hold
// zero.
func (l *Ledger) Balance(ctx context.Context, account string) (decimal.Decimal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if a, ok := l.accounts[account]; ok {
		return a.Balance, nil
	}

	return decimal.Zero, nil
}

// AccountSummary returns the account snapshot. Unknown accounts answer with
// zero values.
func (l *Ledger) AccountSummary(ctx context.Context, account string) (domain.Summary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if a, ok := l.accounts[account]; ok {
		return summarize(a), nil
	}

	return domain.Summary{Address: account}, nil
}

// Transaction returns the log entry at the given global index.
func (l *Ledger) Transaction(ctx context.Context, index int64) (domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.transaction(index)
}

func (l *Ledger) transaction(index int64) (domain.Transaction, error) {
	if index < 0 || index >= int64(len(l.log)) {
		return domain.Transaction{}, domain.ErrIndexOutOfRange
	}

	return l.log[index], nil
}

// AccountTransaction resolves an index into the account's own history to
// the referenced log entry.
func (l *Ledger) AccountTransaction(ctx context.Context, account string, index int64) (domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	a, ok := l.accounts[account]
	if !ok || index < 0 || index >= int64(len(a.TxIndices)) {
		return domain.Transaction{}, domain.ErrIndexOutOfRange
	}

	return l.transaction(a.TxIndices[index])
}

// TotalTransactions returns the length of the log.
func (l *Ledger) TotalTransactions(ctx context.Context) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return int64(len(l.log))
}

// VaultBalance returns the total value currently held by the ledger. It
// always equals the sum of all account balances.
func (l *Ledger) VaultBalance(ctx context.Context) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.vault
}
