// Package indexer mirrors recorded ledger transactions into Postgres.
//
// The mirror is an audit convenience fed by ledger notifications; the
// in-memory log stays the source of truth.
package indexer

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/pkg/dbpkg"
	"github.com/go-denis/vault-ledger/pkg/errorspkg"
)

// Indexer writes transaction log entries to the audit table.
type Indexer struct {
	db     dbpkg.SQLInterface
	logger zerolog.Logger
}

// New returns an Indexer backed by db.
func New(db dbpkg.SQLInterface, logger zerolog.Logger) *Indexer {
	return &Indexer{
		db:     db,
		logger: logger,
	}
}

const insertQuery = `
INSERT INTO
    ledger_transactions (log_index, kind, from_address, to_address, amount, description, recorded_at)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (log_index) DO NOTHING
`

// Index writes one log entry. Entries already mirrored are skipped, so a
// notification replay is harmless.
func (ix *Indexer) Index(ctx context.Context, tx domain.Transaction) error {
	_, err := ix.db.ExecContext(ctx, insertQuery,
		tx.Index,
		string(tx.Kind),
		nullable(tx.From),
		nullable(tx.To),
		tx.Amount.String(),
		tx.Description,
		tx.Timestamp,
	)
	if err != nil {
		ix.logger.Error().Err(err).Int64("log_index", tx.Index).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "ledger_transactions_amount_check" {
				return domain.ErrInvalidAmount
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

// nullable maps an absent counterparty to NULL.
func nullable(addr string) sql.NullString {
	return sql.NullString{String: addr, Valid: addr != ""}
}

// Run consumes ledger notifications until the channel closes or ctx ends.
// Balance notifications are ignored; only recorded transactions are
// mirrored.
func (ix *Indexer) Run(ctx context.Context, events <-chan domain.Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}

			recorded, ok := ev.(domain.TransactionRecorded)
			if !ok {
				continue
			}

			if err := ix.Index(ctx, recorded.Transaction); err != nil {
				ix.logger.Error().Err(err).Msg("mirroring transaction failed")
			}
		case <-ctx.Done():
			return
		}
	}
}
