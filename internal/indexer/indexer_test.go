//go:build integration

package indexer_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/internal/indexer"
	"github.com/go-denis/vault-ledger/internal/integrationtest"
	"github.com/go-denis/vault-ledger/pkg/configpkg"
	"github.com/go-denis/vault-ledger/pkg/randompkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

const selectQuery = `
SELECT kind, from_address, to_address, amount, description, recorded_at
FROM ledger_transactions
WHERE log_index = $1
`

func TestIndex(t *testing.T) {
	testCases := []struct {
		name  string
		entry domain.Transaction
	}{
		{
			name: "Deposit",
			entry: domain.Transaction{
				Index:       0,
				To:          randompkg.Address(),
				Amount:      decimal.RequireFromString("2"),
				Timestamp:   time.Now().UTC(),
				Description: randompkg.Description(),
				Kind:        domain.KindDeposit,
			},
		},
		{
			name: "Withdrawal",
			entry: domain.Transaction{
				Index:     1,
				From:      randompkg.Address(),
				Amount:    decimal.RequireFromString("0.3"),
				Timestamp: time.Now().UTC(),
				Kind:      domain.KindWithdrawal,
			},
		},
		{
			name: "Transfer",
			entry: domain.Transaction{
				Index:       2,
				From:        randompkg.Address(),
				To:          randompkg.Address(),
				Amount:      decimal.RequireFromString("0.5"),
				Timestamp:   time.Now().UTC(),
				Description: randompkg.Description(),
				Kind:        domain.KindTransfer,
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Prepare test transaction
			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			ix := indexer.New(tx, zerolog.Nop())

			// Run test
			if err := ix.Index(context.Background(), tc.entry); err != nil {
				t.Fatalf(`ix.Index(context.Background(), %+v) returned error: %v`, tc.entry, err)
			}

			var (
				kind        string
				from        sql.NullString
				to          sql.NullString
				amount      decimal.Decimal
				description string
				recordedAt  time.Time
			)

			row := tx.QueryRow(selectQuery, tc.entry.Index)
			if err := row.Scan(&kind, &from, &to, &amount, &description, &recordedAt); err != nil {
				t.Fatalf("row.Scan(...) returned error: %v", err)
			}

			if kind != string(tc.entry.Kind) {
				t.Errorf("kind = %v, want %v", kind, tc.entry.Kind)
			}

			if from.String != tc.entry.From {
				t.Errorf("from_address = %q, want %q", from.String, tc.entry.From)
			}

			if from.Valid != (tc.entry.From != "") {
				t.Errorf("from_address NULL = %v, want %v", !from.Valid, tc.entry.From == "")
			}

			if to.String != tc.entry.To {
				t.Errorf("to_address = %q, want %q", to.String, tc.entry.To)
			}

			if to.Valid != (tc.entry.To != "") {
				t.Errorf("to_address NULL = %v, want %v", !to.Valid, tc.entry.To == "")
			}

			if !amount.Equal(tc.entry.Amount) {
				t.Errorf("amount = %v, want %v", amount, tc.entry.Amount)
			}

			if description != tc.entry.Description {
				t.Errorf("description = %q, want %q", description, tc.entry.Description)
			}

			if !cmp.Equal(recordedAt, tc.entry.Timestamp, cmpopts.EquateApproxTime(time.Second)) {
				t.Errorf("recorded_at = %v, want %v +- second", recordedAt, tc.entry.Timestamp)
			}
		})
	}
}

func TestIndexReplay(t *testing.T) {
	t.Parallel()

	// Prepare test transaction
	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	ix := indexer.New(tx, zerolog.Nop())

	entry := domain.Transaction{
		Index:     0,
		To:        randompkg.Address(),
		Amount:    decimal.RequireFromString("2"),
		Timestamp: time.Now().UTC(),
		Kind:      domain.KindDeposit,
	}

	// Run test: mirroring the same entry twice must keep a single row.
	if err := ix.Index(context.Background(), entry); err != nil {
		t.Fatalf(`ix.Index(context.Background(), %+v) returned error: %v`, entry, err)
	}

	if err := ix.Index(context.Background(), entry); err != nil {
		t.Fatalf(`ix.Index(context.Background(), %+v) returned error on replay: %v`, entry, err)
	}

	var count int

	row := tx.QueryRow(`SELECT count(*) FROM ledger_transactions WHERE log_index = $1`, entry.Index)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("row.Scan(&count) returned error: %v", err)
	}

	if count != 1 {
		t.Errorf("mirrored rows = %v, want 1", count)
	}
}

func TestIndexRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	// Prepare test transaction
	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	ix := indexer.New(tx, zerolog.Nop())

	entry := domain.Transaction{
		Index:     0,
		To:        randompkg.Address(),
		Amount:    decimal.RequireFromString("-1"),
		Timestamp: time.Now().UTC(),
		Kind:      domain.KindDeposit,
	}

	if err := ix.Index(context.Background(), entry); err != domain.ErrInvalidAmount {
		t.Errorf(`ix.Index(context.Background(), %+v) = %v, want %v`, entry, err, domain.ErrInvalidAmount)
	}
}
