package httpserver_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/cmd/httpserver"
	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/pkg/configpkg"
	"github.com/go-denis/vault-ledger/pkg/randompkg"
	"github.com/go-denis/vault-ledger/pkg/web"
)

type entryData struct {
	Account     domain.Summary     `json:"account"`
	Transaction domain.Transaction `json:"transaction"`
}

type transferData struct {
	FromAccount  domain.Summary       `json:"from_account"`
	ToAccount    domain.Summary       `json:"to_account"`
	Transactions []domain.Transaction `json:"transactions"`
}

type emergencyData struct {
	Account  domain.Summary  `json:"account"`
	Released decimal.Decimal `json:"released"`
}

type accountData struct {
	Account domain.Summary `json:"account"`
}

type balanceData struct {
	Balance decimal.Decimal `json:"balance"`
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}

type statsData struct {
	Stats domain.Stats `json:"stats"`
}

func setupServer(t *testing.T) *httpserver.Server {
	t.Helper()

	config := configpkg.Config{
		ServerAddress: "0.0.0.0:8080",
		Environment:   "test",
	}

	server, err := httpserver.New(nil, zerolog.Nop(), config)
	if err != nil {
		t.Fatalf("httpserver.New(nil, logger, config) returned error: %v", err)
	}

	return server
}

func sendRequest(t *testing.T, server *httpserver.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Encoding request body error: %v", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("Creating request error: %v", err)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	return w
}

func decodeResponse(t *testing.T, body io.Reader, res *web.Response) {
	t.Helper()

	if err := json.NewDecoder(body).Decode(res); err != nil {
		t.Fatalf("Decoding response body error: %v", err)
	}
}

// TestLedgerLifecycle walks the api through deposits, a transfer, a
// withdrawal and an emergency withdrawal, checking balances, the recorded
// history and the vault total after every step. The subtests build on each
// other and must run in order.
func TestLedgerLifecycle(t *testing.T) {
	server := setupServer(t)

	account1 := randompkg.Address()
	account2 := randompkg.Address()

	approxTime := cmpopts.EquateApproxTime(time.Second)

	t.Run("DepositFirstAccount", func(t *testing.T) {
		body := map[string]string{"amount": "2", "description": "salary"}
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account1+"/deposits", body)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &entryData{}}
		decodeResponse(t, w.Body, &res)

		want := entryData{
			Account: domain.Summary{
				Address:          account1,
				Balance:          decimal.RequireFromString("2"),
				TotalDeposits:    decimal.RequireFromString("2"),
				TransactionCount: 1,
			},
			Transaction: domain.Transaction{
				Index:       0,
				To:          account1,
				Amount:      decimal.RequireFromString("2"),
				Timestamp:   time.Now().UTC(),
				Description: "salary",
				Kind:        domain.KindDeposit,
			},
		}

		if diff := cmp.Diff(want, *res.Data.(*entryData), approxTime); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("DepositSecondAccount", func(t *testing.T) {
		body := map[string]string{"amount": "1.5"}
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account2+"/deposits", body)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &entryData{}}
		decodeResponse(t, w.Body, &res)

		got := res.Data.(*entryData)

		if got, want := got.Transaction.Index, int64(1); got != want {
			t.Errorf("Transaction.Index = %v, want %v", got, want)
		}

		if got, want := got.Account.Balance.String(), "1.5"; got != want {
			t.Errorf("Account.Balance = %v, want %v", got, want)
		}
	})

	t.Run("StatsAfterDeposits", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/transactions", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &statsData{}}
		decodeResponse(t, w.Body, &res)

		want := statsData{Stats: domain.Stats{
			TotalTransactions: 2,
			VaultBalance:      decimal.RequireFromString("3.5"),
		}}

		if diff := cmp.Diff(want, *res.Data.(*statsData)); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Transfer", func(t *testing.T) {
		body := map[string]string{"to": account2, "amount": "0.5", "description": "rent"}
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account1+"/transfers", body)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &transferData{}}
		decodeResponse(t, w.Body, &res)

		entry := domain.Transaction{
			Index:       2,
			From:        account1,
			To:          account2,
			Amount:      decimal.RequireFromString("0.5"),
			Timestamp:   time.Now().UTC(),
			Description: "rent",
			Kind:        domain.KindTransfer,
		}

		recipientEntry := entry
		recipientEntry.Index = 3

		want := transferData{
			FromAccount: domain.Summary{
				Address:          account1,
				Balance:          decimal.RequireFromString("1.5"),
				TotalDeposits:    decimal.RequireFromString("2"),
				TransactionCount: 2,
			},
			ToAccount: domain.Summary{
				Address:          account2,
				Balance:          decimal.RequireFromString("2"),
				TotalDeposits:    decimal.RequireFromString("1.5"),
				TransactionCount: 2,
			},
			Transactions: []domain.Transaction{entry, recipientEntry},
		}

		if diff := cmp.Diff(want, *res.Data.(*transferData), approxTime); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Withdraw", func(t *testing.T) {
		body := map[string]string{"amount": "0.3", "description": "groceries"}
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account2+"/withdrawals", body)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &entryData{}}
		decodeResponse(t, w.Body, &res)

		want := entryData{
			Account: domain.Summary{
				Address:          account2,
				Balance:          decimal.RequireFromString("1.7"),
				TotalDeposits:    decimal.RequireFromString("1.5"),
				TotalWithdrawals: decimal.RequireFromString("0.3"),
				TransactionCount: 3,
			},
			Transaction: domain.Transaction{
				Index:       4,
				From:        account2,
				Amount:      decimal.RequireFromString("0.3"),
				Timestamp:   time.Now().UTC(),
				Description: "groceries",
				Kind:        domain.KindWithdrawal,
			},
		}

		if diff := cmp.Diff(want, *res.Data.(*entryData), approxTime); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetAccount", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/accounts/"+account1, nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &accountData{}}
		decodeResponse(t, w.Body, &res)

		want := accountData{Account: domain.Summary{
			Address:          account1,
			Balance:          decimal.RequireFromString("1.5"),
			TotalDeposits:    decimal.RequireFromString("2"),
			TransactionCount: 2,
		}}

		if diff := cmp.Diff(want, *res.Data.(*accountData)); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetBalance", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/accounts/"+account2+"/balance", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &balanceData{}}
		decodeResponse(t, w.Body, &res)

		if got, want := res.Data.(*balanceData).Balance.String(), "1.7"; got != want {
			t.Errorf("Balance = %v, want %v", got, want)
		}
	})

	t.Run("GetTransaction", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/transactions/2", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &transactionData{}}
		decodeResponse(t, w.Body, &res)

		want := transactionData{Transaction: domain.Transaction{
			Index:       2,
			From:        account1,
			To:          account2,
			Amount:      decimal.RequireFromString("0.5"),
			Timestamp:   time.Now().UTC(),
			Description: "rent",
			Kind:        domain.KindTransfer,
		}}

		if diff := cmp.Diff(want, *res.Data.(*transactionData), approxTime); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GetAccountTransaction", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/accounts/"+account2+"/transactions/1", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &transactionData{}}
		decodeResponse(t, w.Body, &res)

		// The second entry of the recipient is its half of the transfer.
		if got, want := res.Data.(*transactionData).Transaction.Index, int64(3); got != want {
			t.Errorf("Transaction.Index = %v, want %v", got, want)
		}
	})

	t.Run("TransactionNotFound", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/transactions/9", nil)

		if got := w.Code; got != http.StatusNotFound {
			t.Errorf("Status code: got %v, want %v", got, http.StatusNotFound)
		}

		var res web.Response
		decodeResponse(t, w.Body, &res)

		if got, want := res.Error, domain.ErrIndexOutOfRange.Error(); got != want {
			t.Errorf("res.Error = %q, want %q", got, want)
		}
	})

	t.Run("EmergencyWithdraw", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account1+"/emergency-withdrawal", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &emergencyData{}}
		decodeResponse(t, w.Body, &res)

		// The released amount leaves no trace in the history or the
		// withdrawal totals.
		want := emergencyData{
			Account: domain.Summary{
				Address:          account1,
				Balance:          decimal.RequireFromString("0"),
				TotalDeposits:    decimal.RequireFromString("2"),
				TransactionCount: 2,
			},
			Released: decimal.RequireFromString("1.5"),
		}

		if diff := cmp.Diff(want, *res.Data.(*emergencyData)); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("StatsAfterEmergencyWithdraw", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/transactions", nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &statsData{}}
		decodeResponse(t, w.Body, &res)

		want := statsData{Stats: domain.Stats{
			TotalTransactions: 5,
			VaultBalance:      decimal.RequireFromString("1.7"),
		}}

		if diff := cmp.Diff(want, *res.Data.(*statsData)); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("WithdrawInsufficientBalance", func(t *testing.T) {
		body := map[string]string{"amount": "0.1"}
		w := sendRequest(t, server, http.MethodPost, "/accounts/"+account1+"/withdrawals", body)

		if got := w.Code; got != http.StatusConflict {
			t.Errorf("Status code: got %v, want %v", got, http.StatusConflict)
		}

		var res web.Response
		decodeResponse(t, w.Body, &res)

		if got, want := res.Error, domain.ErrInsufficientBalance.Error(); got != want {
			t.Errorf("res.Error = %q, want %q", got, want)
		}
	})

	t.Run("GetUnknownAccount", func(t *testing.T) {
		unknown := randompkg.Address()

		w := sendRequest(t, server, http.MethodGet, "/accounts/"+unknown, nil)

		if got := w.Code; got != http.StatusOK {
			t.Errorf("Status code: got %v, want %v", got, http.StatusOK)
		}

		res := web.Response{Data: &accountData{}}
		decodeResponse(t, w.Body, &res)

		want := accountData{Account: domain.Summary{Address: unknown}}

		if diff := cmp.Diff(want, *res.Data.(*accountData)); diff != "" {
			t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("MalformedAddress", func(t *testing.T) {
		w := sendRequest(t, server, http.MethodGet, "/accounts/bogus", nil)

		if got := w.Code; got != http.StatusBadRequest {
			t.Errorf("Status code: got %v, want %v", got, http.StatusBadRequest)
		}

		var res web.Response
		decodeResponse(t, w.Body, &res)

		if got, want := res.Error, "Address must be a valid hex address"; got != want {
			t.Errorf("res.Error = %q, want %q", got, want)
		}
	})
}
