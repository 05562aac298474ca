// Package ledgerdelivery manages the delivery layer of ledger operations.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/internal/domain"
	"github.com/go-denis/vault-ledger/pkg/errorspkg"
	"github.com/go-denis/vault-ledger/pkg/web"
)

// Service provides the service layer interface needed by the ledger
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Deposit(ctx context.Context, account, amount, description string) (domain.EntryResult, error)
	Withdraw(ctx context.Context, account, amount, description string) (domain.EntryResult, error)
	Transfer(ctx context.Context, from, to, amount, description string) (domain.TransferResult, error)
	EmergencyWithdraw(ctx context.Context, account string) (domain.EmergencyWithdrawResult, error)
	Balance(ctx context.Context, account string) (decimal.Decimal, error)
	AccountSummary(ctx context.Context, account string) (domain.Summary, error)
	Transaction(ctx context.Context, index int64) (domain.Transaction, error)
	AccountTransaction(ctx context.Context, account string, index int64) (domain.Transaction, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns a ledger handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return ""
}

type addressURI struct {
	Address string `uri:"address" binding:"required,address"`
}

type amountRequest struct {
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

type transferRequest struct {
	To          string `json:"to" binding:"required,address"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

type transactionURI struct {
	Index int64 `uri:"index" binding:"min=0"`
}

type accountTransactionURI struct {
	Address string `uri:"address" binding:"required,address"`
	Index   int64  `uri:"index" binding:"min=0"`
}

type entryData struct {
	Account     domain.Summary     `json:"account"`
	Transaction domain.Transaction `json:"transaction"`
}
type entryResponse struct {
	Data entryData `json:"data,omitempty"`
}

type transferData struct {
	FromAccount  domain.Summary       `json:"from_account"`
	ToAccount    domain.Summary       `json:"to_account"`
	Transactions []domain.Transaction `json:"transactions"`
}
type transferResponse struct {
	Data transferData `json:"data,omitempty"`
}

type emergencyData struct {
	Account  domain.Summary  `json:"account"`
	Released decimal.Decimal `json:"released"`
}
type emergencyResponse struct {
	Data emergencyData `json:"data,omitempty"`
}

type accountData struct {
	Account domain.Summary `json:"account"`
}
type accountResponse struct {
	Data accountData `json:"data,omitempty"`
}

type balanceData struct {
	Balance decimal.Decimal `json:"balance"`
}
type balanceResponse struct {
	Data balanceData `json:"data,omitempty"`
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}
type transactionResponse struct {
	Data transactionData `json:"data,omitempty"`
}

type statsData struct {
	Stats domain.Stats `json:"stats"`
}
type statsResponse struct {
	Data statsData `json:"data,omitempty"`
}

// Deposit handles http request to credit an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	res, err := h.service.Deposit(ctx, uri.Address, req.Amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrInvalidAddress, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, entryResponse{
		Data: entryData{res.Account, res.Entry},
	})
}

// Withdraw handles http request to debit an account and release the value
// to its holder.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req amountRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	res, err := h.service.Withdraw(ctx, uri.Address, req.Amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrInvalidAddress, domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, entryResponse{
		Data: entryData{res.Account, res.Entry},
	})
}

// Transfer handles http request to move value between accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	res, err := h.service.Transfer(ctx, uri.Address, req.To, req.Amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrInvalidAddress, domain.ErrInvalidAmount, domain.ErrInvalidRecipient:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transferResponse{
		Data: transferData{
			FromAccount:  res.FromAccount,
			ToAccount:    res.ToAccount,
			Transactions: []domain.Transaction{res.FromEntry, res.ToEntry},
		},
	})
}

// EmergencyWithdraw handles http request to drain an account's full balance.
func (h *Handler) EmergencyWithdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	res, err := h.service.EmergencyWithdraw(ctx, uri.Address)
	if err != nil {
		switch err {
		case domain.ErrInvalidAddress:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrNoBalance:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, emergencyResponse{
		Data: emergencyData{res.Account, res.Released},
	})
}

// GetAccount handles http request to get an account snapshot.
func (h *Handler) GetAccount(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	summary, err := h.service.AccountSummary(ctx, uri.Address)
	if err != nil {
		if err == domain.ErrInvalidAddress {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, accountResponse{
		Data: accountData{summary},
	})
}

// GetBalance handles http request to get an account balance.
func (h *Handler) GetBalance(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri addressURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	balance, err := h.service.Balance(ctx, uri.Address)
	if err != nil {
		if err == domain.ErrInvalidAddress {
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, balanceResponse{
		Data: balanceData{balance},
	})
}

// GetTransaction handles http request to get a log entry by global index.
func (h *Handler) GetTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri transactionURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	tx, err := h.service.Transaction(ctx, uri.Index)
	if err != nil {
		if err == domain.ErrIndexOutOfRange {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionResponse{
		Data: transactionData{tx},
	})
}

// GetAccountTransaction handles http request to get a log entry by account
// history index.
func (h *Handler) GetAccountTransaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri accountTransactionURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	tx, err := h.service.AccountTransaction(ctx, uri.Address, uri.Index)
	if err != nil {
		switch err {
		case domain.ErrInvalidAddress:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrIndexOutOfRange:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, transactionResponse{
		Data: transactionData{tx},
	})
}

// GetStats handles http request to get ledger-wide counters.
func (h *Handler) GetStats(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, statsResponse{
		Data: statsData{stats},
	})
}
