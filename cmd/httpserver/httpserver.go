// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-denis/vault-ledger/internal/indexer"
	"github.com/go-denis/vault-ledger/internal/ledger"
	"github.com/go-denis/vault-ledger/internal/ledgerdelivery"
	"github.com/go-denis/vault-ledger/internal/ledgerservice"
	"github.com/go-denis/vault-ledger/internal/middleware"
	"github.com/go-denis/vault-ledger/internal/streamdelivery"
	"github.com/go-denis/vault-ledger/pkg/configpkg"
)

// mirrorBuffer bounds how far the transaction mirror may lag behind the
// ledger before notifications to it are dropped.
const mirrorBuffer = 256

// Server holds the ledger, the optional mirror db connection, handlers
// router and configuration.
type Server struct {
	Ledger *ledger.Ledger
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config

	stopMirror func()
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with an instantiated ledger and routes.
//
// A nil conn runs the server without the Postgres transaction mirror.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	releaser := ledger.ReleaserFunc(func(ctx context.Context, address string, amount decimal.Decimal) error {
		zerolog.Ctx(ctx).Info().
			Str("address", address).
			Str("amount", amount.String()).
			Msg("released funds to account holder")

		return nil
	})

	led := ledger.New(releaser, logger)

	ledgerService := ledgerservice.New(led)

	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	streamHandler := streamdelivery.NewHandler(led)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts/:address/deposits", ledgerHandler.Deposit)
	engine.POST("/accounts/:address/withdrawals", ledgerHandler.Withdraw)
	engine.POST("/accounts/:address/transfers", ledgerHandler.Transfer)
	engine.POST("/accounts/:address/emergency-withdrawal", ledgerHandler.EmergencyWithdraw)

	engine.GET("/accounts/:address", ledgerHandler.GetAccount)
	engine.GET("/accounts/:address/balance", ledgerHandler.GetBalance)
	engine.GET("/accounts/:address/transactions/:index", ledgerHandler.GetAccountTransaction)

	engine.GET("/transactions", ledgerHandler.GetStats)
	engine.GET("/transactions/:index", ledgerHandler.GetTransaction)

	engine.GET("/events", streamHandler.Events)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("address", ledgerdelivery.ValidAddress)
		if err != nil {
			return nil, errors.New("cannot register address validator")
		}
	}

	server := &Server{
		Ledger: led,
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	if conn != nil {
		server.stopMirror = startMirror(led, conn, logger)
	}

	return server, nil
}

// Close stops the transaction mirror if one was started.
func (s *Server) Close() {
	if s.stopMirror != nil {
		s.stopMirror()
	}
}

// startMirror subscribes the Postgres mirror to ledger notifications and
// returns a function that stops it and waits for it to drain.
func startMirror(led *ledger.Ledger, conn *sql.DB, logger zerolog.Logger) func() {
	sub := led.Subscribe(mirrorBuffer)
	ix := indexer.New(conn, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		ix.Run(ctx, sub.C)
	}()

	return func() {
		sub.Close()
		cancel()
		<-done
	}
}
