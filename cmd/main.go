// Package vaultledger provides the API to manage ledger accounts and money movements.
package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"

	"github.com/go-denis/vault-ledger/cmd/httpserver"
	"github.com/go-denis/vault-ledger/internal/middleware"
	"github.com/go-denis/vault-ledger/pkg/configpkg"
	"github.com/go-denis/vault-ledger/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	var db *sql.DB

	if config.DBSource != "" {
		db, err = dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot connect to database")
		}
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("VAULT LEDGER SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
