package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/raolivei/canopy/pkg/config"
	"github.com/raolivei/canopy/pkg/ledger"
	"github.com/raolivei/canopy/pkg/previewstore"
	"github.com/raolivei/canopy/pkg/printer"
	"github.com/raolivei/canopy/pkg/processor"
	"github.com/raolivei/canopy/pkg/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var existingSource processor.ExistingSource
	var sink processor.Sink
	var history ImportHistory

	if cfg.PostgresConnectionString != "" {
		db, gormErr := gorm.Open(postgres.Open(cfg.PostgresConnectionString), &gorm.Config{})
		if gormErr != nil {
			log.Fatal().Err(gormErr).Msg("failed to connect to postgres")
		}

		pg, repoErr := repo.NewPostgres(db)
		if repoErr != nil {
			log.Fatal().Err(repoErr).Msg("failed to setup postgres repo")
		}

		existingSource = pg
		sink = pg
		history = pg
	} else {
		ledgerSvc := ledger.NewLedger(
			cfg.LedgerApiKey,
			cfg.LedgerApiEndpoint,
			req.DefaultClient(),
		)

		existingSource = ledgerSvc
		sink = ledgerSvc
	}

	store := previewstore.NewStore(cfg.PreviewTtl)
	defer store.Stop()

	processorSvc := processor.NewProcessor(&processor.Config{
		ExistingSource:  existingSource,
		Sink:            sink,
		Store:           store,
		Printer:         printer.NewPrinter(),
		DefaultCurrency: cfg.DefaultCurrency,
	})

	r := mux.NewRouter()
	r.Use(loggerMiddleware())

	NewHandler(processorSvc, history).Register(r)

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.ListenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("listening")

	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func loggerMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := log.Logger.WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
