package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/soletrade/soletrade/internal/account"
	accountStore "github.com/soletrade/soletrade/internal/account/store"
	"github.com/soletrade/soletrade/internal/catalog"
	"github.com/soletrade/soletrade/internal/config"
	"github.com/soletrade/soletrade/internal/credit"
	creditStore "github.com/soletrade/soletrade/internal/credit/store"
	"github.com/soletrade/soletrade/internal/crm"
	"github.com/soletrade/soletrade/internal/database"
	"github.com/soletrade/soletrade/internal/event"
	soletradeHttp "github.com/soletrade/soletrade/internal/http"
	accountHandler "github.com/soletrade/soletrade/internal/http/account"
	crmHandler "github.com/soletrade/soletrade/internal/http/crm"
	leadHandler "github.com/soletrade/soletrade/internal/http/lead"
	orderHandler "github.com/soletrade/soletrade/internal/http/order"
	quoteHandler "github.com/soletrade/soletrade/internal/http/quote"
	rfqHandler "github.com/soletrade/soletrade/internal/http/rfq"
	"github.com/soletrade/soletrade/internal/lead"
	leadStore "github.com/soletrade/soletrade/internal/lead/store"
	"github.com/soletrade/soletrade/internal/order"
	orderStore "github.com/soletrade/soletrade/internal/order/store"
	"github.com/soletrade/soletrade/internal/quote"
	quoteStore "github.com/soletrade/soletrade/internal/quote/store"
	"github.com/soletrade/soletrade/internal/rfq"
	rfqStore "github.com/soletrade/soletrade/internal/rfq/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	var events event.Emitter = event.Noop{}
	if cfg.Events.WebhookURL != "" {
		events = event.NewWebhook(cfg.Events.WebhookURL, cfg.Events.Timeout)
	}

	var (
		accountService = account.NewService(accountStore.New(db), events)
		creditService  = credit.NewService(creditStore.New(db), events)
		leadService    = lead.NewService(leadStore.New(db), catalogClient, events)
		quoteService   = quote.NewService(quoteStore.New(db), leadService, catalogClient, events)
		orderService   = order.NewService(orderStore.New(db), accountService, creditService, events)
		rfqService     = rfq.NewService(rfqStore.New(rdb), catalogClient, leadService)
		crmService     = crm.NewService(leadService)
	)

	var (
		leadsH    = leadHandler.NewHandler(leadService)
		quotesH   = quoteHandler.NewHandler(quoteService)
		ordersH   = orderHandler.NewHandler(orderService)
		accountsH = accountHandler.NewHandler(accountService)
		rfqH      = rfqHandler.NewHandler(rfqService)
		crmH      = crmHandler.NewHandler(crmService)
	)

	router := soletradeHttp.New(cfg.Auth.JWTSecret, leadsH, quotesH, ordersH, accountsH, rfqH, crmH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "app", cfg.App.Name)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
