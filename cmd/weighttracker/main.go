package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"weighttracker/internal/adapter/console"
	adapthttp "weighttracker/internal/adapter/http"
	"weighttracker/internal/adapter/sqlite"
	"weighttracker/internal/app"
	"weighttracker/internal/config"
	"weighttracker/internal/notify"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(env("CONFIG_PATH", "config.yml"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	weights := sqlite.NewWeightRepo(db)
	accounts := app.NewAccountService(db, weights)
	notifier := notify.New(accounts, console.NewGate(cfg.Notification.Grant), console.Delivery{}, cfg.Notification.Destination)
	ledger := app.NewLedgerService(weights, db, notifier)

	h := adapthttp.New(accounts, ledger, cfg.Auth).Handler()
	log.Printf("listening on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
