package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/mkravets/theater-tickets/internal/config"
	"github.com/mkravets/theater-tickets/internal/database"
	"github.com/mkravets/theater-tickets/internal/handler"
	"github.com/mkravets/theater-tickets/internal/queue"
	"github.com/mkravets/theater-tickets/internal/repository"
	"github.com/mkravets/theater-tickets/internal/router"
)

func main() {
	// .env is optional: containers inject real env vars instead.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	rdb := config.NewRedisClient()

	theaters := repository.NewTheaterRepo(db)
	performances := repository.NewPerformanceRepo(db)
	showings := repository.NewShowingRepo(db)
	tickets := repository.NewTicketRepo(db)
	clients := repository.NewClientRepo(db)
	users := repository.NewUserRepo(db)

	handlers := router.Handlers{
		Health:  handler.NewHealthHandler(db),
		Home:    handler.NewHomeHandler(theaters, performances, tickets),
		Auth:    handler.NewAuthHandler(&cfg, users),
		Profile: handler.NewProfileHandler(clients, tickets),
		Catalog: handler.NewCatalogHandler(theaters, performances, showings, tickets),
		Buy:     handler.NewBuyHandler(tickets, clients),
		API:     handler.NewAPIHandler(theaters, performances, showings, tickets),
	}

	go queue.StartPurchaseConsumer()

	e := router.New(&cfg, rdb, handlers)
	log.Fatal(e.Start(":" + cfg.Port))
}
