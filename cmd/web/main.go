package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/petarvukov/ttliga/internal/config"
	"github.com/petarvukov/ttliga/internal/db"
	"github.com/petarvukov/ttliga/internal/service"
	"github.com/petarvukov/ttliga/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	database := db.InitDB(cfg.DatabasePath)
	defer database.Close()

	if err := db.RunMigrations(database.DB); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	stateStore := store.NewStateStore(database)
	tournaments := service.NewTournamentService(stateStore)
	matches := service.NewMatchService(tournaments)

	router := newRouter(tournaments, matches, cfg.AllowedOrigin)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server starting on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
