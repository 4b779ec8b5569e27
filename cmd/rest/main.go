package main

import (
	"log"

	"afaq-chatbot-be/internal/bootstrap"
	"afaq-chatbot-be/internal/config"
	"afaq-chatbot-be/internal/server"
	"afaq-chatbot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (schema created before the listener binds)
	gormDB, err := database.NewSqliteDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open SQLite DB: %v", err)
	}
	if err := database.InitStorage(gormDB); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync() //nolint:errcheck

	// 4. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
