package main

import (
	"context"
	"log"
	"os"

	"github.com/she-oracle/orchestrator/config"
	"github.com/she-oracle/orchestrator/internal/server"
)

func main() {
	addr := os.Getenv("ORACLE_HTTP_ADDR")

	cfg := config.LoadConfig(os.Getenv("ORACLE_CONFIG"))
	if err := server.Run(context.Background(), cfg, addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
