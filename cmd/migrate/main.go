// Command migrate applies the embedded schema migrations to the
// configured store. Useful with a file-backed DSN; the in-memory default
// migrates itself on server boot.
package main

import (
	"fmt"
	"log"
	"os"

	"lexconnect/internal/config"
	"lexconnect/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if len(os.Args) < 2 || os.Args[1] != "up" {
		fmt.Println("Usage: migrate up")
		os.Exit(1)
	}

	db, err := sqlite.NewDB(&cfg.DB)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	defer db.Close()

	log.Println("migrations applied successfully")
}
