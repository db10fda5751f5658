package main

import (
	"flag"
	"log"
	"os"

	"skillmatrix/internal/app"
	"skillmatrix/internal/config"
)

// seed applies the schema migrations and the demo data set to the
// configured store, then exits.
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply migrations without demo data")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Store.Driver != config.DriverPostgres {
		log.Fatalf("seed needs STORE_DRIVER=%s, got %q", config.DriverPostgres, cfg.Store.Driver)
	}

	cfg.Database.AutoMigrate = true
	cfg.Store.SeedDemo = !*migrateOnly
	cfg.Redis.Enabled = false

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	if err := c.Close(); err != nil {
		log.Printf("close error: %v", err)
	}

	logger.Printf("[Seed] done | migrate_only=%t", *migrateOnly)
}
